package rights

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/signer/awsv2"
)

type ClusterAuth struct {
	IAM bool
}

// NewOpenSearchClient creates a client for the cluster at endpoint, using
// IAM request signing for AWS managed clusters.
func NewOpenSearchClient(
	ctx context.Context, endpoint string, auth ClusterAuth,
) (*opensearch.Client, error) {
	osConfig := opensearch.Config{
		Addresses: []string{endpoint},
	}

	if auth.IAM {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load default AWS config: %w", err)
		}

		// Create an AWS request Signer and load AWS configuration using
		// default config folder or env vars.
		signer, err := awsv2.NewSignerWithService(awsCfg, "es")
		if err != nil {
			return nil, fmt.Errorf("create request signer: %w", err)
		}

		osConfig.Signer = signer
	}

	searchClient, err := opensearch.NewClient(osConfig)
	if err != nil {
		return nil, fmt.Errorf(
			"create opensearch client: %w", err)
	}

	return searchClient, nil
}
