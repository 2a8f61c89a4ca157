package rights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/ttab/elephantine"
	"golang.org/x/exp/maps"
)

const DefaultPublishBatchSize = 500

// indexSettings only indexes the fields needed for debugging, the rights
// source only reads documents by ID.
var indexSettings = json.RawMessage(`{
  "settings": {
    "number_of_shards": 1
  },
  "mappings": {
    "dynamic": false,
    "properties": {
      "type": {"type": "keyword"},
      "value": {"type": "keyword"},
      "institutions": {"type": "keyword"},
      "doi": {"type": "keyword"}
    }
  }
}`)

type PublisherOptions struct {
	Logger *slog.Logger
	Client *opensearch.Client
	// Alias that is moved to the new generation of the index.
	Alias     string
	BatchSize int
}

// Publisher writes snapshots to OpenSearch as new generations of the rights
// index. A generation becomes visible to OpenSearchSource when the alias is
// moved to it.
type Publisher struct {
	logger *slog.Logger
	client *opensearch.Client
	opts   PublisherOptions
}

func NewPublisher(opts PublisherOptions) (*Publisher, error) {
	if opts.Client == nil {
		return nil, errors.New("missing opensearch client")
	}

	if opts.Alias == "" {
		opts.Alias = DefaultAlias
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultPublishBatchSize
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		logger: logger,
		client: opts.Client,
		opts:   opts,
	}, nil
}

// IndexName returns the name of the index for a generation. Generation names
// must sort in publishing order, as OpenSearchSource picks the last index if
// the alias points to more than one.
func (p *Publisher) IndexName(generation string) string {
	return p.opts.Alias + "-" + strings.ToLower(generation)
}

// Publish writes the snapshot to a new index and moves the alias to it.
// Returns the name of the new index.
func (p *Publisher) Publish(
	ctx context.Context, generation string, snap *Snapshot,
) (string, error) {
	index := p.IndexName(generation)

	err := p.createIndex(ctx, index)
	if err != nil {
		return "", err
	}

	identifiers, documents := snap.Export()

	var ops []bulkOp

	for _, doc := range identifiers {
		t, err := entitlements.ParseIdentifierType(doc.Type)
		if err != nil {
			return "", fmt.Errorf("exported identifier: %w", err)
		}

		ops = append(ops, bulkOp{
			ID:  IdentifierDocumentID(t, doc.Value),
			Doc: doc,
		})
	}

	for _, doc := range documents {
		ops = append(ops, bulkOp{
			ID:  DocumentID(doc.DOI),
			Doc: doc,
		})
	}

	for start := 0; start < len(ops); start += p.opts.BatchSize {
		end := min(start+p.opts.BatchSize, len(ops))

		err := p.bulkIndex(ctx, index, ops[start:end])
		if err != nil {
			return "", err
		}
	}

	refresh := p.client.Indices.Refresh

	res, err := refresh(
		refresh.WithIndex(index),
		refresh.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("refresh index %q: %w", index, err)
	}

	elephantine.SafeClose(p.logger, "refresh index", res.Body)

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh index %q: %s", index, res.Status())
	}

	previous, err := p.aliasedIndices(ctx)
	if err != nil {
		return "", err
	}

	err = p.moveAlias(ctx, previous, index)
	if err != nil {
		return "", err
	}

	p.logger.InfoContext(ctx, "published rights index generation",
		"index", index,
		"previous", previous,
		LogKeyRightsVersion, snap.Version(),
		"identifiers", len(identifiers),
		"documents", len(documents))

	return index, nil
}

func (p *Publisher) createIndex(ctx context.Context, index string) error {
	create := p.client.Indices.Create

	res, err := create(index,
		create.WithBody(bytes.NewReader(indexSettings)),
		create.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create index %q: %w", index, err)
	}

	defer elephantine.SafeClose(p.logger, "index create", res.Body)

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("create index %q: server response: %s",
			index, res.Status())
	}

	return nil
}

type bulkOp struct {
	ID  string
	Doc any
}

type bulkHeader struct {
	Index *bulkOperation `json:"index,omitempty"`
}

type bulkOperation struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

type bulkResponse struct {
	Errors bool       `json:"errors"`
	Items  []bulkItem `json:"items"`
}

type bulkItem struct {
	Index *bulkResult `json:"index"`
}

type bulkResult struct {
	ID     string     `json:"_id"`
	Status int        `json:"status"`
	Error  *bulkError `json:"error"`
}

type bulkError struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (be bulkError) String() string {
	return be.Type + ": " + be.Reason
}

func (p *Publisher) bulkIndex(
	ctx context.Context, index string, ops []bulkOp,
) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)

	for _, op := range ops {
		err := errors.Join(
			enc.Encode(bulkHeader{Index: &bulkOperation{
				Index: index,
				ID:    op.ID,
			}}),
			enc.Encode(op.Doc),
		)
		if err != nil {
			return fmt.Errorf("marshal index instruction: %w", err)
		}
	}

	res, err := p.client.Bulk(&buf,
		p.client.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("submit bulk request: %w", err)
	}

	defer elephantine.SafeClose(p.logger, "bulk", res.Body)

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("bulk request: server response: %s", res.Status())
	}

	var result bulkResponse

	err = json.NewDecoder(res.Body).Decode(&result)
	if err != nil {
		return fmt.Errorf("invalid response body from server: %w", err)
	}

	if !result.Errors {
		return nil
	}

	var errs []error

	for _, item := range result.Items {
		if item.Index == nil || item.Index.Error == nil {
			continue
		}

		errs = append(errs, fmt.Errorf("index %q: %s",
			item.Index.ID, item.Index.Error.String()))
	}

	return fmt.Errorf("failed to index documents: %w", errors.Join(errs...))
}

// aliasedIndices returns the indices that the alias currently points to.
func (p *Publisher) aliasedIndices(ctx context.Context) ([]string, error) {
	get := p.client.Indices.GetAlias

	res, err := get(get.WithName(p.opts.Alias), get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("get alias: %w", err)
	}

	defer elephantine.SafeClose(p.logger, "get alias", res.Body)

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get alias: server response: %s", res.Status())
	}

	var body map[string]json.RawMessage

	err = json.NewDecoder(res.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("decode alias response: %w", err)
	}

	indices := maps.Keys(body)

	slices.Sort(indices)

	return indices, nil
}

type aliasAction struct {
	Add    *aliasTarget `json:"add,omitempty"`
	Remove *aliasTarget `json:"remove,omitempty"`
}

type aliasTarget struct {
	Index string `json:"index"`
	Alias string `json:"alias"`
}

// moveAlias points the alias to index in a single atomic update.
func (p *Publisher) moveAlias(
	ctx context.Context, previous []string, index string,
) error {
	actions := []aliasAction{
		{Add: &aliasTarget{Index: index, Alias: p.opts.Alias}},
	}

	for _, prev := range previous {
		if prev == index {
			continue
		}

		actions = append(actions, aliasAction{
			Remove: &aliasTarget{Index: prev, Alias: p.opts.Alias},
		})
	}

	body, err := json.Marshal(map[string]any{
		"actions": actions,
	})
	if err != nil {
		return fmt.Errorf("marshal alias actions: %w", err)
	}

	update := p.client.Indices.UpdateAliases

	res, err := update(bytes.NewReader(body), update.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("update aliases: %w", err)
	}

	defer elephantine.SafeClose(p.logger, "update aliases", res.Body)

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))

		return fmt.Errorf("update aliases: server response: %s: %s",
			res.Status(), string(msg))
	}

	return nil
}
