package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/getftr/entitlement-index/entitlements"
	"github.com/getftr/entitlement-index/rights"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/getftr/entitlement-index/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ttab/elephantine"
	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2/clientcredentials"
	"google.golang.org/protobuf/encoding/protojson"
)

func main() {
	dbFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "parameter-source",
			EnvVars: []string{"PARAMETER_SOURCE"},
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"CONN_STRING"},
		},
		&cli.StringFlag{
			Name:    "db-parameter",
			EnvVars: []string{"CONN_STRING_PARAMETER"},
		},
	}

	runCmd := cli.Command{
		Name:        "run",
		Description: "Runs the entitlements server",
		Action:      runServer,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":1080",
			},
			&cli.StringFlag{
				Name:  "profile-addr",
				Value: ":1081",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "debug",
			},
			&cli.StringFlag{
				Name:    "opensearch-endpoint",
				EnvVars: []string{"OPENSEARCH_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:    "opensearch-alias",
				EnvVars: []string{"OPENSEARCH_ALIAS"},
				Value:   rights.DefaultAlias,
			},
			&cli.BoolFlag{
				Name:    "managed-opensearch",
				EnvVars: []string{"MANAGED_OPENSEARCH"},
			},
			&cli.DurationFlag{
				Name:    "alias-ttl",
				EnvVars: []string{"ALIAS_TTL"},
				Value:   rights.DefaultAliasTTL,
			},
			&cli.StringSliceFlag{
				Name:    "fixtures",
				EnvVars: []string{"FIXTURES"},
				Usage:   "YAML or JSON rights fixture files to serve",
			},
			&cli.DurationFlag{
				Name:    "refresh-interval",
				EnvVars: []string{"REFRESH_INTERVAL"},
				Value:   rights.DefaultRefreshInterval,
			},
			&cli.IntFlag{
				Name:    "concurrency",
				EnvVars: []string{"CONCURRENCY"},
				Value:   entitlements.DefaultConcurrency,
			},
			&cli.DurationFlag{
				Name:    "lookup-timeout",
				EnvVars: []string{"LOOKUP_TIMEOUT"},
				Value:   entitlements.DefaultLookupTimeout,
			},
			&cli.DurationFlag{
				Name:    "request-timeout",
				EnvVars: []string{"REQUEST_TIMEOUT"},
				Value:   30 * time.Second,
			},
			&cli.IntFlag{
				Name:    "max-dois",
				EnvVars: []string{"MAX_DOIS"},
				Value:   entitlements.DefaultMaxDOIs,
			},
			&cli.IntFlag{
				Name:    "max-identifiers",
				EnvVars: []string{"MAX_IDENTIFIERS"},
				Value:   entitlements.DefaultMaxIdentifiers,
			},
		}, dbFlags...),
	}

	migrateCmd := cli.Command{
		Name:        "migrate",
		Description: "Applies the database schema for the Postgres rights index",
		Action:      migrateDB,
		Flags:       dbFlags,
	}

	publishCmd := cli.Command{
		Name:        "publish",
		Description: "Publishes the rights from Postgres or fixture files as a new OpenSearch index generation",
		Action:      publishRights,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "opensearch-endpoint",
				EnvVars:  []string{"OPENSEARCH_ENDPOINT"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "opensearch-alias",
				EnvVars: []string{"OPENSEARCH_ALIAS"},
				Value:   rights.DefaultAlias,
			},
			&cli.BoolFlag{
				Name:    "managed-opensearch",
				EnvVars: []string{"MANAGED_OPENSEARCH"},
			},
			&cli.StringFlag{
				Name:  "fixtures",
				Usage: "Publish a fixture file instead of the Postgres rights",
			},
			&cli.StringFlag{
				Name:  "generation",
				Usage: "Generation name, defaults to the current UTC time",
			},
		}, dbFlags...),
	}

	checkCmd := cli.Command{
		Name:        "check",
		Description: "Resolves entitlements against a running server",
		Action:      checkEntitlements,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "endpoint",
				Value: "http://localhost:1080",
			},
			&cli.StringSliceFlag{
				Name:  "identifier",
				Usage: "Caller identifier as TYPE=value, f.ex. IPV4=200.46.32.1",
			},
			&cli.StringSliceFlag{
				Name: "doi",
			},
			&cli.StringFlag{
				Name:    "parameter-source",
				EnvVars: []string{"PARAMETER_SOURCE"},
			},
			&cli.StringFlag{
				Name:    "token-endpoint",
				EnvVars: []string{"TOKEN_ENDPOINT"},
				Usage:   "Use client credentials from this token endpoint",
			},
			&cli.StringFlag{
				Name:    "token-endpoint-parameter",
				EnvVars: []string{"TOKEN_ENDPOINT_PARAMETER"},
			},
			&cli.StringFlag{
				Name:    "client-id",
				EnvVars: []string{"CLIENT_ID"},
			},
			&cli.StringFlag{
				Name:    "client-id-parameter",
				EnvVars: []string{"CLIENT_ID_PARAMETER"},
			},
			&cli.StringFlag{
				Name:    "client-secret",
				EnvVars: []string{"CLIENT_SECRET"},
			},
			&cli.StringFlag{
				Name:    "client-secret-parameter",
				EnvVars: []string{"CLIENT_SECRET_PARAMETER"},
			},
		},
	}

	app := cli.App{
		Name:  "entitlements",
		Usage: "The DOI entitlements service",
		Commands: []*cli.Command{
			&runCmd,
			&migrateCmd,
			&publishCmd,
			&checkCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("failed to run application",
			elephantine.LogKeyError, err)
		os.Exit(1)
	}
}

func runServer(c *cli.Context) error {
	var (
		addr            = c.String("addr")
		paramSourceName = c.String("parameter-source")
		profileAddr     = c.String("profile-addr")
		logLevel        = c.String("log-level")
		osEndpoint      = c.String("opensearch-endpoint")
		osAlias         = c.String("opensearch-alias")
		managedOS       = c.Bool("managed-opensearch")
		aliasTTL        = c.Duration("alias-ttl")
		fixtureFiles    = c.StringSlice("fixtures")
		refreshInterval = c.Duration("refresh-interval")
		requestTimeout  = c.Duration("request-timeout")
	)

	logger := elephantine.SetUpLogger(logLevel, os.Stdout)

	defer func() {
		if p := recover(); p != nil {
			slog.ErrorContext(c.Context, "panic during setup",
				elephantine.LogKeyError, p,
				"stack", string(debug.Stack()),
			)

			os.Exit(2)
		}
	}()

	paramSource, err := elephantine.GetParameterSource(paramSourceName)
	if err != nil {
		return fmt.Errorf("get parameter source: %w", err)
	}

	connString, err := elephantine.ResolveParameter(
		c.Context, c, paramSource, "db")
	if err != nil {
		return fmt.Errorf("resolve db parameter: %w", err)
	}

	metrics, err := entitlements.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("set up metrics: %w", err)
	}

	var (
		sources     []rights.Source
		readyChecks []entitlements.ReadyCheck
		workers     []entitlements.Worker
	)

	for _, name := range fixtureFiles {
		snap, err := rights.LoadFixtureFile(name)
		if err != nil {
			return fmt.Errorf("load fixtures from %q: %w", name, err)
		}

		metrics.SnapshotLoaded("fixtures", snap.Version(), nil)

		logger.Info("loaded rights fixtures",
			"file", name,
			rights.LogKeyRightsVersion, snap.Version())

		sources = append(sources, rights.NewMemorySource(snap))
	}

	if connString != "" {
		dbpool, err := pgxpool.New(c.Context, connString)
		if err != nil {
			return fmt.Errorf("create connection pool: %w", err)
		}

		defer func() {
			// Don't block for close
			go dbpool.Close()
		}()

		err = dbpool.Ping(c.Context)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}

		pgSource := rights.NewMemorySource(nil)

		loader, err := rights.NewPostgresLoader(rights.PostgresLoaderOptions{
			Logger: logger.With(
				elephantine.LogKeyComponent, "postgres-loader",
				rights.LogKeyRightsSource, "postgres"),
			DB:              dbpool,
			Target:          pgSource,
			RefreshInterval: refreshInterval,
			OnLoad: func(version string, err error) {
				metrics.SnapshotLoaded("postgres", version, err)
			},
		})
		if err != nil {
			return fmt.Errorf("create postgres loader: %w", err)
		}

		sources = append(sources, pgSource)
		workers = append(workers, loader)
		readyChecks = append(readyChecks, entitlements.ReadyCheck{
			Name:  "postgres",
			Check: pgSource.Check,
		})
	}

	if osEndpoint != "" {
		client, err := rights.NewOpenSearchClient(c.Context, osEndpoint,
			rights.ClusterAuth{
				IAM: managedOS,
			})
		if err != nil {
			return err
		}

		osSource, err := rights.NewOpenSearchSource(rights.OpenSearchOptions{
			Logger: logger.With(
				elephantine.LogKeyComponent, "opensearch-source",
				rights.LogKeyRightsSource, "opensearch"),
			Client:   client,
			Alias:    osAlias,
			AliasTTL: aliasTTL,
		})
		if err != nil {
			return fmt.Errorf("create opensearch source: %w", err)
		}

		sources = append(sources, osSource)
		readyChecks = append(readyChecks, entitlements.ReadyCheck{
			Name:  "opensearch",
			Check: osSource.Check,
		})
	}

	var source rights.Source

	switch len(sources) {
	case 0:
		return errors.New(
			"no rights source configured, use --fixtures, --db or --opensearch-endpoint")
	case 1:
		source = sources[0]
	default:
		source = rights.NewCombined(sources...)
	}

	service, err := entitlements.NewService(entitlements.ServiceOptions{
		Logger: logger.With(
			elephantine.LogKeyComponent, "service"),
		Metrics:        metrics,
		Source:         source,
		Concurrency:    c.Int("concurrency"),
		LookupTimeout:  c.Duration("lookup-timeout"),
		MaxDOIs:        c.Int("max-dois"),
		MaxIdentifiers: c.Int("max-identifiers"),
	})
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	err = entitlements.RunServer(c.Context, entitlements.Parameters{
		Addr:           addr,
		ProfileAddr:    profileAddr,
		Logger:         logger,
		Service:        service,
		ReadyChecks:    readyChecks,
		Workers:        workers,
		RequestTimeout: requestTimeout,
	})
	if err != nil {
		return fmt.Errorf("run application: %w", err)
	}

	return nil
}

func migrateDB(c *cli.Context) error {
	paramSource, err := elephantine.GetParameterSource(
		c.String("parameter-source"))
	if err != nil {
		return fmt.Errorf("get parameter source: %w", err)
	}

	connString, err := elephantine.ResolveParameter(
		c.Context, c, paramSource, "db")
	if err != nil {
		return fmt.Errorf("resolve db parameter: %w", err)
	}

	if connString == "" {
		return errors.New("no database connection string configured")
	}

	conn, err := pgx.Connect(c.Context, connString)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	defer conn.Close(c.Context)

	m, err := migrate.NewMigrator(c.Context, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	err = m.LoadMigrations(schema.Migrations)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	err = m.Migrate(c.Context)
	if err != nil {
		return fmt.Errorf("migrate to current DB schema: %w", err)
	}

	return nil
}

func publishRights(c *cli.Context) error {
	var (
		fixtureFile = c.String("fixtures")
		generation  = c.String("generation")
	)

	logger := elephantine.SetUpLogger("info", os.Stdout)

	if generation == "" {
		generation = time.Now().UTC().Format("20060102T150405")
	}

	var snap *rights.Snapshot

	if fixtureFile != "" {
		s, err := rights.LoadFixtureFile(fixtureFile)
		if err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}

		snap = s
	} else {
		s, err := loadFromPostgres(c, logger)
		if err != nil {
			return err
		}

		snap = s
	}

	client, err := rights.NewOpenSearchClient(c.Context,
		c.String("opensearch-endpoint"),
		rights.ClusterAuth{
			IAM: c.Bool("managed-opensearch"),
		})
	if err != nil {
		return err
	}

	publisher, err := rights.NewPublisher(rights.PublisherOptions{
		Logger: logger,
		Client: client,
		Alias:  c.String("opensearch-alias"),
	})
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}

	_, err = publisher.Publish(c.Context, generation, snap)
	if err != nil {
		return fmt.Errorf("publish rights: %w", err)
	}

	return nil
}

func loadFromPostgres(
	c *cli.Context, logger *slog.Logger,
) (*rights.Snapshot, error) {
	paramSource, err := elephantine.GetParameterSource(
		c.String("parameter-source"))
	if err != nil {
		return nil, fmt.Errorf("get parameter source: %w", err)
	}

	connString, err := elephantine.ResolveParameter(
		c.Context, c, paramSource, "db")
	if err != nil {
		return nil, fmt.Errorf("resolve db parameter: %w", err)
	}

	if connString == "" {
		return nil, errors.New("either --fixtures or --db must be set")
	}

	dbpool, err := pgxpool.New(c.Context, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	defer dbpool.Close()

	target := rights.NewMemorySource(nil)

	loader, err := rights.NewPostgresLoader(rights.PostgresLoaderOptions{
		Logger: logger,
		DB:     dbpool,
		Target: target,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgres loader: %w", err)
	}

	_, err = loader.Load(c.Context)
	if err != nil {
		return nil, fmt.Errorf("load rights from postgres: %w", err)
	}

	return target.Current(), nil
}

func checkEntitlements(c *cli.Context) error {
	req := rpc.EntitlementRequest{
		Dois: c.StringSlice("doi"),
	}

	for _, arg := range c.StringSlice("identifier") {
		typeName, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid identifier %q, expected TYPE=value", arg)
		}

		t, err := rpc.ParseIdentifierType(strings.ToUpper(typeName))
		if err != nil {
			return fmt.Errorf("invalid identifier %q: %w", arg, err)
		}

		req.Identifiers = append(req.Identifiers, &rpc.Identifier{
			Type:  t,
			Value: value,
		})
	}

	paramSource, err := elephantine.GetParameterSource(
		c.String("parameter-source"))
	if err != nil {
		return fmt.Errorf("get parameter source: %w", err)
	}

	tokenEndpoint, err := elephantine.ResolveParameter(
		c.Context, c, paramSource, "token-endpoint")
	if err != nil {
		return fmt.Errorf("resolve token endpoint parameter: %w", err)
	}

	httpClient := http.DefaultClient

	if tokenEndpoint != "" {
		clientID, err := elephantine.ResolveParameter(
			c.Context, c, paramSource, "client-id",
		)
		if err != nil {
			return fmt.Errorf("resolve client id parameter: %w", err)
		}

		clientSecret, err := elephantine.ResolveParameter(
			c.Context, c, paramSource, "client-secret",
		)
		if err != nil {
			return fmt.Errorf("resolve client secret parameter: %w", err)
		}

		clientCredentialsConf := clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenEndpoint,
		}

		httpClient = clientCredentialsConf.Client(c.Context)
	}

	client := rpc.NewEntitlementsJSONClient(c.String("endpoint"), httpClient)

	res, err := client.GetEntitlements(c.Context, &req)
	if err != nil {
		return fmt.Errorf("get entitlements: %w", err)
	}

	out, err := protojson.MarshalOptions{
		Multiline:       true,
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(out))
	if err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}
