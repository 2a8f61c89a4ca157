package rights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/getftr/entitlement-index/postgres"
	"github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ttab/elephantine"
	"golang.org/x/sync/errgroup"
)

// NotifyRightsChanged is the channel that the database triggers notify when
// the rights tables change.
const NotifyRightsChanged = "rights_changed"

const (
	DefaultRefreshInterval = 5 * time.Minute
	listenerRetryDelay     = 5 * time.Second
)

type PostgresLoaderOptions struct {
	Logger *slog.Logger
	DB     *pgxpool.Pool
	// Target receives the snapshots that are loaded.
	Target *MemorySource
	// RefreshInterval is the interval at which the version of the rights
	// index is checked in case a notification was missed.
	RefreshInterval time.Duration
	// OnLoad is called after every load attempt that either failed or
	// resulted in a new snapshot.
	OnLoad func(version string, err error)
}

// PostgresLoader loads snapshots of the rights index from Postgres into a
// MemorySource, and reloads them when the data changes.
type PostgresLoader struct {
	logger  *slog.Logger
	db      *pgxpool.Pool
	target  *MemorySource
	opts    PostgresLoaderOptions
	version int64
}

func NewPostgresLoader(opts PostgresLoaderOptions) (*PostgresLoader, error) {
	if opts.DB == nil {
		return nil, errors.New("missing database")
	}

	if opts.Target == nil {
		return nil, errors.New("missing target source")
	}

	if opts.RefreshInterval == 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLoader{
		logger:  logger,
		db:      opts.DB,
		target:  opts.Target,
		opts:    opts,
		version: -1,
	}, nil
}

// Load reads the rights tables in a single read-only transaction and installs
// a new snapshot if the version has changed since the last load.
func (l *PostgresLoader) Load(ctx context.Context) (bool, error) {
	var (
		snapshot *Snapshot
		version  int64
		skipped  []error
	)

	err := pgx.BeginTxFunc(ctx, l.db, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, func(tx pgx.Tx) error {
		q := postgres.New(tx)

		v, err := q.GetRightsVersion(ctx)
		if err != nil {
			return fmt.Errorf("get rights version: %w", err)
		}

		version = v

		if v == l.version && l.target.Current() != nil {
			return nil
		}

		identifiers, err := q.ListInstitutionIdentifiers(ctx)
		if err != nil {
			return fmt.Errorf("list identifiers: %w", err)
		}

		documents, err := q.ListDocuments(ctx)
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}

		grants, err := q.ListGrants(ctx)
		if err != nil {
			return fmt.Errorf("list grants: %w", err)
		}

		snapshot, skipped = SnapshotFromRows(
			v, identifiers, documents, grants)

		return nil
	})
	if err != nil {
		l.reportLoad("", err)

		return false, err
	}

	if snapshot == nil {
		return false, nil
	}

	for _, rowErr := range skipped {
		l.logger.WarnContext(ctx, "skipping invalid rights row",
			elephantine.LogKeyError, rowErr,
			LogKeyRightsVersion, snapshot.Version())
	}

	l.target.Replace(snapshot)
	l.version = version

	nIdentifiers, nDocuments, nGrants := snapshot.Stats()

	l.logger.InfoContext(ctx, "loaded rights snapshot",
		LogKeyRightsVersion, snapshot.Version(),
		"identifiers", nIdentifiers,
		"documents", nDocuments,
		"grants", nGrants)

	l.reportLoad(snapshot.Version(), nil)

	return true, nil
}

func (l *PostgresLoader) reportLoad(version string, err error) {
	if l.opts.OnLoad != nil {
		l.opts.OnLoad(version, err)
	}
}

// Run keeps the target source up to date until the context is cancelled. The
// initial snapshot is loaded before Run starts waiting for changes, and a
// failure to load it is returned as an error.
func (l *PostgresLoader) Run(ctx context.Context) error {
	_, err := l.Load(ctx)
	if err != nil {
		return fmt.Errorf("load initial snapshot: %w", err)
	}

	changes := make(chan struct{}, 1)
	grp, gCtx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		return l.listen(gCtx, changes)
	})

	grp.Go(func() error {
		return l.reloadLoop(gCtx, changes)
	})

	err = grp.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (l *PostgresLoader) reloadLoop(
	ctx context.Context, changes <-chan struct{},
) error {
	ticker := time.NewTicker(l.opts.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case <-ticker.C:
		case <-changes:
		}

		_, err := l.Load(ctx)
		if err != nil && ctx.Err() == nil {
			l.logger.ErrorContext(ctx,
				"failed to reload rights snapshot, keeping the current one",
				elephantine.LogKeyError, err)
		}
	}
}

func (l *PostgresLoader) listen(
	ctx context.Context, changes chan<- struct{},
) error {
	for {
		err := l.runListener(ctx, changes)
		if ctx.Err() != nil {
			return ctx.Err() //nolint:wrapcheck
		}

		l.logger.ErrorContext(ctx, "rights change listener failed",
			elephantine.LogKeyError, err)

		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case <-time.After(listenerRetryDelay):
		}
	}
}

func (l *PostgresLoader) runListener(
	ctx context.Context, changes chan<- struct{},
) error {
	// We need an actual connection here, as we're going to hijack it and
	// punt it into listen mode.
	poolConn, err := l.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection from pool: %w", err)
	}

	conn := poolConn.Hijack()

	defer func() {
		err := conn.Close(context.WithoutCancel(ctx))
		if err != nil {
			l.logger.ErrorContext(ctx,
				"failed to close PG listen connection",
				elephantine.LogKeyError, err)
		}
	}()

	channel := pgx.Identifier{NotifyRightsChanged}

	_, err = conn.Exec(ctx, "LISTEN "+channel.Sanitize())
	if err != nil {
		return fmt.Errorf("failed to start listening to %q: %w",
			NotifyRightsChanged, err)
	}

	// Changes could have been made while we weren't listening.
	signal(changes)

	for {
		_, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf(
				"error while waiting for notification: %w", err)
		}

		signal(changes)
	}
}

// Non-blocking send, a pending signal already covers this change.
func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// SnapshotFromRows builds a snapshot from the rows of the rights tables.
// Invalid rows are skipped and reported back, they don't fail the load.
func SnapshotFromRows(
	version int64,
	identifiers []postgres.ListInstitutionIdentifiersRow,
	documents []string,
	grants []postgres.ListGrantsRow,
) (*Snapshot, []error) {
	var skipped []error

	b := NewSnapshotBuilder()

	for _, row := range identifiers {
		t, err := entitlements.ParseIdentifierType(row.Type)
		if err != nil {
			skipped = append(skipped, fmt.Errorf(
				"identifier for %q: %w", row.Institution, err))

			continue
		}

		err = b.AddIdentifier(InstitutionID(row.Institution), t, row.Value)
		if err != nil {
			skipped = append(skipped, err)
		}
	}

	for _, doi := range documents {
		err := b.AddDocument(doi)
		if err != nil {
			skipped = append(skipped, err)
		}
	}

	for _, row := range grants {
		g, err := grantFromRow(row)
		if err != nil {
			skipped = append(skipped, fmt.Errorf(
				"grant of %q to %q: %w", row.Doi, row.Institution, err))

			continue
		}

		err = b.AddGrant(InstitutionID(row.Institution), g)
		if err != nil {
			skipped = append(skipped, err)
		}
	}

	return b.Build(fmt.Sprintf("pg-%d", version)), skipped
}

func grantFromRow(row postgres.ListGrantsRow) (Grant, error) {
	at, err := entitlements.ParseAccessType(row.AccessType)
	if err != nil {
		return Grant{}, err
	}

	g := Grant{
		DOI:        row.Doi,
		AccessType: at,
	}

	if row.DocumentUrl.Valid {
		u := row.DocumentUrl.String
		g.DocumentURL = &u
	}

	if len(row.Vor) > 0 {
		var vors []IndexedVOR

		err := json.Unmarshal(row.Vor, &vors)
		if err != nil {
			return Grant{}, fmt.Errorf("invalid VOR data: %w", err)
		}

		for _, v := range vors {
			g.VOR = append(g.VOR, VOR(v))
		}
	}

	return g, nil
}
