package entitlements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/ttab/elephantine"
	"github.com/twitchtv/twirp"
	"golang.org/x/sync/errgroup"
)

// ReadyCheck is registered with the health server.
type ReadyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Worker is a background process that runs alongside the API server, f.ex.
// a rights.PostgresLoader.
type Worker interface {
	Run(ctx context.Context) error
}

type Parameters struct {
	Addr        string
	ProfileAddr string
	Logger      *slog.Logger
	Service     rpc.Entitlements
	ReadyChecks []ReadyCheck
	Workers     []Worker
	// RequestTimeout is used as the read and write timeout of the API
	// server.
	RequestTimeout time.Duration
}

// NewAPIHandler returns the handler for the API server.
func NewAPIHandler(logger *slog.Logger, svc rpc.Entitlements) http.Handler {
	router := http.NewServeMux()

	api := rpc.NewEntitlementsServer(svc,
		twirp.WithServerHooks(elephantine.LoggingHooks(logger)))

	router.Handle(api.PathPrefix(), api)

	router.Handle("/health/alive", http.HandlerFunc(func(
		w http.ResponseWriter, req *http.Request,
	) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)

		_, _ = fmt.Fprintln(w, "I AM ALIVE!")
	}))

	return router
}

func RunServer(ctx context.Context, p Parameters) error {
	logger := p.Logger

	healthServer := elephantine.NewHealthServer(logger, p.ProfileAddr)
	serverGroup, gCtx := errgroup.WithContext(ctx)

	aliveEndpoint := fmt.Sprintf(
		"http://localhost%s/health/alive",
		p.Addr,
	)

	healthServer.AddReadyFunction("api_liveness",
		elephantine.LivenessReadyCheck(aliveEndpoint))

	for _, rc := range p.ReadyChecks {
		healthServer.AddReadyFunction(rc.Name, rc.Check)
	}

	for _, w := range p.Workers {
		serverGroup.Go(func() error {
			err := w.Run(gCtx)
			if err != nil {
				return fmt.Errorf("worker error: %w", err)
			}

			return nil
		})
	}

	serverGroup.Go(func() error {
		logger.Debug("starting health server")

		err := healthServer.ListenAndServe(gCtx)
		if err != nil {
			return fmt.Errorf("health server error: %w", err)
		}

		return nil
	})

	serverGroup.Go(func() error {
		server := http.Server{
			Addr:              p.Addr,
			Handler:           NewAPIHandler(logger, p.Service),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       p.RequestTimeout,
			WriteTimeout:      p.RequestTimeout,
		}

		err := elephantine.ListenAndServeContext(gCtx, &server)
		if err != nil {
			return fmt.Errorf("API server error: %w", err)
		}

		return nil
	})

	err := serverGroup.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}
