package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/familyhub/internal/config"
	"github.com/klokku/familyhub/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg  config.Application
	deps *Dependencies
	srv  *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	deps, err := BuildDependencies(cfg, utils.SystemClock{})
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:      NewRouter(deps, cfg),
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, srv: srv}, nil
}

// NewRouter builds the HTTP handler with routes, board middleware and CORS.
func NewRouter(deps *Dependencies, cfg config.Application) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, deps)
	return WithCors(r, cfg.Cors)
}

// Run serves until ctx is cancelled, then shuts the server down.
func (a *Application) Run(ctx context.Context) error {
	go a.sweepBoards(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// sweepBoards discards boards nobody has used for the configured idle timeout.
func (a *Application) sweepBoards(ctx context.Context) {
	if a.cfg.Board.IdleTimeout <= 0 || a.cfg.Board.SweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(a.cfg.Board.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if swept := a.deps.Boards.Sweep(a.cfg.Board.IdleTimeout); swept > 0 {
				log.Infof("discarded %d idle boards", swept)
			}
		}
	}
}
