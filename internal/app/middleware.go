package app

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/klokku/familyhub/internal/config"
	"github.com/klokku/familyhub/internal/rest"
	"github.com/klokku/familyhub/internal/session"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

const BoardIdHeader = "X-Board-Id"

// BoardMiddleware opens the board named by the X-Board-Id header and puts it
// into the request context.
func BoardMiddleware(boards *session.Registry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			boardId := strings.TrimSpace(req.Header.Get(BoardIdHeader))
			if boardId == "" {
				log.Debug("request without board id")
				rest.WriteError(w, http.StatusBadRequest, "Missing board id", "'"+BoardIdHeader+"' header is required")
				return
			}
			board := boards.Open(boardId)
			log.Tracef("board resolved: %s", board.Id)
			next.ServeHTTP(w, req.WithContext(session.WithBoard(req.Context(), board)))
		})
	}
}

// WithCors wraps the router for the mobile and web clients.
func WithCors(h http.Handler, cfg config.Cors) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", BoardIdHeader},
	}).Handler(h)
}
