package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"recettes-backend/services"
)

// responseWriter wrapper pour capturer le code de statut
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging journalise les requêtes HTTP en erreur et notifie Slack pour les
// erreurs serveur (5xx). Les erreurs client (4xx) sont seulement
// journalisées.
func Logging(slackService *services.SlackService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := rw.statusCode

			if statusCode >= http.StatusBadRequest {
				log.Printf(
					"⚠️ %s %s -> %d (%s)",
					r.Method,
					r.RequestURI,
					statusCode,
					duration,
				)

				if statusCode >= http.StatusInternalServerError && slackService != nil {
					slackService.SendCriticalError(
						r.Method,
						r.RequestURI,
						strconv.Itoa(statusCode),
						http.StatusText(statusCode),
					)
				}
			}
		})
	}
}
