package middleware

import (
	"fmt"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/relayhq/relay/pkg/log"
	"github.com/relayhq/relay/util"
)

func WriteRequestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", chiMiddleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	})
}

// SetupCORS writes the permissive CORS headers expected by in-app
// callers on every response. Preflight requests short-circuit here
// before any other handler logic runs.
func SetupCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")

		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func JsonResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Recover converts a panic anywhere down the chain into a JSON 500
// carrying the panic message, so callers always get a structured body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.FromContext(r.Context()).Errorf("recovered from panic: %v", rec)

				body := fmt.Sprintf(`{"error":%q}`, fmt.Sprintf("%v", rec))
				util.WriteResponse(w, r, []byte(body), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
