package middleware

import (
	"fmt"
	"net/http"

	"saude-connect-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware is the centralized fallback for anything a handler did
// not foresee. In production the response carries generic text only; in other
// environments the panic detail is included to aid debugging.
type RecoveryMiddleware struct {
	log        *logrus.Logger
	production bool
}

func NewRecoveryMiddleware(log *logrus.Logger, production bool) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		log:        log,
		production: production,
	}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.Errorf("Panic while serving %s %s: %+v", r.Method, r.URL.Path, rec)

				if m.production {
					response.InternalServerError(w, "Internal server error")
					return
				}
				response.Error(w, http.StatusInternalServerError, "Internal server error", fmt.Sprintf("%+v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
