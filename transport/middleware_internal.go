package transport

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
)

// InternalMiddleware guards service-to-service endpoints with a static
// bearer key. The comparison is constant time so the key cannot be probed
// byte by byte.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
