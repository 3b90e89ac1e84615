package chi

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// operationalPaths serve probes and scrapers. They skip auth and rate limiting.
var operationalPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

func isOperational(r *http.Request) bool {
	_, ok := operationalPaths[r.URL.Path]
	return ok
}

var (
	errMissingAuth = errors.New("missing authorization header")
	errNotBearer   = errors.New("authorization header must use Bearer scheme")
	errEmptyToken  = errors.New("bearer token is empty")
	errUnknownKey  = errors.New("invalid api key")
)

// authRealm is advertised in WWW-Authenticate on 401 responses.
const authRealm = `Bearer realm="learnrec"`

// BearerAuthMiddleware requires "Authorization: Bearer <key>" on every
// recommendation route, where key is one of apiKeys. Empty keys are ignored;
// with none left, every request passes.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isOperational(r) {
				next.ServeHTTP(w, r)
				return
			}
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err == nil && !knownKey(keys, token) {
				err = errUnknownKey
			}
			if err != nil {
				w.Header().Set("WWW-Authenticate", authRealm)
				writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the credentials of a Bearer authorization header.
// The scheme name is case-insensitive.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuth
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// knownKey compares token against every key in constant time.
func knownKey(keys [][]byte, token string) bool {
	t := []byte(token)
	match := 0
	for _, k := range keys {
		match |= subtle.ConstantTimeCompare(k, t)
	}
	return match == 1
}
