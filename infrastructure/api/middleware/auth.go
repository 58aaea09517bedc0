package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

type contextKey string

const principalKey contextKey = "principal"

// DefaultPrincipal is the requester identity recorded for keys configured
// without an explicit name.
const DefaultPrincipal = "default"

// AuthConfig holds the API key configuration for bearer authentication.
// Keys are configured as "name:secret" pairs; a bare secret is assigned the
// default principal name. An empty key set disables authentication.
type AuthConfig struct {
	principals map[string]string
}

// NewAuthConfigWithKeys creates an AuthConfig from raw key entries.
func NewAuthConfigWithKeys(keys []string) AuthConfig {
	principals := make(map[string]string, len(keys))
	for _, entry := range keys {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, secret, found := strings.Cut(entry, ":")
		if !found || secret == "" {
			principals[entry] = DefaultPrincipal
			continue
		}
		principals[secret] = name
	}
	return AuthConfig{principals: principals}
}

// Enabled reports whether any keys are configured.
func (c AuthConfig) Enabled() bool {
	return len(c.principals) > 0
}

// Authenticate resolves a presented secret to its principal name.
func (c AuthConfig) Authenticate(secret string) (string, bool) {
	for known, name := range c.principals {
		if subtle.ConstantTimeCompare([]byte(known), []byte(secret)) == 1 {
			return name, true
		}
	}
	return "", false
}

// BearerAuth returns middleware that requires a valid bearer token on every
// request. The authenticated principal is stored in the request context for
// handlers to attribute the request to. With no keys configured all requests
// pass with the default principal.
func BearerAuth(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() {
				next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), DefaultPrincipal)))
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				WriteError(w, r, NewAuthenticationError("missing bearer token"), nil)
				return
			}

			principal, ok := config.Authenticate(token)
			if !ok {
				WriteError(w, r, NewAuthenticationError("invalid bearer token"), nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// Principal returns the authenticated principal from the context, or the
// empty string when the request was not authenticated.
func Principal(ctx context.Context) string {
	principal, _ := ctx.Value(principalKey).(string)
	return principal
}
