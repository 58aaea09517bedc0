package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func principalHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Principal", Principal(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth_MissingToken_Rejected(t *testing.T) {
	config := NewAuthConfigWithKeys([]string{"secret"})
	handler := BearerAuth(config)(principalHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestBearerAuth_ValidToken_Passes(t *testing.T) {
	config := NewAuthConfigWithKeys([]string{"secret"})
	handler := BearerAuth(config)(principalHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("X-Principal"); got != DefaultPrincipal {
		t.Errorf("principal = %q, want %q", got, DefaultPrincipal)
	}
}

func TestBearerAuth_NamedKey_SetsPrincipal(t *testing.T) {
	config := NewAuthConfigWithKeys([]string{"red-five:xwing"})
	handler := BearerAuth(config)(principalHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer xwing")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("named key: status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("X-Principal"); got != "red-five" {
		t.Errorf("principal = %q, want %q", got, "red-five")
	}
}

func TestBearerAuth_InvalidToken_Rejected(t *testing.T) {
	config := NewAuthConfigWithKeys([]string{"secret"})
	handler := BearerAuth(config)(principalHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestBearerAuth_WrongScheme_Rejected(t *testing.T) {
	config := NewAuthConfigWithKeys([]string{"secret"})
	handler := BearerAuth(config)(principalHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic secret")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestBearerAuth_Disabled_PassesAll(t *testing.T) {
	config := NewAuthConfigWithKeys(nil)
	handler := BearerAuth(config)(principalHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("auth disabled: status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("X-Principal"); got != DefaultPrincipal {
		t.Errorf("principal = %q, want %q", got, DefaultPrincipal)
	}
}

func TestNewAuthConfigWithKeys_ParsesEntries(t *testing.T) {
	config := NewAuthConfigWithKeys([]string{"red-five:xwing", "bare-secret", "  ", ""})

	if !config.Enabled() {
		t.Fatal("Enabled() = false, want true")
	}

	name, ok := config.Authenticate("xwing")
	if !ok || name != "red-five" {
		t.Errorf("Authenticate(xwing) = %q, %v", name, ok)
	}

	name, ok = config.Authenticate("bare-secret")
	if !ok || name != DefaultPrincipal {
		t.Errorf("Authenticate(bare-secret) = %q, %v", name, ok)
	}

	if _, ok := config.Authenticate("red-five"); ok {
		t.Error("the key name must not authenticate as a secret")
	}
}
