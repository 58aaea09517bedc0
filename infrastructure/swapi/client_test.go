package swapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/people/1/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name": "Luke Skywalker", "height": "172"}`))
		case "/people/9999/":
			w.WriteHeader(http.StatusNotFound)
		case "/people/500/":
			w.WriteHeader(http.StatusInternalServerError)
		case "/people/666/":
			_, _ = w.Write([]byte(`{not json`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, nil)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		record, err := client.Person(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Luke Skywalker", record.Str("name"))
		assert.Equal(t, "172", record.Str("height"))
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		_, err := client.Person(ctx, 9999)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrUnavailable)
	})

	t.Run("500 maps to ErrUnavailable", func(t *testing.T) {
		_, err := client.Person(ctx, 500)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("malformed body maps to ErrUnavailable", func(t *testing.T) {
		_, err := client.Person(ctx, 666)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	// Closed server: the port is released, so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, nil, nil)
	_, err := client.Planet(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Film(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", nil, nil)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	client = NewClient("https://example.com/api", nil, nil)
	assert.Equal(t, "https://example.com/api/", client.BaseURL(), "base URL gets a trailing slash")
}

func TestClient_Fetch_ResourcePaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"name": "x", "title": "x"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, nil)
	ctx := context.Background()

	_, _ = client.Person(ctx, 1)
	_, _ = client.Planet(ctx, 2)
	_, _ = client.Film(ctx, 3)
	_, _ = client.Vehicle(ctx, 4)
	_, _ = client.Species(ctx, 5)

	want := []string{"/people/1/", "/planets/2/", "/films/3/", "/vehicles/4/", "/species/5/"}
	assert.Equal(t, want, paths)
}
