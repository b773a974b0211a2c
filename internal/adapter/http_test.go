// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestRemote creates an httpRemoteAuthority pointed at the test server.
func newTestRemote(t *testing.T, serverURL string) *httpRemoteAuthority {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second, Token: "tok"}
	appCfg := config.ClientApp{HashKey: testHashKey}

	r, err := NewHTTPRemoteAuthority(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return r.(*httpRemoteAuthority)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPRemoteAuthority_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPRemoteAuthority(config.ClientAdapter{HTTPAddress: addr}, config.ClientApp{}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, "address %q", addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"localhost:8080", "http://localhost:8080"},
		{"http://localhost:8080/", "http://localhost:8080"},
		{" https://sync.example.com ", "https://sync.example.com"},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestToken_SetAndGet(t *testing.T) {
	r := newTestRemote(t, "http://localhost")
	assert.Equal(t, "tok", r.Token())

	r.SetToken("  other  ")
	assert.Equal(t, "other", r.Token())
}

// ── Upsert ──────────────────────────────────────────────────────────────────

func TestUpsert_Success(t *testing.T) {
	req := models.SyncRequest{Key: "settings", Data: []byte{1, 2, 3}, LastModified: 1000}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.NewHasher(testHashKey).SumHex(body), r.Header.Get(HashHeader))

		var got models.SyncRequest
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, req, got)

		_ = utils.WriteJSON(w, models.RemoteRecord{Key: got.Key, Data: got.Data, LastModified: 2000}, http.StatusOK)
	}))
	defer srv.Close()

	stored, err := newTestRemote(t, srv.URL).Upsert(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "settings", stored.Key)
	assert.Equal(t, int64(2000), stored.LastModified)
}

func TestUpsert_NoHashWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(HashHeader))
		_ = utils.WriteJSON(w, models.RemoteRecord{Key: "k"}, http.StatusOK)
	}))
	defer srv.Close()

	r, err := NewHTTPRemoteAuthority(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)

	_, err = r.Upsert(context.Background(), models.SyncRequest{Key: "k"})
	require.NoError(t, err)
}

func TestUpsert_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusTooManyRequests, ErrServiceUnavailable},
		{http.StatusGatewayTimeout, ErrServiceUnavailable},
		{http.StatusConflict, ErrConflict},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestRemote(t, srv.URL).Upsert(context.Background(), models.SyncRequest{Key: "k"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpsert_BadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).Upsert(context.Background(), models.SyncRequest{Key: "k"})
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestUpsert_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestRemote(t, url).Upsert(context.Background(), models.SyncRequest{Key: "k"})
	assert.ErrorIs(t, err, ErrRequestFailed)
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/data/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = utils.WriteJSON(w, models.RemoteRecord{Key: "profile", Data: []byte("x"), LastModified: 5}, http.StatusOK)
	}))
	defer srv.Close()

	rec, err := newTestRemote(t, srv.URL).Fetch(context.Background(), "profile")

	require.NoError(t, err)
	assert.Equal(t, models.RemoteRecord{Key: "profile", Data: []byte("x"), LastModified: 5}, rec)
}

func TestFetch_EscapesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/a%2Fb%20c", r.URL.EscapedPath())
		_ = utils.WriteJSON(w, models.RemoteRecord{Key: "a/b c"}, http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).Fetch(context.Background(), "a/b c")
	require.NoError(t, err)
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestRemote(t, srv.URL).Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/data/k1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestRemote(t, srv.URL).Delete(context.Background(), "k1"))
	assert.True(t, called)
}

func TestDelete_NotFoundIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.NoError(t, newTestRemote(t, srv.URL).Delete(context.Background(), "gone"))
}

func TestDelete_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.ErrorIs(t, newTestRemote(t, srv.URL).Delete(context.Background(), "k"), ErrInternalServerError)
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
	}))
	defer srv.Close()

	r := newTestRemote(t, srv.URL)
	require.NoError(t, r.Ping(context.Background()))

	healthy = false
	assert.ErrorIs(t, r.Ping(context.Background()), ErrServiceUnavailable)
}

func TestPing_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	r := newTestRemote(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.Ping(ctx), ErrRequestFailed)
}
