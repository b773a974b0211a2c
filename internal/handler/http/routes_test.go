package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "good-token"

type testEnv struct {
	router  http.Handler
	records *mock.MockRecordService
	auth    *mock.MockAuthService
}

func newTestEnv(t *testing.T, hashKey string) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	records := mock.NewMockRecordService(ctrl)
	auth := mock.NewMockAuthService(ctrl)
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()

	auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: "user-1"}, nil).AnyTimes()
	auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(testToken)).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:    auth,
		RecordService:  records,
		AppInfoService: info,
	}, hashKey, logger.Nop())

	return &testEnv{router: h.Init(), records: records, auth: auth}
}

func (e *testEnv) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	for k, v := range headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// ── public routes ────────────────────────────────────────────────────────────

func TestRoutes_HealthAndVersionNeedNoToken(t *testing.T) {
	env := newTestEnv(t, "")
	noAuth := map[string]string{"Authorization": ""}

	rr := env.do(http.MethodGet, "/api/health", "", noAuth)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = env.do(http.MethodGet, "/api/version", "", noAuth)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3"}`, rr.Body.String())
}

func TestRoutes_TraceIDIsEchoed(t *testing.T) {
	env := newTestEnv(t, "")

	rr := env.do(http.MethodGet, "/api/health", "", map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))

	rr = env.do(http.MethodGet, "/api/health", "", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	rr = env.do(http.MethodGet, "/api/health", "", map[string]string{traceIDHeader: "bad id"})
	assert.NotEqual(t, "bad id", rr.Header().Get(traceIDHeader))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRoutes_AuthRejections(t *testing.T) {
	env := newTestEnv(t, "")

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "no token", header: "Bearer"},
		{name: "invalid token", header: "Bearer forged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, "/api/data/", "", map[string]string{"Authorization": tt.header})
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ── POST /api/sync ───────────────────────────────────────────────────────────

func TestRoutes_Sync_ReturnsStoredVersion(t *testing.T) {
	env := newTestEnv(t, "")

	req := models.SyncRequest{Key: "profile", Data: []byte{1, 2, 3}, LastModified: 100}
	stored := models.RemoteRecord{Key: "profile", Data: []byte{9}, LastModified: 200}
	env.records.EXPECT().Sync(gomock.Any(), "user-1", req).Return(stored, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rr := env.do(http.MethodPost, "/api/sync", string(body), map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.RemoteRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, stored.LastModified, got.LastModified)
	assert.Equal(t, stored.Data, got.Data)
}

func TestRoutes_Sync_BadRequests(t *testing.T) {
	env := newTestEnv(t, "")

	rr := env.do(http.MethodPost, "/api/sync", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(http.MethodPost, "/api/sync", `{"key":"k","unknown":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env.records.EXPECT().Sync(gomock.Any(), "user-1", gomock.Any()).Return(models.RemoteRecord{}, service.ErrInvalidDataProvided)
	rr = env.do(http.MethodPost, "/api/sync", `{"key":"","data":"AQ==","lastModified":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_Sync_TransientStoreFailure(t *testing.T) {
	env := newTestEnv(t, "")
	env.records.EXPECT().Sync(gomock.Any(), "user-1", gomock.Any()).
		Return(models.RemoteRecord{}, errors.Join(store.ErrTransient, store.ErrExecutingQuery))

	rr := env.do(http.MethodPost, "/api/sync", `{"key":"k","data":"AQ==","lastModified":1}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRoutes_Sync_BodyHashing(t *testing.T) {
	env := newTestEnv(t, "secret")
	body := `{"key":"k","data":"AQ==","lastModified":1}`
	valid := utils.NewHasher("secret").SumHex([]byte(body))

	t.Run("missing header", func(t *testing.T) {
		rr := env.do(http.MethodPost, "/api/sync", body, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		forged := utils.NewHasher("other").SumHex([]byte(body))
		rr := env.do(http.MethodPost, "/api/sync", body, map[string]string{utils.HashHeader: forged})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("valid hash", func(t *testing.T) {
		env.records.EXPECT().Sync(gomock.Any(), "user-1", gomock.Any()).Return(models.RemoteRecord{Key: "k", LastModified: 1}, nil)

		rr := env.do(http.MethodPost, "/api/sync", body, map[string]string{utils.HashHeader: valid})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

// ── /api/data ────────────────────────────────────────────────────────────────

func TestRoutes_GetAll(t *testing.T) {
	env := newTestEnv(t, "")
	env.records.EXPECT().GetAll(gomock.Any(), "user-1").Return([]models.RemoteRecord{{Key: "a"}, {Key: "b"}}, nil)
	env.records.EXPECT().GetAll(gomock.Any(), "user-1").Return(nil, nil)

	rr := env.do(http.MethodGet, "/api/data/", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got models.RecordsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Length)

	rr = env.do(http.MethodGet, "/api/data", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"records":[],"length":0}`, rr.Body.String())
}

func TestRoutes_Get(t *testing.T) {
	env := newTestEnv(t, "")
	env.records.EXPECT().Get(gomock.Any(), "user-1", "a/b c").Return(models.RemoteRecord{Key: "a/b c", LastModified: 5}, nil)
	env.records.EXPECT().Get(gomock.Any(), "user-1", "ghost").Return(models.RemoteRecord{}, store.ErrRecordNotFound)

	rr := env.do(http.MethodGet, "/api/data/a%2Fb%20c", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"key":"a/b c"`)

	rr = env.do(http.MethodGet, "/api/data/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_Delete(t *testing.T) {
	env := newTestEnv(t, "")
	env.records.EXPECT().Delete(gomock.Any(), "user-1", "k").Return(nil)
	env.records.EXPECT().Delete(gomock.Any(), "user-1", "gone").Return(store.ErrRecordNotFound)

	rr := env.do(http.MethodDelete, "/api/data/k", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(http.MethodDelete, "/api/data/gone", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_EscapedKeysAreDecodedOnce(t *testing.T) {
	keys := []string{"a%41", "100%", "a/b", "a/%41", "plain"}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			env := newTestEnv(t, "")
			target := "/api/data/" + url.PathEscape(key)

			env.records.EXPECT().Get(gomock.Any(), "user-1", key).Return(models.RemoteRecord{Key: key, LastModified: 1}, nil)
			rr := env.do(http.MethodGet, target, "", nil)
			require.Equal(t, http.StatusOK, rr.Code)

			var got models.RemoteRecord
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, key, got.Key)

			env.records.EXPECT().Delete(gomock.Any(), "user-1", key).Return(nil)
			rr = env.do(http.MethodDelete, target, "", nil)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t, "")

	rr := env.do(http.MethodPut, "/api/sync", "{}", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
