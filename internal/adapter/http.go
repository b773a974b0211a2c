package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = utils.HashHeader

type httpRemoteAuthority struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteAuthority constructs an HTTP/REST implementation of
// [RemoteAuthority]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. When appCfg.HashKey is set every
// request body is signed in the [HashHeader] header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAuthority(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteAuthority, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	r := &httpRemoteAuthority{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		r.hasher = utils.NewHasher(appCfg.HashKey)
	}
	r.SetToken(adapterCfg.Token)

	return r, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAuthority]. It stores token (whitespace-trimmed)
// for the Authorization header of all subsequent requests.
func (h *httpRemoteAuthority) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAuthority].
func (h *httpRemoteAuthority) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Upsert implements [RemoteAuthority]. POST /api/sync.
func (h *httpRemoteAuthority) Upsert(ctx context.Context, req models.SyncRequest) (models.RemoteRecord, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("encode sync request: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(h.bodyHashHeaders(body)).
		SetBody(body).
		Post("/api/sync")
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: sync: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	var stored models.RemoteRecord
	if err = json.Unmarshal(resp.Body(), &stored); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	h.logger.Debug().Str("func", "*httpRemoteAuthority.Upsert").
		Str("key", req.Key).
		Int64("sent_last_modified", req.LastModified).
		Int64("stored_last_modified", stored.LastModified).
		Msg("record pushed")

	return stored, nil
}

// Fetch implements [RemoteAuthority]. GET /api/data/{key}.
func (h *httpRemoteAuthority) Fetch(ctx context.Context, key string) (models.RemoteRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		Get("/api/data/{key}")
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: fetch: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	var rec models.RemoteRecord
	if err = json.Unmarshal(resp.Body(), &rec); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return rec, nil
}

// Delete implements [RemoteAuthority]. DELETE /api/data/{key}; a 404 counts
// as success.
func (h *httpRemoteAuthority) Delete(ctx context.Context, key string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		Delete("/api/data/{key}")
	if err != nil {
		return fmt.Errorf("%w: delete: %w", ErrRequestFailed, err)
	}

	err = mapHTTPError(resp)
	if errors.Is(err, ErrNotFound) {
		h.logger.Debug().Str("func", "*httpRemoteAuthority.Delete").Str("key", key).Msg("record already absent on server")
		return nil
	}

	return err
}

// Ping implements [RemoteAuthority]. GET /api/health.
func (h *httpRemoteAuthority) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpRemoteAuthority) bodyHashHeaders(body []byte) map[string]string {
	if h.hasher == nil {
		return nil
	}
	return map[string]string{HashHeader: h.hasher.SumHex(body)}
}
