package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// sync stores the pushed record unless the server already holds a version
// that is at least as new, and always answers with the stored version.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.sync").Logger()

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrValidationNoUserID)
		return
	}

	var req models.SyncRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	stored, err := h.services.RecordService.Sync(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("key", req.Key).Msg("error syncing record")
		writeError(w, err)
		return
	}

	if err = utils.WriteJSON(w, stored, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.getAll").Logger()

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrValidationNoUserID)
		return
	}

	records, err := h.services.RecordService.GetAll(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("error listing records")
		writeError(w, err)
		return
	}
	if records == nil {
		records = []models.RemoteRecord{}
	}

	if err = utils.WriteJSON(w, models.RecordsResponse{Records: records, Length: len(records)}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.get").Logger()

	userID, key, ok := h.scope(w, r)
	if !ok {
		return
	}

	rec, err := h.services.RecordService.Get(r.Context(), userID, key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("record lookup failed")
		writeError(w, err)
		return
	}

	if err = utils.WriteJSON(w, rec, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.delete").Logger()

	userID, key, ok := h.scope(w, r)
	if !ok {
		return
	}

	if err := h.services.RecordService.Delete(r.Context(), userID, key); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("record delete failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// scope returns the authenticated user and the decoded {key} path
// parameter. On failure it has already answered the request.
func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrValidationNoUserID)
		return "", "", false
	}

	// chi matches on RawPath only when it is set; otherwise the parameter
	// is already decoded and must not be unescaped again.
	key := chi.URLParam(r, "key")
	if r.URL.RawPath != "" {
		var err error
		if key, err = url.PathUnescape(key); err != nil {
			http.Error(w, ErrInvalidKey.Error(), http.StatusBadRequest)
			return "", "", false
		}
	}

	return userID, key, true
}
