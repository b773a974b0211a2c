package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// errorStatuses is checked in order; the first match wins. Transient
// storage failures come first because they wrap the generic query errors.
var errorStatuses = []struct {
	err    error
	status int
	msg    string
}{
	{store.ErrTransient, http.StatusServiceUnavailable, app.MsgServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},
	{store.ErrRecordNotSaved, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// responseFromError returns the status and body text for err. An empty
// mapped message means the error text itself is safe to show, which is
// only the case for validation failures.
func responseFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			if e.msg == "" {
				return e.status, err.Error()
			}
			return e.status, e.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// are reported with a generic message only.
func writeError(w http.ResponseWriter, err error) {
	status, msg := responseFromError(err)
	http.Error(w, msg, status)
}
