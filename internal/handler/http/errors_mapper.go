package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/internal/validators"
	"github.com/MKhiriev/go-bookshelf/models"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptyName:        http.StatusBadRequest,
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	validators.ErrPasswordTooShort: http.StatusBadRequest,
	validators.ErrEmptyTitle:       http.StatusBadRequest,
	validators.ErrEmptyDescription: http.StatusBadRequest,
	validators.ErrEmptyAuthor:      http.StatusBadRequest,
	validators.ErrNegativePrice:    http.StatusBadRequest,
	validators.ErrInvalidCategory:  http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,

	service.ErrInvalidBookID:           http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrBookNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// classifyError maps an error chain to an HTTP status and a safe client
// message. Known sentinels expose their own text; anything unmatched is an
// internal error and reports only the generic 500 status text so no storage
// or driver detail leaks.
func classifyError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				break
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// respondError writes the JSON error body for err using [classifyError].
func respondError(w http.ResponseWriter, err error) {
	status, message := classifyError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
