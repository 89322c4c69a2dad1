package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fleet-drivers/internal/app"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/service"
	"github.com/MKhiriev/go-fleet-drivers/internal/store"
	"github.com/MKhiriev/go-fleet-drivers/internal/utils"
	"github.com/MKhiriev/go-fleet-drivers/internal/validators"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,

	store.ErrDriverNotFound: http.StatusNotFound,

	service.ErrInvalidAPIKey:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// messageFromError returns the client facing text of err. Internal failures
// are reported as internalMsg, their details only reach the log.
func messageFromError(err error, status int, internalMsg string) string {
	switch status {
	case http.StatusBadRequest:
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			return validationErr.Message
		}
		return err.Error()
	case http.StatusNotFound:
		return app.MsgDriverNotFound
	case http.StatusRequestEntityTooLarge:
		return app.MsgRequestEntityTooLarge
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrTokenIsExpired) {
			return app.MsgTokenIsExpired
		}
		return app.MsgUnauthorized
	default:
		return internalMsg
	}
}

// writeServiceError maps err to a status code and an {"error": "..."} body.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)
	event := log.Warn()
	if status == http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Send()

	writeError(w, messageFromError(err, status, internalMsg), status)
}

func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
