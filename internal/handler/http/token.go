package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-drivers/internal/app"
	"github.com/MKhiriev/go-fleet-drivers/internal/utils"
	"github.com/MKhiriev/go-fleet-drivers/internal/validators"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

// issueTestToken signs a bearer token for the driver named by the driverId
// query parameter. It is only routed in token mode.
func (h *Handler) issueTestToken(w http.ResponseWriter, r *http.Request) {
	driverID, err := validators.ParseDriverID(r.URL.Query().Get(driverIDParam))
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), driverID)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Success: true, Token: token.SignedString}, http.StatusOK)
}
