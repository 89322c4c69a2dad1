package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-drivers/internal/app"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/utils"
	"github.com/MKhiriev/go-fleet-drivers/internal/validators"
	"github.com/MKhiriev/go-fleet-drivers/models"
	"github.com/go-chi/chi/v5"
)

const driverIDParam = "driverId"

// maxDriverBodyBytes caps create and update bodies at 100kb.
const maxDriverBodyBytes = 100 << 10

// decodeDriverBody reads at most maxDriverBodyBytes of the request body.
func decodeDriverBody(w http.ResponseWriter, r *http.Request) (models.DriverInput, error) {
	return validators.DecodeDriverInput(http.MaxBytesReader(w, r.Body, maxDriverBodyBytes))
}

func (h *Handler) createDriver(w http.ResponseWriter, r *http.Request) {
	in, err := decodeDriverBody(w, r)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgUnableToCreateDriver)
		return
	}

	driver, err := h.services.DriverService.CreateDriver(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgUnableToCreateDriver)
		return
	}

	logger.FromRequest(r).Debug().Str("func", "*Handler.createDriver").Int64("driver_id", driver.DriverID).Msg("driver created")
	utils.WriteJSON(w, driver, http.StatusCreated)
}

func (h *Handler) listDrivers(w http.ResponseWriter, r *http.Request) {
	params, err := validators.ParseListParams(r.URL.Query())
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	drivers, err := h.services.DriverService.ListDrivers(r.Context(), params)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, drivers, http.StatusOK)
}

func (h *Handler) updateDriver(w http.ResponseWriter, r *http.Request) {
	driverID, err := validators.ParseDriverID(chi.URLParam(r, driverIDParam))
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	in, err := decodeDriverBody(w, r)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	driver, err := h.services.DriverService.UpdateDriver(r.Context(), driverID, in)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UpdateDriverResponse{
		Message:       app.MsgDriverUpdated,
		UpdatedDriver: driver,
	}, http.StatusOK)
}

func (h *Handler) deleteDriver(w http.ResponseWriter, r *http.Request) {
	driverID, err := validators.ParseDriverID(chi.URLParam(r, driverIDParam))
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	if err = h.services.DriverService.DeleteDriver(r.Context(), driverID); err != nil {
		h.writeServiceError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDriverDeleted}, http.StatusOK)
}
