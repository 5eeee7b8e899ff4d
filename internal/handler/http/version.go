package http

import (
	"net/http"

	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/utils"
	"github.com/MKhiriev/go-schema-gate/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) listEndpoints(w http.ResponseWriter, r *http.Request) {
	resp := models.EndpointsResponse{Endpoints: h.services.GateService.Endpoints()}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing endpoints")
	}
}
