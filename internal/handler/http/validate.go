package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/utils"
	"github.com/MKhiriev/go-schema-gate/models"
)

// validate returns the POST handler for endpoint. The body is handed to the
// gate as raw bytes; decoding is part of validation.
func (h *Handler) validate(endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, tooLarge.Limit))
				return
			}
			h.writeError(w, r, fmt.Errorf("%w: %v", ErrUnreadableBody, err))
			return
		}

		if _, err = h.services.GateService.Validate(r.Context(), endpoint, body); err != nil {
			h.writeError(w, r, err)
			return
		}

		if _, err = utils.WriteJSON(w, models.AcceptedResponse{Status: models.StatusAccepted}, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing response")
		}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse(err)
	if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok {
		resp.TraceID = traceID
	}

	if _, writeErr := utils.WriteJSON(w, resp, statusFromError(err)); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}
