package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-schema-gate/internal/app"
	"github.com/MKhiriev/go-schema-gate/internal/service"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
	"github.com/MKhiriev/go-schema-gate/models"
)

const (
	classServer  validators.StatusClass = "server"
	kindInternal validators.Kind        = "internal"
)

type errorMapping struct {
	status int
	class  validators.StatusClass
	kind   validators.Kind
}

var errorStatusMap = map[error]errorMapping{
	ErrPayloadTooLarge:         {http.StatusRequestEntityTooLarge, validators.ClassClient, "payload_too_large"},
	ErrUnreadableBody:          {http.StatusBadRequest, validators.ClassClient, "unreadable_body"},
	service.ErrUnknownEndpoint: {http.StatusNotFound, validators.ClassClient, "unknown_endpoint"},
}

var classStatusMap = map[validators.StatusClass]int{
	validators.ClassClient: http.StatusBadRequest,
	validators.ClassConfig: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

func mappingFromError(err error) errorMapping {
	if c, ok := validators.AsClassified(err); ok {
		return errorMapping{
			status: classStatusMap[c.ErrorClass()],
			class:  c.ErrorClass(),
			kind:   c.ErrorKind(),
		}
	}
	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping
		}
	}
	return errorMapping{http.StatusInternalServerError, classServer, kindInternal}
}

// errorResponse builds the response body for err. Details of unexpected
// errors stay in the logs.
func errorResponse(err error) models.ErrorResponse {
	mapping := mappingFromError(err)
	resp := models.ErrorResponse{
		StatusClass: string(mapping.class),
		Kind:        string(mapping.kind),
		Message:     err.Error(),
	}
	if mapping.kind == kindInternal {
		resp.Message = app.MsgInternalServerError
	}

	if c, ok := validators.AsClassified(err); ok {
		resp.Field = c.ErrorField()
	}

	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		resp.Bound = ve.Bound
		resp.Limit = ve.Limit
		resp.Actual = ve.Actual
	}

	return resp
}
