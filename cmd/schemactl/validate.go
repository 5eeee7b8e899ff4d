package main

import (
	"context"
	"errors"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/schema"
	"github.com/MKhiriev/go-schema-gate/internal/service"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
	"github.com/MKhiriev/go-schema-gate/models"
)

const stdinArg = "-"

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema-file> <endpoint> <payload|->",
		Short: "Validate one JSON payload against an endpoint schema",
		Long: `Prints the verdict as JSON. Use "-" to read the payload from stdin.
Exits 0 when the payload is accepted, 1 when it is rejected and 2 when the schema is broken.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], args[1], args[2])
		},
	}
}

func runValidate(cmd *cobra.Command, path, endpoint, payload string) error {
	endpoints, err := schema.Load(path)
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	gate, err := service.NewGateService(endpoints, validators.DefaultFactory(), logger.Nop())
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	body := []byte(payload)
	if payload == stdinArg {
		if body, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return &exitError{code: exitConfig, err: err}
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	_, err = gate.Validate(context.Background(), endpoint, body)
	if err == nil {
		return enc.Encode(models.AcceptedResponse{Status: models.StatusAccepted})
	}

	c, ok := validators.AsClassified(err)
	if !ok {
		return &exitError{code: exitConfig, err: err}
	}

	if encErr := enc.Encode(verdict(c, err)); encErr != nil {
		return encErr
	}
	if c.ErrorClass() == validators.ClassClient {
		return &exitError{code: exitRejected, err: err}
	}
	return &exitError{code: exitConfig, err: err}
}

func verdict(c validators.Classified, err error) models.ErrorResponse {
	resp := models.ErrorResponse{
		StatusClass: string(c.ErrorClass()),
		Kind:        string(c.ErrorKind()),
		Field:       c.ErrorField(),
		Message:     err.Error(),
	}

	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		resp.Bound = ve.Bound
		resp.Limit = ve.Limit
		resp.Actual = ve.Actual
	}
	return resp
}
