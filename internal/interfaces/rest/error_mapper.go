package rest

import (
	"errors"
	"net/http"

	"github.com/paywrap/ezidebit-gateway/internal/domain"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// MapError translates gateway errors to an HTTP status and response body.
func MapError(err error) (int, ErrorResponse) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError

	var gwErr *domain.Error
	if errors.As(err, &gwErr) {
		code = string(gwErr.Kind)
		switch gwErr.Kind {
		case domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindGateway:
			status = http.StatusUnprocessableEntity
		case domain.KindConnection:
			status = http.StatusBadGateway
		}
	}

	return status, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	}
}
