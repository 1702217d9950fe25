package controller

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"sentinance/customerrors"
	"sentinance/model"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

var errorsOnce sync.Once

// ConfigureErrors reports request parameter failures as 400 rather than
// huma's default 422.
func ConfigureErrors() {
	errorsOnce.Do(func() {
		base := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			return base(status, msg, errs...)
		}
	})
}

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: true,
			Message: message,
			Data:    data,
		},
	}
}

// toHumaError maps service errors onto HTTP statuses.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, customerrors.ErrNotFound), errors.Is(err, customerrors.ErrDataUnavailable):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, customerrors.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		return huma.Error500InternalServerError("upstream provider failed", err)
	}
}

func normalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
