package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
)

// StatusOf maps an error to the HTTP status it is answered with.
func StatusOf(err error) int {
	var (
		ae *apierror.Error
		fe *fiber.Error
	)

	if !errors.As(err, &ae) && errors.As(err, &fe) {
		return fe.Code
	}

	switch apierror.KindOf(err) {
	case apierror.KindValidation:
		return fiber.StatusBadRequest
	case apierror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler answers every error returned by a handler with the failed envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return Fail(c, status, err.Error())
}
