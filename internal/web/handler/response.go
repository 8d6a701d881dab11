package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
)

// Response is the envelope of every mutating endpoint and of every error.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK writes a successful envelope.
func OK(c *fiber.Ctx, message string) error {
	return c.JSON(Response{Success: true, Message: message})
}

// Fail writes a failed envelope with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Success: false, Message: message})
}

// Bind parses the JSON body into dst and validates it.
// Every failure comes back as a validation error.
func Bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apierror.New(apierror.KindValidation, errors.Wrap(err, "invalid request body"))
	}

	if fieldErrs := (XValidator{}).Validate(dst); len(fieldErrs) > 0 {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fe.String())
		}

		return apierror.Validation("%s", strings.Join(msgs, ", "))
	}

	return nil
}
