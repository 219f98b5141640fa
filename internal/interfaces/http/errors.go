package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeLocationMismatch  = "LOCATION_MISMATCH"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeValidation        = "VALIDATION"
	CodeFetchFailure      = "FETCH_FAILURE"
	CodeDuplicateRequest  = "DUPLICATE_REQUEST"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInternal          = "INTERNAL"
)

// ErrorStatus traduce un error de dominio a (status HTTP, código). También lo usa la capa GraphQL.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrLocationMismatch):
		return fiber.StatusConflict, CodeLocationMismatch
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, CodeInsufficientStock
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrDuplicateRequest):
		return fiber.StatusConflict, CodeDuplicateRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrFetchFailure):
		return fiber.StatusBadGateway, CodeFetchFailure
	}
	return fiber.StatusInternalServerError, CodeInternal
}

// writeError responde con el status y código del error. Los 5xx no exponen el detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	status, code := ErrorStatus(err)
	msg := err.Error()
	switch code {
	case CodeInternal:
		msg = "error interno"
	case CodeFetchFailure:
		msg = domain.ErrFetchFailure.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}
