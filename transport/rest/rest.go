// Package rest exposes the social stores over HTTP with fiber.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buzkaaclicker/social"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

func requestLog(ctx *fiber.Ctx) *logrus.Entry {
	return logrus.
		WithField("remote_addr", ctx.Context().RemoteAddr()).
		WithField("path", ctx.Path()).
		WithField("z_referer", string(ctx.Request().Header.Peek("Referer"))).
		WithField("z_user_agent", string(ctx.Request().Header.Peek("User-Agent"))).
		WithField("z_x_forwared_for", string(ctx.Request().Header.Peek("X-Forwarded-For")))
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ctx.
			Status(fe.Code).
			JSON(&ErrorResponse{ErrorMessage: fe.Message})
	}
	requestLog(ctx).WithError(err).Errorln("Internal server error.")
	// keep internal server errors private. reply with generic error message.
	return ctx.
		Status(fiber.StatusInternalServerError).
		JSON(&ErrorResponse{ErrorMessage: fiber.ErrInternalServerError.Message})
}

func NotFoundHandler(ctx *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound)
}

func JsonErrorMessageResponse(message string) string {
	bytes, err := json.Marshal(ErrorResponse{ErrorMessage: message})
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

// storeError turns a domain error into a client error. Missing records are
// answered with missingStatus, conflicts and failed validations with 400.
// Anything else is wrapped and ends up as a 500.
func storeError(err error, missingStatus int, action string) error {
	var domainErr *social.Error
	if !errors.As(err, &domainErr) {
		return fmt.Errorf("%s: %w", action, err)
	}
	if errors.Is(domainErr, social.ErrNotFound) {
		return fiber.NewError(missingStatus, domainErr.Message)
	}
	return fiber.NewError(fiber.StatusBadRequest, domainErr.Message)
}

// uuidParam returns the :id route param, which has to be a uuid.
func uuidParam(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
