package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"teamtodo/internal/entities"
	"teamtodo/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// HeaderUserID carries the id of the acting user.
const HeaderUserID = "X-User-Id"

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrValidation):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusForbidden
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: msg}
}

func parseID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, entities.Validationf("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, entities.Validationf("%s must be an integer", name)
	}
	return id, nil
}

func pathID(c *fiber.Ctx, param string) (int64, error) {
	return parseID(c.Params(param), param)
}

func queryID(c *fiber.Ctx, key string) (int64, error) {
	return parseID(c.Query(key), key)
}

func requestUserID(c *fiber.Ctx) (int64, error) {
	return parseID(c.Get(HeaderUserID), HeaderUserID)
}
