package handlers_fiber

import (
	"net/http"

	"teamtodo/internal/mapper"
	"teamtodo/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task in a project the caller is a member of.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}
	if err := body.Validate(); err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.CreateTask(c.Context(), mapper.FromCreateTaskRequest(body), userID)
	if err != nil {
		h.log.Infow("create task rejected", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToTask(*task))
}

// GetTask returns a task by id.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.GetTask(c.Context(), taskID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToTask(*task))
}
