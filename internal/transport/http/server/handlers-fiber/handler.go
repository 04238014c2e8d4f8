// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"teamtodo/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the project member and task routes using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterRoutes mounts all API routes on router.
func RegisterRoutes(router fiber.Router, h *Handler) {
	router.Post("/projects/members", h.PostProjectMember)
	router.Get("/projects/:projectId/members/check", h.GetProjectMemberCheck)
	router.Get("/projects/:projectId/members", h.GetProjectMembers)
	router.Delete("/projects/:projectId/members/:memberId", h.DeleteProjectMember)

	router.Post("/tasks", h.PostTask)
	router.Get("/tasks/:taskId", h.GetTask)
}
