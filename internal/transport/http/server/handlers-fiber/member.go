package handlers_fiber

import (
	"net/http"

	"teamtodo/internal/mapper"
	"teamtodo/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostProjectMember adds a user to a project.
func (h *Handler) PostProjectMember(c *fiber.Ctx) error {
	var body dto.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}
	if err := body.Validate(); err != nil {
		return writeError(c, err)
	}

	member, err := h.uc.AddMember(c.Context(), mapper.FromAddMemberRequest(body))
	if err != nil {
		h.log.Infow("add member rejected", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToMember(*member))
}

// GetProjectMembers lists members of a project with user details.
func (h *Handler) GetProjectMembers(c *fiber.Ctx) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	members, err := h.uc.ListMembers(c.Context(), projectID)
	if err != nil {
		h.log.Errorw("failed to list members", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToMemberViews(members))
}

// DeleteProjectMember removes a member on behalf of the project owner.
func (h *Handler) DeleteProjectMember(c *fiber.Ctx) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}
	memberID, err := pathID(c, "memberId")
	if err != nil {
		return writeError(c, err)
	}
	requestUser, err := queryID(c, "requestUserId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.RemoveMember(c.Context(), projectID, memberID, requestUser); err != nil {
		h.log.Infow("remove member rejected", "error", err.Error(), "project_id", projectID, "member_id", memberID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "Member removed successfully"})
}

// GetProjectMemberCheck reports whether a user belongs to a project.
func (h *Handler) GetProjectMemberCheck(c *fiber.Ctx) error {
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := queryID(c, "userId")
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MembershipResponse{
		IsMember: h.uc.IsMember(c.Context(), projectID, userID),
	})
}
