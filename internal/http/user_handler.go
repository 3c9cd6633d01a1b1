package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// UserHandler serves the admin user management routes.
type UserHandler struct {
	users  service.UserService
	audit  middleware.LogSink
	paging Paging
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService, audit middleware.LogSink, paging Paging) *UserHandler {
	return &UserHandler{users: users, audit: audit, paging: paging}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Description  Lists active and deactivated users, newest first. Passwords are never returned.
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query string false "Substring of email or company"
// @Param        role    query string false "admin or laborer"
// @Param        company query string false "Exact company"
// @Param        active  query bool   false "Account state"
// @Param        limit   query int    false "Page size"
// @Param        offset  query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Users"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Failure      403 {object} dto.ErrorResponse "Admins only"
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	opts, ok := h.paging.listOptions(c)
	if !ok {
		return
	}

	users, err := h.users.List(c.Request.Context(), filterParams(c), opts)
	if err != nil {
		respondError(builder, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewUserResponse(u))
	}
	builder.SuccessOK(listResponse(items, len(items), opts))
}

// Create handles POST /api/users.
//
// @Summary      Create user
// @Description  Creates a user account. Role defaults to laborer.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateUserRequest true "Account"
// @Success      201 {object} dto.SuccessResponse{data=dto.UserResponse} "Created"
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      409 {object} dto.ErrorResponse "Email already registered"
// @Router       /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateUserRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionCreateUser, "User created",
		map[string]interface{}{"target_user_id": user.ID.Hex(), "role": string(user.Role)})
	builder.SuccessCreated(dto.NewUserResponse(user))
}

// UpdateEmail handles PUT /api/users/:id.
//
// @Summary      Change user email
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                true "User id"
// @Param        request body dto.UpdateUserRequest true "New email"
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse} "Updated"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or body"
// @Failure      404 {object} dto.ErrorResponse "User not found"
// @Failure      409 {object} dto.ErrorResponse "Email already registered"
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateEmail(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateUserRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	user, err := h.users.UpdateEmail(c.Request.Context(), id, req.Email)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionUpdateUser, "User email changed",
		map[string]interface{}{"target_user_id": id.Hex()})
	builder.SuccessOK(dto.NewUserResponse(user))
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Deactivate user
// @Description  Soft-deletes the account and revokes its refresh tokens
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200 {object} dto.SuccessResponse "Deactivated"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "User not found"
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionDeleteUser, "User deactivated",
		map[string]interface{}{"target_user_id": id.Hex()})
	builder.SuccessOK(map[string]string{"id": id.Hex()})
}
