package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/server/services"
)

type UsersHandler struct {
	users *services.UsersService
}

func NewUsersHandler(users *services.UsersService) *UsersHandler {
	return &UsersHandler{users: users}
}

type createUserRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	FullName string   `json:"fullName" binding:"required"`
	Roles    []string `json:"roles"`
}

type updateUserRequest struct {
	Email    *string  `json:"email" binding:"omitempty,email"`
	Password *string  `json:"password" binding:"omitempty,min=6"`
	FullName *string  `json:"fullName"`
	IsActive *bool    `json:"isActive"`
	Roles    []string `json:"roles"`
}

func (h *UsersHandler) HandleCreate(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "email, password (min 6 chars) and fullName are required")
		return
	}
	// binding:"required" accepts whitespace-only strings.
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		writeBadRequest(c, "fullName must not be blank")
		return
	}

	user, err := h.users.Create(c.Request.Context(), services.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    req.Roles,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *UsersHandler) HandleList(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UsersHandler) HandleGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Sanitized()})
}

func (h *UsersHandler) HandleUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		if trimmed == "" {
			writeBadRequest(c, "fullName must not be blank")
			return
		}
		req.FullName = &trimmed
	}

	user, err := h.users.Update(c.Request.Context(), id, services.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		IsActive: req.IsActive,
		Roles:    req.Roles,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UsersHandler) HandleDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.users.Remove(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
