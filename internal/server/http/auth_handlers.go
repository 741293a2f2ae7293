package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/server/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) HandleSignup(c *gin.Context) {
	var req signupRequest
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

	res, err := h.auth.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "email and password are required")
		return
	}

	res, err := h.auth.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleMe returns the authenticated identity resolved by the guard.
func (h *AuthHandler) HandleMe(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		writeError(c, common.ErrMissingIdentity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
