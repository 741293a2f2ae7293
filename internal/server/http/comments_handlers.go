package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/server/services"
)

type CommentsHandler struct {
	comments *services.CommentsService
}

func NewCommentsHandler(comments *services.CommentsService) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

type createCommentRequest struct {
	Content     string `json:"content" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	ProfessorID string `json:"professorId" binding:"required"`
}

type updateCommentRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

func (h *CommentsHandler) HandleCreate(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		writeError(c, common.ErrMissingIdentity)
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "content, rating (1..5) and professorId are required")
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), services.CreateCommentInput{
		Content:     req.Content,
		Rating:      req.Rating,
		ProfessorID: req.ProfessorID,
	}, user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentsHandler) HandleList(c *gin.Context) {
	filter := services.CommentFilter{
		ProfessorID: strings.TrimSpace(c.Query("professorId")),
		UserID:      strings.TrimSpace(c.Query("userId")),
		Search:      strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			filter.Page = page
		}
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	page, err := h.comments.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CommentsHandler) HandleGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	comment, err := h.comments.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentsHandler) HandleUpdate(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		writeError(c, common.ErrMissingIdentity)
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "rating must be between 1 and 5")
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), id, services.UpdateCommentInput{
		Content: req.Content,
		Rating:  req.Rating,
	}, user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentsHandler) HandleDelete(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		writeError(c, common.ErrMissingIdentity)
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	comment, err := h.comments.Remove(c.Request.Context(), id, user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}
