package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/server/services"
)

type ProfessorsHandler struct {
	professors *services.ProfessorsService
	comments   *services.CommentsService
}

func NewProfessorsHandler(professors *services.ProfessorsService, comments *services.CommentsService) *ProfessorsHandler {
	return &ProfessorsHandler{professors: professors, comments: comments}
}

type createProfessorRequest struct {
	Name         string `json:"name" binding:"required"`
	Department   string `json:"department" binding:"required"`
	UniversityID string `json:"universityId" binding:"required"`
}

type updateProfessorRequest struct {
	Name         *string `json:"name"`
	Department   *string `json:"department"`
	UniversityID *string `json:"universityId"`
}

func (h *ProfessorsHandler) HandleCreate(c *gin.Context) {
	var req createProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "name, department and universityId are required")
		return
	}

	p, err := h.professors.Create(c.Request.Context(), services.CreateProfessorInput{
		Name:         req.Name,
		Department:   req.Department,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"professor": p})
}

func (h *ProfessorsHandler) HandleList(c *gin.Context) {
	list, err := h.professors.List(c.Request.Context(), services.ProfessorFilter{
		UniversityID: strings.TrimSpace(c.Query("universityId")),
		Search:       strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professors": list})
}

func (h *ProfessorsHandler) HandleGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	p, err := h.professors.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professor": p})
}

func (h *ProfessorsHandler) HandleUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	p, err := h.professors.Update(c.Request.Context(), id, services.UpdateProfessorInput{
		Name:         req.Name,
		Department:   req.Department,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professor": p})
}

func (h *ProfessorsHandler) HandleDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	p, err := h.professors.Remove(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professor": p})
}

// HandleRating serves the aggregate for one professor. A professor without
// comments is a 404, same as a professor that does not exist.
func (h *ProfessorsHandler) HandleRating(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	rating, err := h.comments.ProfessorRating(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
