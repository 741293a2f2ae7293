package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/server/services"
)

type UniversitiesHandler struct {
	universities *services.UniversitiesService
}

func NewUniversitiesHandler(universities *services.UniversitiesService) *UniversitiesHandler {
	return &UniversitiesHandler{universities: universities}
}

type createUniversityRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type updateUniversityRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

func (h *UniversitiesHandler) HandleCreate(c *gin.Context) {
	var req createUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "name and location are required")
		return
	}

	u, err := h.universities.Create(c.Request.Context(), services.CreateUniversityInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"university": u})
}

func (h *UniversitiesHandler) HandleList(c *gin.Context) {
	list, err := h.universities.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"universities": list})
}

func (h *UniversitiesHandler) HandleGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	u, err := h.universities.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"university": u})
}

func (h *UniversitiesHandler) HandleUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	u, err := h.universities.Update(c.Request.Context(), id, services.UpdateUniversityInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"university": u})
}

func (h *UniversitiesHandler) HandleDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	u, err := h.universities.Remove(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"university": u})
}
