package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/server/services"
)

type SeedHandler struct {
	seed *services.SeedService
}

func NewSeedHandler(seed *services.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

func (h *SeedHandler) HandleSeed(c *gin.Context) {
	res, err := h.seed.Seed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SeedHandler) HandleUnseed(c *gin.Context) {
	res, err := h.seed.Unseed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
