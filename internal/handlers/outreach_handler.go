package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"synctech/internal/ai"
	"synctech/internal/models"
	"synctech/internal/schema"
	"synctech/internal/services"
)

type OutreachHandler struct {
	Service *services.OutreachService
}

func NewOutreachHandler(service *services.OutreachService) *OutreachHandler {
	return &OutreachHandler{Service: service}
}

func (h *OutreachHandler) Generate(c *gin.Context) {
	var req ai.OutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content, err := h.Service.Generate(c.Request.Context(), req)
	if err != nil {
		var violations schema.Violations
		if errors.As(err, &violations) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

type sendOutreachRequest struct {
	To      string                 `json:"to" binding:"required,email"`
	Content models.OutreachContent `json:"content" binding:"required"`
}

func (h *OutreachHandler) Send(c *gin.Context) {
	var req sendOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Send(req.To, req.Content); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "outreach email sent"})
}
