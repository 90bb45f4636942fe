package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"synctech/internal/models"
	"synctech/internal/schema"
	"synctech/internal/services"
)

// ContactHandler owns the one public endpoint of the application. CORS on
// it is locked to the single origin the marketing site is served from.
type ContactHandler struct {
	Service       *services.ContactService
	AllowedOrigin string
}

func NewContactHandler(service *services.ContactService, allowedOrigin string) *ContactHandler {
	return &ContactHandler{Service: service, AllowedOrigin: allowedOrigin}
}

func (h *ContactHandler) setCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", h.AllowedOrigin)
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	h.setCORSHeaders(c)

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	_, err := h.Service.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		var violations schema.Violations
		if errors.As(err, &violations) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission successful!"})
}

func (h *ContactHandler) Options(c *gin.Context) {
	h.setCORSHeaders(c)
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) List(c *gin.Context) {
	subs, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []*models.ContactSubmission{}
	}
	c.JSON(http.StatusOK, subs)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.Service.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ContactStatusRead})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
