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

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// Search runs the lead search flow for the caller's industry/location query.
func (h *LeadHandler) Search(c *gin.Context) {
	var req ai.LeadSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		var violations schema.Violations
		if errors.As(err, &violations) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LeadHandler) Save(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if lead.CompanyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyName is required"})
		return
	}
	saved, err := h.Service.Save(getOwnerID(c), lead)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *LeadHandler) ListSaved(c *gin.Context) {
	leads, err := h.Service.ListSaved(getOwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []*models.SavedLead{}
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) DeleteSaved(c *gin.Context) {
	if err := h.Service.DeleteSaved(c.Param("id"), getOwnerID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
