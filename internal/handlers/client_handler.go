package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"synctech/internal/models"
	"synctech/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

type clientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Services    string  `json:"services"`
	WorkDone    string  `json:"workDone"`
	WorkLeft    string  `json:"workLeft"`
	Progress    int     `json:"progress"`
	TotalBilled float64 `json:"totalBilled"`
	TotalPaid   float64 `json:"totalPaid"`
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := &models.Client{
		OwnerID:     getOwnerID(c),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Services:    req.Services,
		WorkDone:    req.WorkDone,
		WorkLeft:    req.WorkLeft,
		Progress:    req.Progress,
		TotalBilled: req.TotalBilled,
		TotalPaid:   req.TotalPaid,
	}
	if err := h.Service.Create(client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	existing, err := h.Service.GetByID(c.Param("id"), getOwnerID(c))
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Services = req.Services
	existing.WorkDone = req.WorkDone
	existing.WorkLeft = req.WorkLeft
	existing.Progress = req.Progress
	existing.TotalBilled = req.TotalBilled
	existing.TotalPaid = req.TotalPaid

	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.Service.GetByID(c.Param("id"), getOwnerID(c))
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Service.List(getOwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id"), getOwnerID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
