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

type BlogHandler struct {
	Service *services.BlogService
}

func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{Service: service}
}

func (h *BlogHandler) Generate(c *gin.Context) {
	var req ai.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := h.Service.Generate(c.Request.Context(), req)
	if err != nil {
		var violations schema.Violations
		if errors.As(err, &violations) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

type saveBlogPostRequest struct {
	Topic string `json:"topic" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (h *BlogHandler) SavePost(c *gin.Context) {
	var req saveBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meta, err := h.Service.SaveMeta(getOwnerID(c), req.Topic, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meta)
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.Service.ListMeta(getOwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if posts == nil {
		posts = []*models.BlogPostMeta{}
	}
	c.JSON(http.StatusOK, posts)
}
