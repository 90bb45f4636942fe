package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"synctech/internal/ai"
	"synctech/internal/middleware"
	"synctech/internal/models"
)

type BlogGenerator interface {
	GenerateBlogPost(ctx context.Context, req ai.BlogRequest) (*models.BlogPost, error)
}

type BlogPostStore interface {
	Create(meta *models.BlogPostMeta) error
	ListByOwner(ownerID string) ([]*models.BlogPostMeta, error)
}

type BlogService struct {
	Flows BlogGenerator
	Store BlogPostStore
}

func NewBlogService(flows BlogGenerator, store BlogPostStore) *BlogService {
	return &BlogService{Flows: flows, Store: store}
}

func (s *BlogService) Generate(ctx context.Context, req ai.BlogRequest) (*models.BlogPost, error) {
	post, err := s.Flows.GenerateBlogPost(ctx, req)
	if err != nil {
		middleware.RecordGeneration("blog", "error")
		return nil, err
	}
	middleware.RecordGeneration("blog", "success")
	return post, nil
}

// SaveMeta persists only the post's metadata; the full content stays with
// whoever published it.
func (s *BlogService) SaveMeta(ownerID, topic, title string) (*models.BlogPostMeta, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	meta := &models.BlogPostMeta{
		OwnerID:   ownerID,
		Topic:     topic,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Create(meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func (s *BlogService) ListMeta(ownerID string) ([]*models.BlogPostMeta, error) {
	return s.Store.ListByOwner(ownerID)
}
