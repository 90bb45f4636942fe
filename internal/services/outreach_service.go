package services

import (
	"context"
	"errors"
	"strings"

	"synctech/internal/ai"
	"synctech/internal/middleware"
	"synctech/internal/models"
)

type OutreachGenerator interface {
	GenerateOutreach(ctx context.Context, req ai.OutreachRequest) (*models.OutreachContent, error)
}

type OutreachService struct {
	Flows OutreachGenerator
	Email EmailService
}

func NewOutreachService(flows OutreachGenerator, email EmailService) *OutreachService {
	return &OutreachService{Flows: flows, Email: email}
}

func (s *OutreachService) Generate(ctx context.Context, req ai.OutreachRequest) (*models.OutreachContent, error) {
	content, err := s.Flows.GenerateOutreach(ctx, req)
	if err != nil {
		middleware.RecordGeneration("outreach", "error")
		return nil, err
	}
	middleware.RecordGeneration("outreach", "success")
	return content, nil
}

// Send emails previously generated outreach copy to the lead. Sending is
// synchronous; a failure leaves nothing half-done.
func (s *OutreachService) Send(to string, content models.OutreachContent) error {
	if strings.TrimSpace(to) == "" {
		return errors.New("recipient email is required")
	}
	if strings.TrimSpace(content.EmailSubject) == "" || strings.TrimSpace(content.EmailBody) == "" {
		return errors.New("email subject and body are required")
	}
	return s.Email.SendOutreach(to, content.EmailSubject, content.EmailBody)
}
