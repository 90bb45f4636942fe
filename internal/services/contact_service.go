package services

import (
	"log"
	"time"

	"synctech/internal/models"
	"synctech/internal/schema"
)

// The same declarative validator the flows use guards the public form.
var contactDefinition = &schema.Definition{
	Name: "ContactSubmission",
	Fields: []schema.Field{
		{Name: "name", Type: schema.TypeString, Required: true, MinLen: 2},
		{Name: "email", Type: schema.TypeString, Required: true, Email: true},
		{Name: "message", Type: schema.TypeString, Required: true, MinLen: 10},
	},
}

type ContactStore interface {
	Create(sub *models.ContactSubmission) error
	List() ([]*models.ContactSubmission, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}

type ContactNotifier interface {
	NotifyContactSubmission(sub *models.ContactSubmission) error
}

type ContactService struct {
	Store    ContactStore
	Notifier ContactNotifier
}

func NewContactService(store ContactStore, notifier ContactNotifier) *ContactService {
	return &ContactService{Store: store, Notifier: notifier}
}

// Submit validates and stores an inbound form submission. The operator
// notification is best-effort: a notifier failure never fails the caller.
func (s *ContactService) Submit(name, email, message string) (*models.ContactSubmission, error) {
	input := map[string]any{"name": name, "email": email, "message": message}
	if _, err := contactDefinition.Validate(input); err != nil {
		return nil, err
	}

	sub := &models.ContactSubmission{
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    models.ContactStatusNew,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Create(sub); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyContactSubmission(sub); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}
	return sub, nil
}

func (s *ContactService) List() ([]*models.ContactSubmission, error) {
	return s.Store.List()
}

// MarkRead transitions a submission to read. Applying it twice leaves the
// status at read.
func (s *ContactService) MarkRead(id string) error {
	return s.Store.UpdateStatus(id, models.ContactStatusRead)
}

func (s *ContactService) Delete(id string) error {
	return s.Store.Delete(id)
}
