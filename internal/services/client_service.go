package services

import (
	"errors"
	"strings"
	"time"

	"synctech/internal/models"
)

type ClientStore interface {
	Create(client *models.Client) error
	Update(client *models.Client) error
	GetByID(id, ownerID string) (*models.Client, error)
	ListByOwner(ownerID string) ([]*models.Client, error)
	Delete(id, ownerID string) error
}

type ClientService struct {
	Store ClientStore
}

func NewClientService(store ClientStore) *ClientService {
	return &ClientService{Store: store}
}

func (s *ClientService) Create(client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	return s.Store.Create(client)
}

func (s *ClientService) Update(client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	return s.Store.Update(client)
}

func (s *ClientService) GetByID(id, ownerID string) (*models.Client, error) {
	return s.Store.GetByID(id, ownerID)
}

func (s *ClientService) List(ownerID string) ([]*models.Client, error) {
	return s.Store.ListByOwner(ownerID)
}

func (s *ClientService) Delete(id, ownerID string) error {
	return s.Store.Delete(id, ownerID)
}

func validateClient(client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return errors.New("name is required")
	}
	if client.Progress < 0 || client.Progress > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	if client.TotalBilled < 0 || client.TotalPaid < 0 {
		return errors.New("billed and paid amounts cannot be negative")
	}
	return nil
}
