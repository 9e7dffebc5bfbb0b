package handlers

import (
	"context"

	"homeservices/internal/query"
	"homeservices/models"
)

// StorageInterface is the persistence the handlers depend on. *db.Storage
// implements it; tests use a mock.
type StorageInterface interface {
	ListServices(ctx context.Context, p query.Params) ([]models.Service, error)
	ServiceStats(ctx context.Context, p query.Params) (models.ServiceStats, error)
	GetService(ctx context.Context, id int) (*models.Service, error)
	CreateService(ctx context.Context, in *models.ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, id int, in *models.ServiceInput) (*models.Service, error)
	MissingServiceIDs(ctx context.Context, ids []int) ([]int, error)

	ListAgencies(ctx context.Context, p query.Params) ([]models.Agency, error)
	AgencyStats(ctx context.Context, p query.Params) (models.AgencyStats, error)
	GetAgency(ctx context.Context, id int) (*models.Agency, error)
	CreateAgency(ctx context.Context, in *models.AgencyInput) (*models.Agency, error)
	UpdateAgency(ctx context.Context, id int, in *models.AgencyInput) (*models.Agency, error)

	CreateQuote(ctx context.Context, in *models.QuoteInput) (*models.Quote, error)
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	GetQuote(ctx context.Context, id int) (*models.Quote, error)

	CreateContact(ctx context.Context, in *models.ContactInput) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id int) (*models.Contact, error)

	ListContentBlocks(ctx context.Context, blockType string) ([]models.ContentBlock, error)
	GetContentBlockByType(ctx context.Context, blockType string) (*models.ContentBlock, error)
}
