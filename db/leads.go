package db

import (
	"context"

	"github.com/lib/pq"

	"homeservices/internal/apperrors"
	"homeservices/models"
)

// Quote (Devis)

// CreateQuote stores a quote request. The status is always en_attente.
func (s *Storage) CreateQuote(ctx context.Context, in *models.QuoteInput) (*models.Quote, error) {
	query := `
        INSERT INTO quotes
            (localisation, service, type_aide, sous_type_aide, besoins, destinataire,
             nom, email, telephone, message, statut)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING *`
	q := &models.Quote{}
	err := s.db.QueryRowxContext(ctx, query,
		in.Location, in.Service, in.AidType, in.AidSubType, pq.StringArray(in.Needs), in.Recipient,
		in.Name, in.Email, in.Phone, in.Message, models.QuoteStatusPending).
		StructScan(q)
	if err != nil {
		return nil, apperrors.NewInternal("create quote", err)
	}
	q.Normalize()
	return q, nil
}

func (s *Storage) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	quotes := []models.Quote{}
	query := `SELECT * FROM quotes ORDER BY created_at DESC, id DESC`
	if err := s.db.SelectContext(ctx, &quotes, query); err != nil {
		return nil, apperrors.NewInternal("list quotes", err)
	}
	for i := range quotes {
		quotes[i].Normalize()
	}
	return quotes, nil
}

func (s *Storage) GetQuote(ctx context.Context, id int) (*models.Quote, error) {
	q := &models.Quote{}
	if err := s.db.GetContext(ctx, q, `SELECT * FROM quotes WHERE id = $1`, id); err != nil {
		return nil, notFoundOr(err, "quote")
	}
	q.Normalize()
	return q, nil
}

// Contact

func (s *Storage) CreateContact(ctx context.Context, in *models.ContactInput) (*models.Contact, error) {
	query := `
        INSERT INTO contacts (nom, email, sujet, message)
        VALUES ($1, $2, $3, $4)
        RETURNING *`
	c := &models.Contact{}
	err := s.db.QueryRowxContext(ctx, query, in.Name, in.Email, in.Subject, in.Message).StructScan(c)
	if err != nil {
		return nil, apperrors.NewInternal("create contact", err)
	}
	return c, nil
}

func (s *Storage) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	query := `SELECT * FROM contacts ORDER BY created_at DESC, id DESC`
	if err := s.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, apperrors.NewInternal("list contacts", err)
	}
	return contacts, nil
}

func (s *Storage) GetContact(ctx context.Context, id int) (*models.Contact, error) {
	c := &models.Contact{}
	if err := s.db.GetContext(ctx, c, `SELECT * FROM contacts WHERE id = $1`, id); err != nil {
		return nil, notFoundOr(err, "contact")
	}
	return c, nil
}
