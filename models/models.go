package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// Quote statuses. Only QuoteStatusPending is ever written by the API.
const (
	QuoteStatusPending   = "en_attente"
	QuoteStatusProcessed = "traite"
	QuoteStatusCancelled = "annule"
)

// Content block type tags.
const (
	BlockHero        = "hero"
	BlockBanner      = "banner"
	BlockTestimonial = "testimonial"
	BlockFooter      = "footer"
	BlockHowItWorks  = "how_it_works"
)

// BlockTypes lists every accepted content block type tag.
var BlockTypes = []string{BlockHero, BlockBanner, BlockTestimonial, BlockFooter, BlockHowItWorks}

// Service is a catalog entry offered by partner agencies.
type Service struct {
	ID              int            `db:"id" json:"id"`
	Name            string         `db:"nom" json:"nom"`
	Description     string         `db:"description" json:"description"`
	LongDescription *string        `db:"description_longue" json:"description_longue"`
	Icon            string         `db:"icone" json:"icone"`
	Image           *string        `db:"image" json:"image"`
	Benefits        pq.StringArray `db:"avantages" json:"avantages"`
	Duration        string         `db:"duree" json:"duree"`
	Price           string         `db:"prix" json:"prix"`
	Rating          float64        `db:"note" json:"note"`
	ReviewCount     int            `db:"nombre_avis" json:"nombre_avis"`
	Active          bool           `db:"actif" json:"actif"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Agency is a partner agency. Services is filled from the link table.
type Agency struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"nom" json:"nom"`
	Description     string    `db:"description" json:"description"`
	City            string    `db:"ville" json:"ville"`
	Address         *string   `db:"adresse" json:"adresse"`
	Phone           *string   `db:"telephone" json:"telephone"`
	Email           *string   `db:"email" json:"email"`
	Hours           *string   `db:"horaires" json:"horaires"`
	Image           *string   `db:"image" json:"image"`
	Services        []Service `db:"-" json:"services"`
	Rating          *float64  `db:"note" json:"note"`
	ReviewCount     int       `db:"nombre_avis" json:"nombre_avis"`
	YearsExperience int       `db:"annee_experience" json:"annee_experience"`
	ClientCount     int       `db:"nombre_clients" json:"nombre_clients"`
	Active          bool      `db:"actif" json:"actif"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Quote is a quote request submitted from the public site.
type Quote struct {
	ID         int            `db:"id" json:"id"`
	Location   string         `db:"localisation" json:"localisation"`
	Service    string         `db:"service" json:"service"`
	AidType    *string        `db:"type_aide" json:"type_aide"`
	AidSubType *string        `db:"sous_type_aide" json:"sous_type_aide"`
	Needs      pq.StringArray `db:"besoins" json:"besoins"`
	Recipient  string         `db:"destinataire" json:"destinataire"`
	Name       string         `db:"nom" json:"nom"`
	Email      string         `db:"email" json:"email"`
	Phone      *string        `db:"telephone" json:"telephone"`
	Message    string         `db:"message" json:"message"`
	Status     string         `db:"statut" json:"statut"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// Contact is a message sent through the contact form.
type Contact struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"nom" json:"nom"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"sujet" json:"sujet"`
	Message   string    `db:"message" json:"message"`
	Read      bool      `db:"lu" json:"lu"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ContentBlock is a typed piece of site content (hero, testimonial...).
type ContentBlock struct {
	ID          int            `db:"id" json:"id"`
	Type        string         `db:"type" json:"type"`
	Title       *string        `db:"titre" json:"titre"`
	Description *string        `db:"description" json:"description"`
	Content     types.JSONText `db:"contenu" json:"contenu"`
	Image       *string        `db:"image" json:"image"`
	Active      bool           `db:"actif" json:"actif"`
	Order       int            `db:"ordre" json:"ordre"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// ServiceStats summarises a filtered service collection.
type ServiceStats struct {
	Total        int     `db:"total" json:"total"`
	AvgRating    float64 `db:"avg_rating" json:"avg_rating"`
	TotalReviews int     `db:"total_reviews" json:"total_reviews"`
}

// AgencyStats summarises a filtered agency collection.
type AgencyStats struct {
	Total           int     `db:"total" json:"total"`
	AvgRating       float64 `db:"avg_rating" json:"avg_rating"`
	TotalReviews    int     `db:"total_reviews" json:"total_reviews"`
	TotalClients    int     `db:"total_clients" json:"total_clients"`
	TotalExperience int     `db:"total_experience" json:"total_experience"`
}

// Normalize replaces nil lists so they encode as [] instead of null.
func (s *Service) Normalize() {
	if s.Benefits == nil {
		s.Benefits = pq.StringArray{}
	}
}

// Normalize replaces nil lists so they encode as [] instead of null.
func (a *Agency) Normalize() {
	if a.Services == nil {
		a.Services = []Service{}
	}
	for i := range a.Services {
		a.Services[i].Normalize()
	}
}

// Normalize replaces nil lists so they encode as [] instead of null.
func (q *Quote) Normalize() {
	if q.Needs == nil {
		q.Needs = pq.StringArray{}
	}
}

// Normalize makes an empty payload encode as {}.
func (b *ContentBlock) Normalize() {
	if len(b.Content) == 0 {
		b.Content = types.JSONText("{}")
	}
}
