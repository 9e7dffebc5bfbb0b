package models

import (
	"strings"
)

// Write payloads. Each input type is the field allow-list accepted from
// clients; server-owned fields (id, timestamps, statut, lu) are absent.

// ServiceInput is the writable part of a Service.
type ServiceInput struct {
	Name            string   `json:"nom" yaml:"nom" validate:"required,max=200"`
	Description     string   `json:"description" yaml:"description" validate:"required"`
	LongDescription *string  `json:"description_longue" yaml:"description_longue"`
	Icon            string   `json:"icone" yaml:"icone" validate:"required,max=50"`
	Image           *string  `json:"image" yaml:"image" validate:"omitempty,max=100"`
	Benefits        []string `json:"avantages" yaml:"avantages" validate:"dive,max=200"`
	Duration        string   `json:"duree" yaml:"duree" validate:"required,max=100"`
	Price           string   `json:"prix" yaml:"prix" validate:"required,max=100"`
	Rating          float64  `json:"note" yaml:"note" validate:"gte=0,lte=5"`
	ReviewCount     int      `json:"nombre_avis" yaml:"nombre_avis" validate:"gte=0"`
	Active          *bool    `json:"actif" yaml:"actif"`
}

// ServiceInputFrom seeds a partial update with the stored values.
func ServiceInputFrom(s *Service) *ServiceInput {
	active := s.Active
	return &ServiceInput{
		Name:            s.Name,
		Description:     s.Description,
		LongDescription: s.LongDescription,
		Icon:            s.Icon,
		Image:           s.Image,
		Benefits:        append([]string{}, s.Benefits...),
		Duration:        s.Duration,
		Price:           s.Price,
		Rating:          s.Rating,
		ReviewCount:     s.ReviewCount,
		Active:          &active,
	}
}

// Normalize trims text fields and fills defaults.
func (in *ServiceInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Icon = strings.TrimSpace(in.Icon)
	in.Duration = strings.TrimSpace(in.Duration)
	in.Price = strings.TrimSpace(in.Price)
	in.LongDescription = trimOptional(in.LongDescription)
	in.Image = trimOptional(in.Image)
	if in.Benefits == nil {
		in.Benefits = []string{}
	}
}

// IsActive reports the active flag, defaulting to true.
func (in *ServiceInput) IsActive() bool {
	return in.Active == nil || *in.Active
}

// AgencyInput is the writable part of an Agency. ServiceIDs == nil leaves the
// service links untouched.
type AgencyInput struct {
	Name            string   `json:"nom" yaml:"nom" validate:"required,max=200"`
	Description     string   `json:"description" yaml:"description" validate:"required"`
	City            string   `json:"ville" yaml:"ville" validate:"required,max=100"`
	Address         *string  `json:"adresse" yaml:"adresse"`
	Phone           *string  `json:"telephone" yaml:"telephone" validate:"omitempty,max=20"`
	Email           *string  `json:"email" yaml:"email" validate:"omitempty,email,max=254"`
	Hours           *string  `json:"horaires" yaml:"horaires" validate:"omitempty,max=200"`
	Image           *string  `json:"image" yaml:"image" validate:"omitempty,max=100"`
	ServiceIDs      *[]int   `json:"services_ids" yaml:"-"`
	Rating          *float64 `json:"note" yaml:"note" validate:"omitempty,gte=0,lte=5"`
	ReviewCount     int      `json:"nombre_avis" yaml:"nombre_avis" validate:"gte=0"`
	YearsExperience int      `json:"annee_experience" yaml:"annee_experience" validate:"gte=0"`
	ClientCount     int      `json:"nombre_clients" yaml:"nombre_clients" validate:"gte=0"`
	Active          *bool    `json:"actif" yaml:"actif"`
}

// AgencyInputFrom seeds a partial update with the stored values.
func AgencyInputFrom(a *Agency) *AgencyInput {
	active := a.Active
	return &AgencyInput{
		Name:            a.Name,
		Description:     a.Description,
		City:            a.City,
		Address:         a.Address,
		Phone:           a.Phone,
		Email:           a.Email,
		Hours:           a.Hours,
		Image:           a.Image,
		Rating:          a.Rating,
		ReviewCount:     a.ReviewCount,
		YearsExperience: a.YearsExperience,
		ClientCount:     a.ClientCount,
		Active:          &active,
	}
}

// Normalize trims text fields.
func (in *AgencyInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.City = strings.TrimSpace(in.City)
	in.Address = trimOptional(in.Address)
	in.Phone = trimOptional(in.Phone)
	in.Email = trimOptional(in.Email)
	in.Hours = trimOptional(in.Hours)
	in.Image = trimOptional(in.Image)
}

// IsActive reports the active flag, defaulting to true.
func (in *AgencyInput) IsActive() bool {
	return in.Active == nil || *in.Active
}

// UniqueServiceIDs returns the requested service ids without duplicates,
// keeping their first-seen order.
func (in *AgencyInput) UniqueServiceIDs() []int {
	if in.ServiceIDs == nil {
		return nil
	}
	seen := make(map[int]bool, len(*in.ServiceIDs))
	ids := make([]int, 0, len(*in.ServiceIDs))
	for _, id := range *in.ServiceIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// QuoteInput is what the public quote form may send.
type QuoteInput struct {
	Location   string   `json:"localisation" validate:"required,max=200"`
	Service    string   `json:"service" validate:"required,max=200"`
	AidType    *string  `json:"type_aide" validate:"omitempty,max=200"`
	AidSubType *string  `json:"sous_type_aide" validate:"omitempty,max=200"`
	Needs      []string `json:"besoins" validate:"dive,max=200"`
	Recipient  string   `json:"destinataire" validate:"required,max=50"`
	Name       string   `json:"nom" validate:"required,max=200"`
	Email      string   `json:"email" validate:"required,email,max=254"`
	Phone      *string  `json:"telephone" validate:"omitempty,max=20"`
	Message    string   `json:"message" validate:"required"`
}

// Normalize trims text fields and fills defaults.
func (in *QuoteInput) Normalize() {
	in.Location = strings.TrimSpace(in.Location)
	in.Service = strings.TrimSpace(in.Service)
	in.Recipient = strings.TrimSpace(in.Recipient)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	in.AidType = trimOptional(in.AidType)
	in.AidSubType = trimOptional(in.AidSubType)
	in.Phone = trimOptional(in.Phone)
	if in.Needs == nil {
		in.Needs = []string{}
	}
}

// ContactInput is what the public contact form may send.
type ContactInput struct {
	Name    string `json:"nom" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"sujet" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// Normalize trims text fields.
func (in *ContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
}

// ContentBlockInput describes a content block loaded by the seed command.
type ContentBlockInput struct {
	Type        string         `json:"type" yaml:"type" validate:"required,blocktype"`
	Title       *string        `json:"titre" yaml:"titre" validate:"omitempty,max=200"`
	Description *string        `json:"description" yaml:"description"`
	Content     map[string]any `json:"contenu" yaml:"contenu"`
	Image       *string        `json:"image" yaml:"image" validate:"omitempty,max=100"`
	Active      *bool          `json:"actif" yaml:"actif"`
	Order       int            `json:"ordre" yaml:"ordre"`
}

// Normalize trims text fields and fills defaults.
func (in *ContentBlockInput) Normalize() {
	in.Type = strings.TrimSpace(in.Type)
	in.Title = trimOptional(in.Title)
	in.Description = trimOptional(in.Description)
	in.Image = trimOptional(in.Image)
	if in.Content == nil {
		in.Content = map[string]any{}
	}
}

// IsActive reports the active flag, defaulting to true.
func (in *ContentBlockInput) IsActive() bool {
	return in.Active == nil || *in.Active
}

// trimOptional trims a nullable string; blank becomes nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
