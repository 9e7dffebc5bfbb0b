// Package seed loads catalog and content fixtures from a YAML file.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"homeservices/internal/validation"
	"homeservices/models"
)

// File is the layout of a seed file.
type File struct {
	Services []models.ServiceInput      `yaml:"services"`
	Agencies []Agency                   `yaml:"agencies"`
	Content  []models.ContentBlockInput `yaml:"content"`
}

// Agency is an agency fixture; Services names the services it offers.
type Agency struct {
	models.AgencyInput `yaml:",inline"`
	Services           []string `yaml:"services"`
}

// Store is what the seeder writes through.
type Store interface {
	CreateService(ctx context.Context, in *models.ServiceInput) (*models.Service, error)
	CreateAgency(ctx context.Context, in *models.AgencyInput) (*models.Agency, error)
	CreateContentBlock(ctx context.Context, in *models.ContentBlockInput) (*models.ContentBlock, error)
}

// Summary counts created records.
type Summary struct {
	Services int
	Agencies int
	Content  int
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes seed YAML. Unknown keys are rejected.
func Parse(b []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Seeder validates fixtures the same way the API does and stores them.
type Seeder struct {
	store    Store
	validate *validation.Validator
	log      zerolog.Logger
}

func NewSeeder(store Store, log zerolog.Logger) *Seeder {
	return &Seeder{store: store, validate: validation.New(), log: log}
}

// Run validates every fixture first and only then writes, so a bad file
// leaves the database untouched.
func (s *Seeder) Run(ctx context.Context, f *File) (Summary, error) {
	var sum Summary
	if err := s.check(f); err != nil {
		return sum, err
	}

	ids := make(map[string]int, len(f.Services))
	for i := range f.Services {
		svc, err := s.store.CreateService(ctx, &f.Services[i])
		if err != nil {
			return sum, fmt.Errorf("create service %q: %w", f.Services[i].Name, err)
		}
		ids[svc.Name] = svc.ID
		sum.Services++
		s.log.Debug().Int("id", svc.ID).Str("nom", svc.Name).Msg("service created")
	}

	for i := range f.Agencies {
		a := &f.Agencies[i]
		linked := make([]int, 0, len(a.Services))
		for _, name := range a.Services {
			id, ok := ids[name]
			if !ok {
				return sum, fmt.Errorf("agency %q: unknown service %q", a.Name, name)
			}
			linked = append(linked, id)
		}
		a.ServiceIDs = &linked

		created, err := s.store.CreateAgency(ctx, &a.AgencyInput)
		if err != nil {
			return sum, fmt.Errorf("create agency %q: %w", a.Name, err)
		}
		sum.Agencies++
		s.log.Debug().Int("id", created.ID).Str("nom", created.Name).Int("services", len(linked)).Msg("agency created")
	}

	for i := range f.Content {
		b, err := s.store.CreateContentBlock(ctx, &f.Content[i])
		if err != nil {
			return sum, fmt.Errorf("create %s block: %w", f.Content[i].Type, err)
		}
		sum.Content++
		s.log.Debug().Int("id", b.ID).Str("type", b.Type).Msg("content block created")
	}
	return sum, nil
}

func (s *Seeder) check(f *File) error {
	names := make(map[string]bool, len(f.Services))
	for i := range f.Services {
		in := &f.Services[i]
		in.Normalize()
		if err := s.validate.Struct(in); err != nil {
			return fmt.Errorf("services[%d] %q: %w", i, in.Name, err)
		}
		if names[in.Name] {
			return fmt.Errorf("services[%d]: duplicate name %q", i, in.Name)
		}
		names[in.Name] = true
	}
	for i := range f.Agencies {
		a := &f.Agencies[i]
		a.Normalize()
		if err := s.validate.Struct(&a.AgencyInput); err != nil {
			return fmt.Errorf("agencies[%d] %q: %w", i, a.Name, err)
		}
		for _, name := range a.Services {
			if !names[name] {
				return fmt.Errorf("agencies[%d] %q: unknown service %q", i, a.Name, name)
			}
		}
	}
	for i := range f.Content {
		in := &f.Content[i]
		in.Normalize()
		if err := s.validate.Struct(in); err != nil {
			return fmt.Errorf("content[%d]: %w", i, err)
		}
	}
	return nil
}
