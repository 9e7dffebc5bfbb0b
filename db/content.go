package db

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx/types"

	"homeservices/internal/apperrors"
	"homeservices/internal/query"
	"homeservices/models"
)

// ListContentBlocks returns active blocks in display order. An empty
// blockType lists every type.
func (s *Storage) ListContentBlocks(ctx context.Context, blockType string) ([]models.ContentBlock, error) {
	q, args, err := query.ContentListSQL(blockType)
	if err != nil {
		return nil, apperrors.NewInternal("build content query", err)
	}
	blocks := []models.ContentBlock{}
	if err := s.db.SelectContext(ctx, &blocks, q, args...); err != nil {
		return nil, apperrors.NewInternal("list content blocks", err)
	}
	for i := range blocks {
		blocks[i].Normalize()
	}
	return blocks, nil
}

// GetContentBlockByType returns the first active block of blockType in
// display order.
func (s *Storage) GetContentBlockByType(ctx context.Context, blockType string) (*models.ContentBlock, error) {
	blocks, err := s.ListContentBlocks(ctx, blockType)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, apperrors.NewNotFound("content block not found")
	}
	return &blocks[0], nil
}

func (s *Storage) CreateContentBlock(ctx context.Context, in *models.ContentBlockInput) (*models.ContentBlock, error) {
	content, err := json.Marshal(in.Content)
	if err != nil {
		return nil, apperrors.NewFieldError("contenu", "Value must be valid JSON.")
	}
	query := `
        INSERT INTO content_blocks (type, titre, description, contenu, image, actif, ordre)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING *`
	b := &models.ContentBlock{}
	err = s.db.QueryRowxContext(ctx, query,
		in.Type, in.Title, in.Description, types.JSONText(content), in.Image, in.IsActive(), in.Order).
		StructScan(b)
	if err != nil {
		return nil, apperrors.NewInternal("create content block", err)
	}
	b.Normalize()
	return b, nil
}
