package repository

import (
	"context"
	"encoding/json"
	"log"

	"pulse-events/backend/internal/domain"
)

// Storage keys for managed content. Stored as indented JSON so the documents
// stay hand-editable.
const (
	KeyMarketingContent = "pulse_events_marketing_content"
	KeyCategories       = "pulse_events_categories"
)

// ContentRepository persists the managed marketing content and category
// configuration in the key-value store.
type ContentRepository interface {
	LoadMarketing(ctx context.Context) (*domain.MarketingContent, error)
	SaveMarketing(ctx context.Context, content *domain.MarketingContent) error
	LoadCategories(ctx context.Context) ([]domain.CategoryConfig, error)
	SaveCategories(ctx context.Context, categories []domain.CategoryConfig) error
}

type contentRepo struct {
	store KVStore
}

func NewContentRepository(store KVStore) ContentRepository {
	return &contentRepo{store: store}
}

// LoadMarketing returns the stored marketing document, or an empty one when
// nothing is stored or the document is corrupt.
func (r *contentRepo) LoadMarketing(ctx context.Context) (*domain.MarketingContent, error) {
	content := &domain.MarketingContent{Banners: []domain.MarketingBanner{}}
	raw, ok, err := r.store.Get(ctx, KeyMarketingContent)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return content, nil
	}
	if err := json.Unmarshal([]byte(raw), content); err != nil {
		log.Printf("content: discarding corrupt marketing document: %v", err)
		return &domain.MarketingContent{Banners: []domain.MarketingBanner{}}, nil
	}
	if content.Banners == nil {
		content.Banners = []domain.MarketingBanner{}
	}
	return content, nil
}

func (r *contentRepo) SaveMarketing(ctx context.Context, content *domain.MarketingContent) error {
	raw, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyMarketingContent, string(raw))
}

// LoadCategories accepts both a bare JSON array and the wrapped
// {"categories": [...]} form the content files used historically.
func (r *contentRepo) LoadCategories(ctx context.Context) ([]domain.CategoryConfig, error) {
	raw, ok, err := r.store.Get(ctx, KeyCategories)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []domain.CategoryConfig{}, nil
	}

	var categories []domain.CategoryConfig
	if err := json.Unmarshal([]byte(raw), &categories); err == nil {
		return categories, nil
	}

	var wrapped struct {
		Categories []domain.CategoryConfig `json:"categories"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		log.Printf("content: discarding corrupt categories document: %v", err)
		return []domain.CategoryConfig{}, nil
	}
	if wrapped.Categories == nil {
		return []domain.CategoryConfig{}, nil
	}
	return wrapped.Categories, nil
}

func (r *contentRepo) SaveCategories(ctx context.Context, categories []domain.CategoryConfig) error {
	raw, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyCategories, string(raw))
}
