package service

import (
	"context"
	"sort"
	"sync"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/repository"

	"github.com/google/uuid"
)

type ContentService interface {
	GetMarketingContent(ctx context.Context) (*domain.MarketingContent, error)
	// ActiveBanners returns enabled banners ordered by ascending priority.
	ActiveBanners(ctx context.Context) ([]domain.MarketingBanner, error)
	AddBanner(ctx context.Context, banner domain.MarketingBanner) (*domain.MarketingBanner, error)
	UpdateBanner(ctx context.Context, id string, banner domain.MarketingBanner) error
	DeleteBanner(ctx context.Context, id string) error
	UpdatePromotionalContent(ctx context.Context, content domain.PromotionalContent) error

	GetCategories(ctx context.Context) ([]domain.CategoryConfig, error)
	AddCategory(ctx context.Context, category domain.CategoryConfig) (*domain.CategoryConfig, error)
	UpdateCategory(ctx context.Context, id string, category domain.CategoryConfig) error
	DeleteCategory(ctx context.Context, id string) error
}

type contentService struct {
	repo repository.ContentRepository

	// Banner and category writes are read-modify-write of a whole document.
	mu sync.Mutex
}

func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) GetMarketingContent(ctx context.Context) (*domain.MarketingContent, error) {
	return s.repo.LoadMarketing(ctx)
}

func (s *contentService) ActiveBanners(ctx context.Context) ([]domain.MarketingBanner, error) {
	content, err := s.repo.LoadMarketing(ctx)
	if err != nil {
		return nil, err
	}
	banners := []domain.MarketingBanner{}
	for _, banner := range content.Banners {
		if banner.Enabled {
			banners = append(banners, banner)
		}
	}
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Priority < banners[j].Priority
	})
	return banners, nil
}

func (s *contentService) AddBanner(ctx context.Context, banner domain.MarketingBanner) (*domain.MarketingBanner, error) {
	if banner.Title == "" {
		return nil, domain.ErrValidation("banner title is required")
	}
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.repo.LoadMarketing(ctx)
	if err != nil {
		return nil, err
	}
	content.Banners = append(content.Banners, banner)
	if err := s.repo.SaveMarketing(ctx, content); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (s *contentService) UpdateBanner(ctx context.Context, id string, banner domain.MarketingBanner) error {
	if id == "" {
		return domain.ErrValidation("banner id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.repo.LoadMarketing(ctx)
	if err != nil {
		return err
	}
	for i := range content.Banners {
		if content.Banners[i].ID == id {
			banner.ID = id
			content.Banners[i] = banner
			return s.repo.SaveMarketing(ctx, content)
		}
	}
	return domain.ErrNotFound
}

func (s *contentService) DeleteBanner(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrValidation("banner id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.repo.LoadMarketing(ctx)
	if err != nil {
		return err
	}
	kept := content.Banners[:0]
	for _, banner := range content.Banners {
		if banner.ID != id {
			kept = append(kept, banner)
		}
	}
	content.Banners = kept
	return s.repo.SaveMarketing(ctx, content)
}

func (s *contentService) UpdatePromotionalContent(ctx context.Context, promo domain.PromotionalContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.repo.LoadMarketing(ctx)
	if err != nil {
		return err
	}
	content.PromotionalContent = promo
	return s.repo.SaveMarketing(ctx, content)
}

func (s *contentService) GetCategories(ctx context.Context) ([]domain.CategoryConfig, error) {
	return s.repo.LoadCategories(ctx)
}

func (s *contentService) AddCategory(ctx context.Context, category domain.CategoryConfig) (*domain.CategoryConfig, error) {
	if category.Name == "" {
		return nil, domain.ErrValidation("category name is required")
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	categories = append(categories, category)
	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *contentService) UpdateCategory(ctx context.Context, id string, category domain.CategoryConfig) error {
	if id == "" {
		return domain.ErrValidation("category id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return err
	}
	for i := range categories {
		if categories[i].ID == id {
			category.ID = id
			categories[i] = category
			return s.repo.SaveCategories(ctx, categories)
		}
	}
	return domain.ErrNotFound
}

func (s *contentService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrValidation("category id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return err
	}
	kept := categories[:0]
	for _, category := range categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	return s.repo.SaveCategories(ctx, kept)
}
