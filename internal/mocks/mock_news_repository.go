package mocks

import (
	"context"

	"github.com/dheerendra45/news-analyzer/domain"
)

// MockNewsRepository implements domain.NewsRepository interface for testing
type MockNewsRepository struct {
	CreateFunc   func(ctx context.Context, news *domain.News) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.News, error)
	ListFunc     func(ctx context.Context, filter domain.NewsFilter, page domain.Page) ([]*domain.News, int64, error)
	UpdateFunc   func(ctx context.Context, news *domain.News) error
	DeleteFunc   func(ctx context.Context, id string) error
}

// NewMockNewsRepository creates a new MockNewsRepository with default behaviors
func NewMockNewsRepository() *MockNewsRepository {
	return &MockNewsRepository{}
}

// Create stores a news article
func (m *MockNewsRepository) Create(ctx context.Context, news *domain.News) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, news)
	}
	// Default behavior: success
	return nil
}

// FindByID fetches a news article
func (m *MockNewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrNewsNotFound
}

// List returns a page of news articles
func (m *MockNewsRepository) List(ctx context.Context, filter domain.NewsFilter, page domain.Page) ([]*domain.News, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page)
	}
	// Default behavior: empty page
	return nil, 0, nil
}

// Update replaces a news article
func (m *MockNewsRepository) Update(ctx context.Context, news *domain.News) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, news)
	}
	// Default behavior: success
	return nil
}

// Delete removes a news article
func (m *MockNewsRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.NewsRepository = (*MockNewsRepository)(nil)
