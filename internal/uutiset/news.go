package uutiset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/uutiset/internal/db"
)

type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// Categories returns the full category set sorted by name ASC.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// AddNews validates the five fields, resolves the category by name and inserts
// the news row in one transaction. Returns ErrInvalidInput when any field is
// empty after trimming and ErrCategoryNotFound when the category is unknown;
// in both cases nothing is persisted. Repeated calls with identical content
// create distinct rows.
func (m *Manager) AddNews(ctx context.Context, categoryName, link, headline, description, body string) (*News, error) {
	categoryName = strings.TrimSpace(categoryName)
	link = strings.TrimSpace(link)
	headline = strings.TrimSpace(headline)
	description = strings.TrimSpace(description)
	body = strings.TrimSpace(body)

	if categoryName == "" || link == "" || headline == "" || description == "" || body == "" {
		return nil, ErrInvalidInput
	}

	news := &db.News{
		Link:        link,
		Headline:    headline,
		Description: description,
		Body:        body,
	}

	err := m.db.AddNews(ctx, categoryName, news)
	if errors.Is(err, db.ErrCategoryNotFound) {
		return nil, ErrCategoryNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db add news: %w", err)
	}

	result := NewNews(news)
	return &result, nil
}

// NewsByCategory returns the category's news newest first. An unknown category
// name yields an empty list, not an error.
func (m *Manager) NewsByCategory(ctx context.Context, categoryName string) ([]News, error) {
	category, err := m.db.CategoryByName(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("db get category by name: %w", err)
	}
	if category == nil {
		return []News{}, nil
	}

	list, err := m.db.NewsByCategoryID(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("db get news by category: %w", err)
	}

	return NewNewsList(list), nil
}
