package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// ErrCategoryNotFound is returned by AddNews when the named category does not
// exist; the surrounding transaction is rolled back.
var ErrCategoryNotFound = errors.New("category not found")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Categories returns the full category set sorted by name ASC.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."category_name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CategoryByName returns nil without error when no category has that name.
func (r *Repository) CategoryByName(ctx context.Context, name string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."category_name" = ?`, name).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return category, nil
}

// UserByEmail returns nil without error when no user has that email.
func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."user_email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// NewsByCategoryID returns the category's news sorted newest first.
func (r *Repository) NewsByCategoryID(ctx context.Context, categoryID int) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."category_id" = ?`, categoryID).
		OrderExpr(`"t"."news_id" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

// AddNews resolves the category by name and inserts the news row inside a
// single transaction, so a failed lookup or insert leaves no partial row.
// On success the generated news_id and resolved category_id are written back
// into news.
func (r *Repository) AddNews(ctx context.Context, categoryName string, news *News) error {
	return r.inTransaction(ctx, func(tx *pg.Tx) error {
		category := &Category{}
		err := tx.ModelContext(ctx, category).
			Where(`"t"."category_name" = ?`, categoryName).
			Select()

		if errors.Is(err, pg.ErrNoRows) {
			return ErrCategoryNotFound
		} else if err != nil {
			return fmt.Errorf("failed to get category by name: %w", err)
		}

		news.CategoryID = category.ID
		if _, err := tx.ModelContext(ctx, news).Insert(); err != nil {
			return fmt.Errorf("failed to insert news: %w", err)
		}

		return nil
	})
}

func (r *Repository) inTransaction(ctx context.Context, fn func(*pg.Tx) error) error {
	switch conn := r.db.(type) {
	case *pg.DB:
		return conn.RunInTransaction(ctx, fn)
	case *pg.Tx:
		return conn.RunInTransaction(ctx, fn)
	default:
		return fmt.Errorf("connection type %T does not support transactions", r.db)
	}
}
