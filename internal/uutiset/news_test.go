package uutiset

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/uutiset/internal/db"
)

var (
	testDB      *pg.DB
	testManager *Manager
)

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	testDB = database
	testManager = NewManager(db.New(testDB))

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Manager) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	manager := NewManager(db.New(tx))
	return ctx, manager
}

func TestManager_Categories_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("ReturnsAllCategoriesSortedByName", func(t *testing.T) {
		categories, err := manager.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories: %v", err)
		}
		if len(categories) != len(db.TestCategories) {
			t.Fatalf("expected %d categories, got %d", len(db.TestCategories), len(categories))
		}

		seen := make(map[string]struct{}, len(categories))
		for _, cat := range categories {
			if cat.ID == 0 {
				t.Errorf("invalid category ID")
			}
			if cat.Name == "" {
				t.Errorf("empty category name")
			}
			if _, ok := seen[cat.Name]; ok {
				t.Errorf("duplicate category %q", cat.Name)
			}
			seen[cat.Name] = struct{}{}
		}

		for i := 0; i < len(categories)-1; i++ {
			if categories[i].Name > categories[i+1].Name {
				t.Fatalf("categories not sorted by name ASC: %q before %q",
					categories[i].Name, categories[i+1].Name)
			}
		}
	})
}

func TestManager_AddNews_Integration(t *testing.T) {
	t.Run("RoundTripReturnsItemFirst", func(t *testing.T) {
		ctx, manager := withTx(t)

		added, err := manager.AddNews(ctx, "Sports",
			"http://x/img.png", "Storm", "desc", "body")
		if err != nil {
			t.Fatalf("AddNews: %v", err)
		}
		if added.ID == 0 {
			t.Fatalf("expected generated news ID")
		}
		if added.CategoryID == 0 {
			t.Fatalf("expected resolved category ID")
		}

		news, err := manager.NewsByCategory(ctx, "Sports")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}
		if len(news) == 0 {
			t.Fatalf("expected news items, got empty result")
		}

		first := news[0]
		if first.ID != added.ID {
			t.Errorf("expected newest item first: got ID %d, want %d", first.ID, added.ID)
		}
		if first.Link != "http://x/img.png" || first.Headline != "Storm" ||
			first.Description != "desc" || first.Body != "body" {
			t.Errorf("round-trip mismatch: %+v", first)
		}
	})

	t.Run("TrimsSurroundingWhitespace", func(t *testing.T) {
		ctx, manager := withTx(t)

		added, err := manager.AddNews(ctx, " Sports ",
			" http://x/img.png ", " Storm ", " desc ", " body ")
		if err != nil {
			t.Fatalf("AddNews: %v", err)
		}
		if added.Headline != "Storm" {
			t.Errorf("expected trimmed headline, got %q", added.Headline)
		}
	})

	t.Run("UnknownCategoryPersistsNothing", func(t *testing.T) {
		ctx, manager := withTx(t)

		before, err := manager.NewsByCategory(ctx, "Sports")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}

		_, err = manager.AddNews(ctx, "Gossip",
			"http://x/img.png", "Storm", "desc", "body")
		if err != ErrCategoryNotFound {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}

		after, err := manager.NewsByCategory(ctx, "Sports")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}
		if len(after) != len(before) {
			t.Fatalf("news count changed after failed insert: %d -> %d", len(before), len(after))
		}
	})

	t.Run("EmptyFieldsRejectedBeforeStore", func(t *testing.T) {
		ctx, manager := withTx(t)

		cases := []struct {
			name        string
			category    string
			link        string
			headline    string
			description string
			body        string
		}{
			{"EmptyCategory", "", "l", "h", "d", "b"},
			{"EmptyLink", "Sports", "", "h", "d", "b"},
			{"EmptyHeadline", "Sports", "l", "", "d", "b"},
			{"EmptyDescription", "Sports", "l", "h", "", "b"},
			{"EmptyBody", "Sports", "l", "h", "d", ""},
			{"WhitespaceOnlyBody", "Sports", "l", "h", "d", "   \t"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := manager.AddNews(ctx, tc.category, tc.link, tc.headline, tc.description, tc.body)
				if err != ErrInvalidInput {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
			})
		}
	})

	t.Run("RepeatedCallsCreateDistinctRows", func(t *testing.T) {
		ctx, manager := withTx(t)

		first, err := manager.AddNews(ctx, "Nature", "l", "h", "d", "b")
		if err != nil {
			t.Fatalf("AddNews first: %v", err)
		}
		second, err := manager.AddNews(ctx, "Nature", "l", "h", "d", "b")
		if err != nil {
			t.Fatalf("AddNews second: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("expected distinct rows, both got ID %d", first.ID)
		}
	})
}

func TestManager_NewsByCategory_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("UnknownCategoryReturnsEmptyList", func(t *testing.T) {
		news, err := manager.NewsByCategory(ctx, "Gossip")
		if err != nil {
			t.Fatalf("expected nil error for unknown category, got %v", err)
		}
		if news == nil {
			t.Fatalf("expected empty slice, got nil")
		}
		if len(news) != 0 {
			t.Fatalf("expected empty slice, got %d items", len(news))
		}
	})

	t.Run("ReturnsNewestFirst", func(t *testing.T) {
		news, err := manager.NewsByCategory(ctx, "Life")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}
		if len(news) < 2 {
			t.Fatalf("expected at least 2 news items, got %d", len(news))
		}

		for i := 0; i < len(news)-1; i++ {
			if news[i].ID < news[i+1].ID {
				t.Fatalf("news not sorted newest first at %d", i)
			}
		}
	})

	t.Run("ReturnsOnlyRequestedCategory", func(t *testing.T) {
		categories, err := manager.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories: %v", err)
		}

		byName := make(map[string]int, len(categories))
		for _, cat := range categories {
			byName[cat.Name] = cat.ID
		}

		news, err := manager.NewsByCategory(ctx, "Weather")
		if err != nil {
			t.Fatalf("NewsByCategory: %v", err)
		}
		for _, item := range news {
			if item.CategoryID != byName["Weather"] {
				t.Errorf("news %d belongs to category %d, want %d",
					item.ID, item.CategoryID, byName["Weather"])
			}
		}
	})
}
