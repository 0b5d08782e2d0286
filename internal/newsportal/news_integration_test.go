//go:build integration

package newsportal

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (*pg.Tx, context.Context, *Manager) {
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

	manager := NewNewsManager(db.New(tx), auth.NewGate([]string{"coach@example.com"}))
	return tx, ctx, manager
}

func TestManager_List_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	news, err := manager.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(news) != len(db.TestNews) {
		t.Fatalf("expected %d news, got %d", len(db.TestNews), len(news))
	}

	last := news[len(news)-1]
	if last.Date != "" {
		t.Errorf("expected undated news last, got %q", last.Date)
	}
	if got := NewCard(last).DateLabel; got != "Date not set" {
		t.Errorf("expected %q, got %q", "Date not set", got)
	}
}

func TestManager_SaveAndDelete_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)
	admin := &auth.Identity{Email: "coach@example.com", Subject: "coach-sub"}

	created, err := manager.Save(ctx, admin, NewsForm{
		Title:       "Open day",
		Date:        "2030-01-01",
		Description: "Come and try the pool.",
		VideoURL:    "https://www.youtube.com/embed/abc123",
	})
	if err != nil {
		t.Fatalf("Save (create) failed: %v", err)
	}

	news, err := manager.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if news[0].ID != created.ID {
		t.Fatalf("expected created news first, got %s", news[0].ID)
	}
	if news[0].AuthorID == nil || *news[0].AuthorID != admin.Subject {
		t.Errorf("expected authorId %q, got %v", admin.Subject, news[0].AuthorID)
	}

	updated, err := manager.Save(ctx, admin, NewsForm{
		ID:          created.ID,
		Title:       "Open day moved",
		Date:        "2030-01-02",
		Description: "Come and try the pool.",
	})
	if err != nil {
		t.Fatalf("Save (update) failed: %v", err)
	}
	if updated.VideoURL != nil {
		t.Errorf("expected video link cleared, got %q", *updated.VideoURL)
	}
	if !updated.CreatedAt.Equal(*created.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	if err := manager.Delete(ctx, admin, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := manager.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected news to be deleted, got %+v", got)
	}
}
