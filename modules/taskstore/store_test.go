package taskstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestStore creates a store over an in-memory SQLite database.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Record{}, &Setting{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewStore(db)
}

func testRecord(id int64, title string, created time.Time) Record {
	return Record{ID: id, Title: title, CreatedDate: created}
}

func TestStore_InsertAndFetchByID(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	desc := "2 liters"
	rec := Record{
		ID:              1,
		Title:           "Buy milk",
		TaskDescription: &desc,
		CreatedDate:     time.Now(),
	}
	if err := store.Insert(ctx, &rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	found, err := store.FetchByID(ctx, 1)
	if err != nil {
		t.Fatalf("FetchByID() error = %v", err)
	}
	if found.Title != "Buy milk" {
		t.Errorf("expected title %q, got %q", "Buy milk", found.Title)
	}
	if found.TaskDescription == nil || *found.TaskDescription != desc {
		t.Errorf("expected description %q, got %v", desc, found.TaskDescription)
	}
}

func TestStore_FetchByID_Missing(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	_, err := store.FetchByID(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_FetchAll_OrderedNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	base := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	oldest := testRecord(1, "oldest", base)
	middle := testRecord(2, "middle", base.Add(time.Hour))
	newest := testRecord(3, "newest", base.Add(2*time.Hour))

	// Insert out of order.
	for _, rec := range []Record{middle, newest, oldest} {
		rec := rec
		if err := store.Insert(ctx, &rec); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	recs, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if recs[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, recs[i].Title)
		}
	}
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	created := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	rec := testRecord(5, "before", created)
	if err := store.Insert(ctx, &rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	t.Run("overwrites mutable fields only", func(t *testing.T) {
		updated := rec
		updated.Title = "after"
		updated.IsCompleted = true
		updated.CreatedDate = created.Add(48 * time.Hour) // must be ignored

		if err := store.Update(ctx, &updated); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		found, err := store.FetchByID(ctx, 5)
		if err != nil {
			t.Fatalf("FetchByID() error = %v", err)
		}
		if found.Title != "after" || !found.IsCompleted {
			t.Errorf("expected mutated fields, got %+v", found)
		}
		if !found.CreatedDate.Equal(created) {
			t.Errorf("created date changed: expected %v, got %v", created, found.CreatedDate)
		}
	})

	t.Run("clears description", func(t *testing.T) {
		updated := rec
		updated.TaskDescription = nil
		if err := store.Update(ctx, &updated); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		found, err := store.FetchByID(ctx, 5)
		if err != nil {
			t.Fatalf("FetchByID() error = %v", err)
		}
		if found.TaskDescription != nil {
			t.Errorf("expected absent description, got %q", *found.TaskDescription)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		missing := testRecord(404, "ghost", created)
		if err := store.Update(ctx, &missing); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	rec := testRecord(7, "doomed", time.Now())
	if err := store.Insert(ctx, &rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := store.DeleteByID(ctx, 7); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if _, err := store.FetchByID(ctx, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected record gone, got %v", err)
	}

	// Deleting an absent record succeeds, before and after a prior delete.
	if err := store.DeleteByID(ctx, 7); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
	if err := store.DeleteByID(ctx, 9999); err != nil {
		t.Errorf("expected no-op delete of unknown id, got %v", err)
	}
}

func TestStore_SaveBatch(t *testing.T) {
	ctx := context.Background()
	base := time.Now()

	t.Run("inserts all records", func(t *testing.T) {
		store := setupTestStore(t)
		batch := []Record{
			testRecord(1, "one", base),
			testRecord(2, "two", base.Add(time.Minute)),
			testRecord(3, "three", base.Add(2*time.Minute)),
		}
		if err := store.SaveBatch(ctx, batch); err != nil {
			t.Fatalf("SaveBatch() error = %v", err)
		}

		recs, err := store.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll() error = %v", err)
		}
		if len(recs) != 3 {
			t.Errorf("expected 3 records, got %d", len(recs))
		}
	})

	t.Run("rolls back the whole batch on failure", func(t *testing.T) {
		store := setupTestStore(t)
		existing := testRecord(2, "already there", base)
		if err := store.Insert(ctx, &existing); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}

		// Second record collides with the existing primary key.
		batch := []Record{
			testRecord(1, "one", base),
			testRecord(2, "collision", base),
			testRecord(3, "three", base),
		}
		if err := store.SaveBatch(ctx, batch); err == nil {
			t.Fatal("expected batch insert to fail on duplicate id")
		}

		recs, err := store.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll() error = %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("expected only the pre-existing record, got %d", len(recs))
		}
		if recs[0].Title != "already there" {
			t.Errorf("pre-existing record was modified: %+v", recs[0])
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		store := setupTestStore(t)
		if err := store.SaveBatch(ctx, nil); err != nil {
			t.Fatalf("SaveBatch(nil) error = %v", err)
		}
	})
}

func TestStore_SeedFlag(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	seeded, err := store.SeedFlag(ctx)
	if err != nil {
		t.Fatalf("SeedFlag() error = %v", err)
	}
	if seeded {
		t.Error("expected seed flag to default to false")
	}

	if err := store.SetSeedFlag(ctx); err != nil {
		t.Fatalf("SetSeedFlag() error = %v", err)
	}
	seeded, err = store.SeedFlag(ctx)
	if err != nil {
		t.Fatalf("SeedFlag() error = %v", err)
	}
	if !seeded {
		t.Error("expected seed flag to be set")
	}

	// Setting twice stays set.
	if err := store.SetSeedFlag(ctx); err != nil {
		t.Fatalf("SetSeedFlag() second call error = %v", err)
	}
}
