package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

func TestMoodEntryRepository(t *testing.T) {
	ctx := context.Background()

	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("should create a new entry via upsert", func(t *testing.T) {
		db := testDB(t)
		repo := NewMoodEntryRepository(db)
		user := entity.NewUser("upsert@example.com", "Upsert", "hash")

		entry := entity.NewMoodEntry(user.ID, day(2025, time.March, 10), 7, "good day")
		saved, err := repo.Upsert(ctx, entry)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if saved.Score != 7 || saved.Comment != "good day" {
			t.Errorf("unexpected saved entry: score=%d comment=%q", saved.Score, saved.Comment)
		}
		if !saved.Date.Equal(day(2025, time.March, 10)) {
			t.Errorf("expected normalized date, got %v", saved.Date)
		}
	})

	t.Run("should replace score and comment for the same day keeping the row", func(t *testing.T) {
		db := testDB(t)
		repo := NewMoodEntryRepository(db)
		user := entity.NewUser("replace@example.com", "Replace", "hash")

		first, err := repo.Upsert(ctx, entity.NewMoodEntry(user.ID, day(2025, time.March, 10), 4, "meh"))
		if err != nil {
			t.Fatalf("expected no error on first upsert, got %v", err)
		}

		second, err := repo.Upsert(ctx, entity.NewMoodEntry(user.ID, day(2025, time.March, 10), 9, "turned around"))
		if err != nil {
			t.Fatalf("expected no error on second upsert, got %v", err)
		}

		if second.ID != first.ID {
			t.Errorf("expected the original row to survive, got new ID %s", second.ID)
		}
		if second.Score != 9 || second.Comment != "turned around" {
			t.Errorf("expected replaced values, got score=%d comment=%q", second.Score, second.Comment)
		}

		entries, err := repo.FindByUserAndYear(ctx, user.ID, 2025)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected one row for the day, got %d", len(entries))
		}
	})

	t.Run("should keep entries of different users separate", func(t *testing.T) {
		db := testDB(t)
		repo := NewMoodEntryRepository(db)
		alice := entity.NewUser("alice@example.com", "Alice", "hash")
		bruno := entity.NewUser("bruno@example.com", "Bruno", "hash")

		if _, err := repo.Upsert(ctx, entity.NewMoodEntry(alice.ID, day(2025, time.March, 10), 5, "")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := repo.Upsert(ctx, entity.NewMoodEntry(bruno.ID, day(2025, time.March, 10), 8, "")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		aliceEntries, err := repo.FindByUserAndYear(ctx, alice.ID, 2025)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(aliceEntries) != 1 || aliceEntries[0].Score != 5 {
			t.Errorf("expected Alice to see only her entry, got %v", aliceEntries)
		}
	})

	t.Run("should list a year ordered ascending and exclude other years", func(t *testing.T) {
		db := testDB(t)
		repo := NewMoodEntryRepository(db)
		user := entity.NewUser("year@example.com", "Year", "hash")

		dates := []time.Time{
			day(2025, time.June, 20),
			day(2025, time.January, 5),
			day(2025, time.December, 31),
			day(2024, time.December, 31),
			day(2026, time.January, 1),
		}
		for i, d := range dates {
			if _, err := repo.Upsert(ctx, entity.NewMoodEntry(user.ID, d, 5+i%3, "")); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}

		entries, err := repo.FindByUserAndYear(ctx, user.ID, 2025)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(entries) != 3 {
			t.Fatalf("expected 3 entries for 2025, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Date.Before(entries[i-1].Date) {
				t.Errorf("expected ascending order, got %v before %v", entries[i-1].Date, entries[i].Date)
			}
		}
		if !entries[0].Date.Equal(day(2025, time.January, 5)) || !entries[2].Date.Equal(day(2025, time.December, 31)) {
			t.Errorf("unexpected year boundaries: first=%v last=%v", entries[0].Date, entries[2].Date)
		}
	})

	t.Run("should find by user and date", func(t *testing.T) {
		db := testDB(t)
		repo := NewMoodEntryRepository(db)
		user := entity.NewUser("byday@example.com", "ByDay", "hash")

		if _, err := repo.Upsert(ctx, entity.NewMoodEntry(user.ID, day(2025, time.May, 1), 6, "")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, err := repo.FindByUserAndDate(ctx, user.ID, day(2025, time.May, 1))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Score != 6 {
			t.Errorf("expected score 6, got %d", found.Score)
		}

		if _, err := repo.FindByUserAndDate(ctx, user.ID, day(2025, time.May, 2)); !errors.Is(err, domainerror.ErrMoodEntryNotFound) {
			t.Errorf("expected ErrMoodEntryNotFound, got %v", err)
		}
	})

	t.Run("should delete an entry permanently", func(t *testing.T) {
		db := testDB(t)
		repo := NewMoodEntryRepository(db)
		user := entity.NewUser("delete@example.com", "Delete", "hash")

		saved, err := repo.Upsert(ctx, entity.NewMoodEntry(user.ID, day(2025, time.May, 1), 3, ""))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := repo.Delete(ctx, saved.ID); err != nil {
			t.Fatalf("expected no error on delete, got %v", err)
		}

		if _, err := repo.FindByID(ctx, saved.ID); !errors.Is(err, domainerror.ErrMoodEntryNotFound) {
			t.Errorf("expected ErrMoodEntryNotFound after delete, got %v", err)
		}
	})
}
