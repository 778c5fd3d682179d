package seed

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// recordingMoodRepo captures upserted entries keyed by date.
type recordingMoodRepo struct {
	entries map[string]*entity.MoodEntry
	failErr error
}

func newRecordingMoodRepo() *recordingMoodRepo {
	return &recordingMoodRepo{entries: make(map[string]*entity.MoodEntry)}
}

func (r *recordingMoodRepo) Upsert(ctx context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	key := entry.Date.Format("2006-01-02")
	r.entries[key] = entry
	return entry, nil
}

func (r *recordingMoodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error) {
	return nil, domainerror.ErrMoodEntryNotFound
}

func (r *recordingMoodRepo) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error) {
	return nil, domainerror.ErrMoodEntryNotFound
}

func (r *recordingMoodRepo) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.MoodEntry, error) {
	return nil, nil
}

func (r *recordingMoodRepo) Update(ctx context.Context, entry *entity.MoodEntry) error {
	return nil
}

func (r *recordingMoodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSeedUserMoods(t *testing.T) {
	user := entity.NewUser("seed@example.com", "Seed User", "hash")
	now := time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC)

	t.Run("should create a bounded number of entries on distinct days", func(t *testing.T) {
		repo := newRecordingMoodRepo()
		seeder := NewSeederWithSource(repo, rand.NewSource(42), fixedClock(now))

		created, err := seeder.SeedUserMoods(context.Background(), user)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if created < MinEntriesPerUser || created > MaxEntriesPerUser {
			t.Errorf("expected between %d and %d entries, got %d", MinEntriesPerUser, MaxEntriesPerUser, created)
		}

		// The repo map is keyed by date, so duplicates would collapse.
		if len(repo.entries) != created {
			t.Errorf("expected %d distinct days, got %d", created, len(repo.entries))
		}
	})

	t.Run("should keep every entry within the elapsed part of the year", func(t *testing.T) {
		repo := newRecordingMoodRepo()
		seeder := NewSeederWithSource(repo, rand.NewSource(7), fixedClock(now))

		if _, err := seeder.SeedUserMoods(context.Background(), user); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		today := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
		for key, entry := range repo.entries {
			if entry.Date.Before(yearStart) || entry.Date.After(today) {
				t.Errorf("entry on %s falls outside the seeded range", key)
			}
		}
	})

	t.Run("should only produce valid scores", func(t *testing.T) {
		repo := newRecordingMoodRepo()
		seeder := NewSeederWithSource(repo, rand.NewSource(99), fixedClock(now))

		if _, err := seeder.SeedUserMoods(context.Background(), user); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for key, entry := range repo.entries {
			if !entity.IsValidScore(entry.Score) {
				t.Errorf("entry on %s has invalid score %d", key, entry.Score)
			}
		}
	})

	t.Run("should match comments to the score band", func(t *testing.T) {
		repo := newRecordingMoodRepo()
		seeder := NewSeederWithSource(repo, rand.NewSource(123), fixedClock(now))

		if _, err := seeder.SeedUserMoods(context.Background(), user); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for key, entry := range repo.entries {
			if entry.Comment == "" {
				continue
			}
			band := ((entry.Score - 1) / 2 * 2) + 1
			found := false
			for _, candidate := range commentsByBand[band] {
				if entry.Comment == candidate {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("entry on %s (score %d) has comment from the wrong band: %q", key, entry.Score, entry.Comment)
			}
		}
	})

	t.Run("should cap entries by elapsed days early in the year", func(t *testing.T) {
		repo := newRecordingMoodRepo()
		earlyJanuary := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
		seeder := NewSeederWithSource(repo, rand.NewSource(1), fixedClock(earlyJanuary))

		created, err := seeder.SeedUserMoods(context.Background(), user)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if created != 10 {
			t.Errorf("expected entries capped at 10 elapsed days, got %d", created)
		}
	})

	t.Run("should stop and return the error when the store fails", func(t *testing.T) {
		repo := newRecordingMoodRepo()
		repo.failErr = domainerror.ErrMoodEntryConflict
		seeder := NewSeederWithSource(repo, rand.NewSource(5), fixedClock(now))

		created, err := seeder.SeedUserMoods(context.Background(), user)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		if created != 0 {
			t.Errorf("expected 0 created entries, got %d", created)
		}
	})
}

func TestPickScoreDistribution(t *testing.T) {
	repo := newRecordingMoodRepo()
	seeder := NewSeederWithSource(repo, rand.NewSource(2024), fixedClock(time.Now()))

	counts := make(map[int]int)
	const samples = 10000
	for i := 0; i < samples; i++ {
		score := seeder.pickScore()
		if !entity.IsValidScore(score) {
			t.Fatalf("pickScore returned invalid score %d", score)
		}
		band := ((score - 1) / 2 * 2) + 1
		counts[band]++
	}

	// The upper-middle band carries the most weight, so it must dominate.
	if counts[7] <= counts[1] || counts[7] <= counts[3] || counts[7] <= counts[5] || counts[7] <= counts[9] {
		t.Errorf("expected the 7-8 band to dominate, got %v", counts)
	}
}
