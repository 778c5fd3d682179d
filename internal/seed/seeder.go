// Package seed generates demo data for local development and review.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
)

const (
	// MinEntriesPerUser and MaxEntriesPerUser bound how many mood entries
	// each user receives (capped by the number of elapsed days).
	MinEntriesPerUser = 50
	MaxEntriesPerUser = 150

	// commentProbability is the share of entries that carry a comment.
	commentProbability = 0.7
)

// scoreBucket is one band of the weighted score distribution.
type scoreBucket struct {
	weight   float64
	minScore int
	maxScore int
}

// scoreBuckets skews scores toward the upper-middle of the scale, matching
// how people actually report their mood.
var scoreBuckets = []scoreBucket{
	{weight: 0.05, minScore: 1, maxScore: 2},
	{weight: 0.10, minScore: 3, maxScore: 4},
	{weight: 0.25, minScore: 5, maxScore: 6},
	{weight: 0.40, minScore: 7, maxScore: 8},
	{weight: 0.20, minScore: 9, maxScore: 10},
}

// commentsByBand holds comment pools keyed by the low score of each band.
var commentsByBand = map[int][]string{
	1: {
		"Really rough day.",
		"Everything felt like too much today.",
		"Barely slept, struggled all day.",
	},
	3: {
		"Not a great day.",
		"Felt off for most of the day.",
		"Stressful day at work.",
	},
	5: {
		"Average day, nothing special.",
		"Fine, just tired.",
		"Okay day, a bit restless.",
	},
	7: {
		"Good day overall.",
		"Productive day, feeling content.",
		"Nice evening walk helped a lot.",
	},
	9: {
		"Great day!",
		"Felt energized and happy all day.",
		"One of those days where everything clicks.",
	},
}

// Seeder populates the mood store with plausible demo entries.
type Seeder struct {
	moodRepo adapter.MoodEntryRepository
	rng      *rand.Rand
	now      func() time.Time
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(moodRepo adapter.MoodEntryRepository) *Seeder {
	return &Seeder{
		moodRepo: moodRepo,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// NewSeederWithSource creates a Seeder with an injectable random source and
// clock, for deterministic tests.
func NewSeederWithSource(moodRepo adapter.MoodEntryRepository, src rand.Source, now func() time.Time) *Seeder {
	return &Seeder{
		moodRepo: moodRepo,
		rng:      rand.New(src),
		now:      now,
	}
}

// SeedUserMoods generates mood entries for one user, spread over the current
// year from January 1st up to today. Each calendar day is used at most once.
func (s *Seeder) SeedUserMoods(ctx context.Context, user *entity.User) (int, error) {
	today := entity.NormalizeDate(s.now().UTC())
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	elapsedDays := int(today.Sub(yearStart).Hours()/24) + 1

	target := MinEntriesPerUser + s.rng.Intn(MaxEntriesPerUser-MinEntriesPerUser+1)
	if target > elapsedDays {
		target = elapsedDays
	}

	days := s.pickDays(yearStart, elapsedDays, target)

	created := 0
	for _, day := range days {
		score := s.pickScore()
		comment := ""
		if s.rng.Float64() < commentProbability {
			comment = s.pickComment(score)
		}

		entry := entity.NewMoodEntry(user.ID, day, score, comment)
		if _, err := s.moodRepo.Upsert(ctx, entry); err != nil {
			return created, fmt.Errorf("failed to seed mood for %s on %s: %w",
				user.Email, day.Format("2006-01-02"), err)
		}
		created++
	}

	slog.Info("Seeded mood entries", "user", user.Email, "entries", created)
	return created, nil
}

// pickDays selects count distinct days from the elapsed part of the year.
func (s *Seeder) pickDays(yearStart time.Time, elapsedDays, count int) []time.Time {
	offsets := s.rng.Perm(elapsedDays)[:count]

	days := make([]time.Time, count)
	for i, offset := range offsets {
		days[i] = yearStart.AddDate(0, 0, offset)
	}
	return days
}

// pickScore draws a score from the weighted bucket distribution.
func (s *Seeder) pickScore() int {
	roll := s.rng.Float64()

	cumulative := 0.0
	for _, bucket := range scoreBuckets {
		cumulative += bucket.weight
		if roll < cumulative {
			return bucket.minScore + s.rng.Intn(bucket.maxScore-bucket.minScore+1)
		}
	}

	// Floating point slack lands in the last bucket.
	last := scoreBuckets[len(scoreBuckets)-1]
	return last.minScore + s.rng.Intn(last.maxScore-last.minScore+1)
}

// pickComment selects a comment matching the score's band.
func (s *Seeder) pickComment(score int) string {
	band := ((score - 1) / 2 * 2) + 1
	pool := commentsByBand[band]
	return pool[s.rng.Intn(len(pool))]
}
