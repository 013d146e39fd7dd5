package service

import (
	"context"
	"fmt"
	"time"

	"taralog/internal/model"
	"taralog/internal/repository"
)

// statsWindowDays is the length of the daily reading series.
const statsWindowDays = 30

var ageBuckets = []string{"18-24", "25-34", "35-44", "45-54", "55+"}

// GenderCounts tabulates counts by gender.
type GenderCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

// Stats is the point-in-time usage summary returned to the admin dashboard.
type Stats struct {
	TotalUsers        int            `json:"totalUsers"`
	TotalReadings     int            `json:"totalReadings"`
	GenderStats       GenderCounts   `json:"genderStats"`
	AgeGroups         map[string]int `json:"ageGroups"`
	ReadingTypes      map[string]int `json:"readingTypes"`
	UniqueUsersByType map[string]int `json:"uniqueUsersByType"`
	ReadingsByGender  GenderCounts   `json:"readingsByGender"`
	ReadingsByAge     map[string]int `json:"readingsByAge"`
	// DailyReadings holds per-day counts for the trailing 30 days, keyed by
	// UTC date (YYYY-MM-DD). Days with zero readings are omitted; the
	// consumer materializes the full 30-point axis.
	DailyReadings map[string]int `json:"dailyReadings"`
}

// StatsService computes usage statistics on demand. Results are never
// cached or persisted.
type StatsService interface {
	Compute(ctx context.Context) (*Stats, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	readingRepo repository.ReadingRepository
	now         func() time.Time
}

// NewStatsService builds a StatsService over the user and reading stores.
func NewStatsService(userRepo repository.UserRepository, readingRepo repository.ReadingRepository) StatsService {
	return &statsService{
		userRepo:    userRepo,
		readingRepo: readingRepo,
		now:         time.Now,
	}
}

func (s *statsService) Compute(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	readings, err := s.readingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}
	return computeStats(users, readings, s.now()), nil
}

// userFacts are the per-user attributes reused for every reading, so age is
// computed once per user instead of once per reading.
type userFacts struct {
	gender string
	bucket string // empty when birth date is unknown
}

// computeStats cross-tabulates users and readings in one pass each. Inputs
// are never mutated.
func computeStats(users []model.User, readings []model.Reading, now time.Time) *Stats {
	stats := &Stats{
		TotalUsers:        len(users),
		TotalReadings:     len(readings),
		AgeGroups:         seededBuckets(),
		ReadingTypes:      seededTypes(),
		UniqueUsersByType: seededTypes(),
		ReadingsByAge:     seededBuckets(),
		DailyReadings:     make(map[string]int),
	}

	facts := make(map[uint]userFacts, len(users))
	for _, u := range users {
		f := userFacts{gender: u.Gender}
		if u.BirthDate != nil {
			f.bucket = ageBucket(ageAt(*u.BirthDate, now))
			stats.AgeGroups[f.bucket]++
		}
		countGender(&stats.GenderStats, u.Gender)
		facts[u.ID] = f
	}

	today := now.UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -(statsWindowDays - 1))

	uniqueByType := make(map[string]map[uint]struct{}, len(model.ReadingTypes))
	for _, r := range readings {
		stats.ReadingTypes[r.ReadingType]++
		set, ok := uniqueByType[r.ReadingType]
		if !ok {
			set = make(map[uint]struct{})
			uniqueByType[r.ReadingType] = set
		}
		set[r.UserID] = struct{}{}

		// Readings whose owner is gone (deleted user) still count in the
		// per-type totals above but cannot be attributed by gender or age.
		if f, ok := facts[r.UserID]; ok {
			countGender(&stats.ReadingsByGender, f.gender)
			if f.bucket != "" {
				stats.ReadingsByAge[f.bucket]++
			}
		}

		day := r.CreatedAt.UTC().Truncate(24 * time.Hour)
		if !day.Before(windowStart) && !day.After(today) {
			stats.DailyReadings[day.Format("2006-01-02")]++
		}
	}

	for readingType, set := range uniqueByType {
		stats.UniqueUsersByType[readingType] = len(set)
	}

	return stats
}

// ageAt returns whole calendar years between birth and now: year difference,
// minus one when now's month/day falls before the birth month/day.
func ageAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// ageBucket maps an age to its fixed bucket, inclusive on the lower bound.
// Under-18 ages are not expected input and clamp into the first bucket.
func ageBucket(age int) string {
	switch {
	case age < 25:
		return "18-24"
	case age < 35:
		return "25-34"
	case age < 45:
		return "35-44"
	case age < 55:
		return "45-54"
	default:
		return "55+"
	}
}

func countGender(g *GenderCounts, gender string) {
	switch gender {
	case model.GenderMale:
		g.Male++
	case model.GenderFemale:
		g.Female++
	case model.GenderOther:
		g.Other++
	}
}

func seededBuckets() map[string]int {
	m := make(map[string]int, len(ageBuckets))
	for _, b := range ageBuckets {
		m[b] = 0
	}
	return m
}

func seededTypes() map[string]int {
	m := make(map[string]int, len(model.ReadingTypes))
	for _, t := range model.ReadingTypes {
		m[t] = 0
	}
	return m
}
