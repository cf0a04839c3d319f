package analytics

import (
	"math"
	"sort"

	"github.com/prime399/study-flow-kiro-sub001/models"
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

const (
	// Composite scores reach full confidence once this many sessions back an hour.
	fullConfidenceSessions = 10
	maxOptimalSlots        = 5
)

// sessionHour resolves the bucketing hour, preferring the denormalized
// field over the start time.
func sessionHour(s models.StudySession) int {
	if s.HourOfDay != nil {
		return *s.HourOfDay
	}
	return s.StartTime.Hour()
}

func sessionDay(s models.StudySession) int {
	if s.DayOfWeek != nil {
		return *s.DayOfWeek
	}
	return int(s.StartTime.Weekday())
}

func scoreOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func roundAvg(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}

// HourlyPerformance reduces completed sessions into 24 hour buckets.
// Every hour key 0-23 is present in the result; empty buckets keep zero
// averages.
func HourlyPerformance(sessions []models.StudySession) map[int]models.HourlyBucket {
	type acc struct{ count, prod, focus, dur int }
	var accs [24]acc

	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		h := sessionHour(s)
		if h < 0 || h > 23 {
			continue
		}
		a := &accs[h]
		a.count++
		a.prod += scoreOrZero(s.ProductivityScore)
		a.focus += scoreOrZero(s.FocusQuality)
		a.dur += s.Duration
	}

	out := make(map[int]models.HourlyBucket, 24)
	for h, a := range accs {
		b := models.HourlyBucket{Count: a.count, TotalDuration: a.dur}
		if a.count > 0 {
			b.AvgProductivity = roundAvg(a.prod, a.count)
			b.AvgFocusQuality = roundAvg(a.focus, a.count)
		}
		out[h] = b
	}
	return out
}

// DailyPerformance reduces completed sessions into 7 day-of-week buckets
// (0=Sunday), each tagged with its English day name.
func DailyPerformance(sessions []models.StudySession) map[int]models.DailyBucket {
	type acc struct{ count, prod, focus, dur int }
	var accs [7]acc

	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		d := sessionDay(s)
		if d < 0 || d > 6 {
			continue
		}
		a := &accs[d]
		a.count++
		a.prod += scoreOrZero(s.ProductivityScore)
		a.focus += scoreOrZero(s.FocusQuality)
		a.dur += s.Duration
	}

	out := make(map[int]models.DailyBucket, 7)
	for d, a := range accs {
		b := models.DailyBucket{Count: a.count, TotalDuration: a.dur, DayName: dayNames[d]}
		if a.count > 0 {
			b.AvgProductivity = roundAvg(a.prod, a.count)
			b.AvgFocusQuality = roundAvg(a.focus, a.count)
		}
		out[d] = b
	}
	return out
}

// EventImpactAnalysis buckets completed sessions by the calendar event type
// that preceded them. Unlike the hour/day reductions the key space is open:
// buckets appear on first occurrence of an event type.
func EventImpactAnalysis(sessions []models.StudySession) map[string]models.EventImpactBucket {
	type acc struct{ count, prod, focus int }
	accs := make(map[string]*acc)

	for _, s := range sessions {
		if !s.Completed || s.PrecedingEventType == nil || *s.PrecedingEventType == "" {
			continue
		}
		a := accs[*s.PrecedingEventType]
		if a == nil {
			a = &acc{}
			accs[*s.PrecedingEventType] = a
		}
		a.count++
		a.prod += scoreOrZero(s.ProductivityScore)
		a.focus += scoreOrZero(s.FocusQuality)
	}

	out := make(map[string]models.EventImpactBucket, len(accs))
	for k, a := range accs {
		out[k] = models.EventImpactBucket{
			Count:           a.count,
			AvgProductivity: roundAvg(a.prod, a.count),
			AvgFocusQuality: roundAvg(a.focus, a.count),
		}
	}
	return out
}

// OptimalStudyTimes ranks the 24 hours of day by average productivity
// discounted for small samples: score = avg * min(1, count/10). The result
// is sorted by score descending, ties broken by lower hour, and capped at
// five slots.
func OptimalStudyTimes(sessions []models.StudySession) []models.OptimalTimeSlot {
	var counts, prodSums [24]int

	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		h := sessionHour(s)
		if h < 0 || h > 23 {
			continue
		}
		counts[h]++
		prodSums[h] += scoreOrZero(s.ProductivityScore)
	}

	slots := make([]models.OptimalTimeSlot, 0, 24)
	for h := 0; h < 24; h++ {
		var avg int
		if counts[h] > 0 {
			avg = roundAvg(prodSums[h], counts[h])
		}
		confidence := math.Min(1, float64(counts[h])/fullConfidenceSessions)
		slots = append(slots, models.OptimalTimeSlot{
			Hour:            h,
			Score:           float64(avg) * confidence,
			SessionCount:    counts[h],
			AvgProductivity: avg,
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Score != slots[j].Score {
			return slots[i].Score > slots[j].Score
		}
		return slots[i].Hour < slots[j].Hour
	})

	return slots[:maxOptimalSlots]
}
