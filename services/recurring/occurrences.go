package recurring

import (
	"fmt"
	"time"

	"pawcare/models"
)

const dateLayout = "2006-01-02"

// safetyHorizon bounds generation when a series has neither an end date nor
// a max occurrence count: no occurrence is generated more than three months
// past "now".
const safetyHorizonMonths = 3

// GenerateOccurrences walks calendar dates forward from the series start date
// and returns up to limit occurrence candidates, numbered sequentially from
// OccurrencesCreated+1. The first OccurrencesCreated candidate positions are
// skipped: they were materialized by an earlier batch, so both dates and
// numbering continue the sequence on top-up. It performs no I/O; now is only
// used for the safety horizon.
//
// Advancement rules per frequency:
//   - daily: step IntervalCount days, every visited date is a candidate.
//   - monthly: step IntervalCount months, every visited date is a candidate.
//   - weekly without DaysOfWeek: step 7*IntervalCount days, every visited
//     date is a candidate.
//   - weekly with DaysOfWeek: step one day at a time, a date is a candidate
//     only when its weekday is in the set. IntervalCount is not applied on
//     this branch.
func GenerateOccurrences(series *models.RecurringSeries, limit int, now time.Time) ([]models.Occurrence, error) {
	if limit <= 0 {
		limit = InitialBatchSize
	}

	start, err := time.Parse(dateLayout, series.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid series start date %q: %w", series.StartDate, err)
	}

	var end time.Time
	hasEnd := false
	if series.EndDate != "" {
		end, err = time.Parse(dateLayout, series.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid series end date %q: %w", series.EndDate, err)
		}
		hasEnd = true
	}

	switch series.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		return nil, fmt.Errorf("unknown series frequency %q", series.Frequency)
	}

	interval := series.IntervalCount
	if interval < 1 {
		interval = 1
	}

	weekdays := make(map[time.Weekday]bool, len(series.DaysOfWeek))
	for _, d := range series.DaysOfWeek {
		weekdays[time.Weekday(d)] = true
	}
	byWeekday := series.Frequency == models.FrequencyWeekly && len(weekdays) > 0

	horizon := now.AddDate(0, safetyHorizonMonths, 0)
	current := start
	skip := series.OccurrencesCreated
	nextNumber := series.OccurrencesCreated + 1

	var occurrences []models.Occurrence
	for len(occurrences) < limit {
		if current.After(horizon) {
			break
		}
		if hasEnd && current.After(end) {
			break
		}

		candidate := true
		if byWeekday && !weekdays[current.Weekday()] {
			candidate = false
		}

		if candidate && skip > 0 {
			skip--
			candidate = false
		}

		if candidate {
			if series.MaxOccurrences > 0 && nextNumber > series.MaxOccurrences {
				break
			}
			occurrences = append(occurrences, models.Occurrence{
				Date:             current.Format(dateLayout),
				OccurrenceNumber: nextNumber,
			})
			nextNumber++
		}

		switch series.Frequency {
		case models.FrequencyDaily:
			current = current.AddDate(0, 0, interval)
		case models.FrequencyMonthly:
			current = current.AddDate(0, interval, 0)
		case models.FrequencyWeekly:
			if byWeekday {
				current = current.AddDate(0, 0, 1)
			} else {
				current = current.AddDate(0, 0, 7*interval)
			}
		}
	}

	return occurrences, nil
}
