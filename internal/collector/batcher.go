package collector

import (
	"fmt"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
)

// SplitObjects partitions the campaign/object pairs into chunks of at
// most maxCampaigns campaigns, preserving the enumeration order. A set
// that fits the limit comes back as a single batch.
func SplitObjects(objects []domain.CampaignObjects, maxCampaigns int) [][]domain.CampaignObjects {
	if len(objects) <= maxCampaigns {
		return [][]domain.CampaignObjects{objects}
	}

	batches := make([][]domain.CampaignObjects, 0, (len(objects)+maxCampaigns-1)/maxCampaigns)
	for i := 0; i < len(objects); i += maxCampaigns {
		end := i + maxCampaigns
		if end > len(objects) {
			end = len(objects)
		}
		batches = append(batches, objects[i:end])
	}

	return batches
}

// SplitTime partitions [dateFrom, dateTo] into consecutive sub-ranges of
// maxDays days each, the last one clipped at dateTo. A range within the
// limit comes back whole. dateFrom after dateTo is the one precondition
// violation that fails the run outright.
func SplitTime(dateFrom, dateTo time.Time, maxDays int) ([]domain.DateRange, error) {
	from := truncateToDay(dateFrom)
	to := truncateToDay(dateTo)

	if from.After(to) {
		return nil, fmt.Errorf("inverted date range: %s > %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	span := daysBetween(from, to)
	if span <= maxDays {
		return []domain.DateRange{{From: from, To: to}}, nil
	}

	ranges := make([]domain.DateRange, 0, span/maxDays+1)
	for offset := 0; offset <= span; offset += maxDays {
		subFrom := from.AddDate(0, 0, offset)
		subTo := from.AddDate(0, 0, offset+maxDays-1)
		if !subTo.Before(to) {
			subTo = to
		}
		ranges = append(ranges, domain.DateRange{From: subFrom, To: subTo})
	}

	return ranges, nil
}

// daysBetween counts calendar days from a to b, endpoints exclusive of a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
