package helpers

import (
	"sort"

	"github.com/doeshing/tams-go/internal/domain"
)

// OperationStatistic summarises journal entries for one operation.
type OperationStatistic struct {
	Operation string
	Calls     int
	Failures  int
}

// JournalStats aggregates a slice of journal records.
type JournalStats struct {
	Total      int
	Successful int
	ByKind     map[domain.FailureKind]int
	Operations []OperationStatistic
}

// SuccessRate is the share of successful calls as a percentage.
func (s JournalStats) SuccessRate() float64 {
	return CalculateSuccessRate(s.Successful, s.Total)
}

// SummariseJournal counts calls per operation and failures per kind.
func SummariseJournal(records []domain.CallRecord) JournalStats {
	stats := JournalStats{ByKind: map[domain.FailureKind]int{}}
	perOp := map[string]*OperationStatistic{}
	for _, rec := range records {
		stats.Total++
		op, ok := perOp[rec.Operation]
		if !ok {
			op = &OperationStatistic{Operation: rec.Operation}
			perOp[rec.Operation] = op
		}
		op.Calls++
		if rec.Success {
			stats.Successful++
			continue
		}
		op.Failures++
		stats.ByKind[rec.FailureKind]++
	}

	stats.Operations = make([]OperationStatistic, 0, len(perOp))
	for _, op := range perOp {
		stats.Operations = append(stats.Operations, *op)
	}
	sortStatisticsByCalls(stats.Operations)
	return stats
}

// sortStatisticsByCalls sorts by call count (descending) then by name (ascending)
func sortStatisticsByCalls(stats []OperationStatistic) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Calls == stats[j].Calls {
			return stats[i].Operation < stats[j].Operation
		}
		return stats[i].Calls > stats[j].Calls
	})
}

// CalculateSuccessRate calculates the success rate as a percentage
func CalculateSuccessRate(successful, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(successful) / float64(total) * 100.0
}
