package converter

import (
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/types"
)

// RunStats tracks aggregate counters across a batch run.
//
// Processed counts only entries that reached the core transform (their
// read/parse/encode/write sequence was attempted), so Processed equals
// Converted plus Failed. Entries classified out during enumeration increment
// Skipped only.
type RunStats struct {
	Processed int
	Converted int
	Skipped   int
	Failed    int
}

// Record folds one outcome into the counters.
func (s *RunStats) Record(o types.Outcome) {
	switch o.Status {
	case types.StatusConverted:
		s.Processed++
		s.Converted++
	case types.StatusFailed:
		s.Processed++
		s.Failed++
	case types.StatusSkipped:
		s.Skipped++
	}
}
