package connect4

import (
	"errors"
	"fmt"
)

// Recorder persists a player's win/loss tally after a finished game.
type Recorder interface {
	RecordOutcome(name string, won bool) error
}

// RecordResults sends every result to rec. A failure for one player does
// not prevent the others from being recorded; all failures are returned.
func RecordResults(rec Recorder, results []PlayerResult) error {
	if rec == nil {
		return nil
	}

	var errs []error
	for _, r := range results {
		if err := rec.RecordOutcome(r.Name, r.Won); err != nil {
			errs = append(errs, fmt.Errorf("record %q: %w", r.Name, err))
		}
	}
	return errors.Join(errs...)
}
