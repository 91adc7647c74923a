// Package progress provides the daily streak domain model and repository interfaces.
package progress

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Date represents a date in YYYY-MM-DD format for YAML serialization
type Date struct {
	time.Time
}

// MarshalYAML implements the yaml.Marshaler interface
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	t, err = time.Parse(time.RFC3339, value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("unable to parse date '%s': expected YYYY-MM-DD or RFC3339 format", value.Value)
}

// NewDateFromTime creates a new Date from a time.Time, truncated to the day.
func NewDateFromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Format("2006-01-02") == other.Format("2006-01-02")
}

// Record is the persisted daily study progress.
// The streak only ever increases by one per distinct calendar day of use,
// or resets to one after a gap.
type Record struct {
	Streak       int  `yaml:"streak"`
	LastCheckIn  Date `yaml:"last_check_in,omitempty"`
	WordsLearned int  `yaml:"words_learned"`
}

// CheckIn computes the next record from now and the current record.
// Checking in twice on the same day is a no-op.
func CheckIn(record Record, now time.Time) Record {
	today := NewDateFromTime(now)
	if !record.LastCheckIn.IsZero() && record.LastCheckIn.SameDay(today) {
		return record
	}

	next := record
	next.LastCheckIn = today

	if record.LastCheckIn.IsZero() {
		next.Streak = 1
		return next
	}

	yesterday := NewDateFromTime(now.AddDate(0, 0, -1))
	if record.LastCheckIn.SameDay(yesterday) {
		next.Streak = record.Streak + 1
		return next
	}

	next.Streak = 1
	return next
}

// AddWordsLearned bumps the lifetime counter by the studied batch size.
func AddWordsLearned(record Record, count int) Record {
	if count < 0 {
		count = 0
	}
	record.WordsLearned += count
	return record
}
