// Package report computes period windows, aggregates, and point-in-time
// reports from a record-store snapshot. Everything here is a pure function
// over the snapshot; nothing mutates the store.
package report

import (
	"errors"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// PeriodKind selects how a report window is resolved.
type PeriodKind string

const (
	PeriodMonth   PeriodKind = "month"
	PeriodQuarter PeriodKind = "quarter"
	PeriodYear    PeriodKind = "year"
	PeriodCustom  PeriodKind = "custom"
)

// Valid reports whether the kind is known.
func (p PeriodKind) Valid() bool {
	switch p {
	case PeriodMonth, PeriodQuarter, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

// ErrInvalidRange reports a custom range with a missing bound or start
// after end. No report is generated.
var ErrInvalidRange = errors.New("invalid date range")

// PeriodWindow resolves a period kind to its inclusive [start, end] window.
// month/quarter/year are anchored at ref; custom uses the supplied bounds
// and fails with ErrInvalidRange when a bound is missing or start > end.
func PeriodWindow(kind PeriodKind, ref model.Date, customStart, customEnd model.Date) (model.Date, model.Date, error) {
	switch kind {
	case PeriodMonth:
		start := model.NewDate(ref.Year(), int(ref.Month()), 1)
		return start, endOfMonth(start), nil
	case PeriodQuarter:
		quarter := (int(ref.Month()) - 1) / 3
		start := model.NewDate(ref.Year(), quarter*3+1, 1)
		return start, endOfMonth(start.AddMonths(2)), nil
	case PeriodYear:
		return model.NewDate(ref.Year(), 1, 1), model.NewDate(ref.Year(), 12, 31), nil
	case PeriodCustom:
		if customStart.IsZero() || customEnd.IsZero() {
			return model.Date{}, model.Date{}, ErrInvalidRange
		}
		if customStart.After(customEnd.Time) {
			return model.Date{}, model.Date{}, ErrInvalidRange
		}
		return customStart, customEnd, nil
	}
	return model.Date{}, model.Date{}, ErrInvalidRange
}

// endOfMonth returns the last calendar day of d's month.
func endOfMonth(d model.Date) model.Date {
	return model.NewDate(d.Year(), int(d.Month())+1, 0)
}
