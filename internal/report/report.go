package report

import (
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Report is a resolved, point-in-time aggregation snapshot for one period.
// It retains the filtered transactions for drill-down and export; the
// expense breakdown covers those transactions only.
type Report struct {
	Period PeriodKind
	Start  model.Date
	End    model.Date
	// Transactions matching the window, in store order.
	Transactions []model.Transaction
	Totals       Totals
	// Expenses is the expense-only category breakdown.
	Expenses []CategoryTotal
}

// Build resolves the period window against ref, filters transactions whose
// date falls inside it (both bounds inclusive), and aggregates. Zero
// matching transactions is not an error: Build returns (nil, nil) and the
// caller renders a placeholder.
func Build(transactions []model.Transaction, kind PeriodKind, ref model.Date, customStart, customEnd model.Date) (*Report, error) {
	start, end, err := PeriodWindow(kind, ref, customStart, customEnd)
	if err != nil {
		return nil, err
	}

	var matched []model.Transaction
	for _, t := range transactions {
		if t.Date.Before(start.Time) || t.Date.After(end.Time) {
			continue
		}
		matched = append(matched, t)
	}
	if len(matched) == 0 {
		return nil, nil
	}

	return &Report{
		Period:       kind,
		Start:        start,
		End:          end,
		Transactions: matched,
		Totals:       TotalsByType(matched),
		Expenses:     CategoryBreakdown(matched, model.TypeExpense),
	}, nil
}

// State is the report view's lifecycle state.
type State string

const (
	// StateIdle means no generation has happened since the last reset.
	StateIdle State = "idle"
	// StatePopulated means the last generation produced a report.
	StatePopulated State = "populated"
	// StateEmpty means the last generation matched zero transactions.
	StateEmpty State = "empty"
)

// Session holds the report view state: Idle until a generation, Populated
// while a report is held, Empty after a generation that matched nothing.
// Regenerating fully replaces prior report state; transitions are
// user-driven and unbounded.
type Session struct {
	state  State
	report *Report
}

// NewSession returns a Session in the Idle state.
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Current returns the held report, or nil in Idle and Empty states.
func (s *Session) Current() *Report {
	return s.report
}

// Generate builds a report and replaces any prior one. A zero-match
// generation clears the prior report and moves to Empty. An invalid range
// leaves the session unchanged and returns the error.
func (s *Session) Generate(transactions []model.Transaction, kind PeriodKind, ref model.Date, customStart, customEnd model.Date) (*Report, error) {
	r, err := Build(transactions, kind, ref, customStart, customEnd)
	if err != nil {
		return nil, err
	}
	s.report = r
	if r == nil {
		s.state = StateEmpty
		return nil, nil
	}
	s.state = StatePopulated
	return r, nil
}

// PeriodChanged resets the session to Idle and drops the held report.
func (s *Session) PeriodChanged() {
	s.state = StateIdle
	s.report = nil
}
