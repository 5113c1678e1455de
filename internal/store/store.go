// Package store owns the record collections (transactions, budgets, goals,
// bills) and settings, and flushes them to a local key/value blob on every
// mutation. One logical actor mutates the store at a time; there is no
// locking discipline.
package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/categories"
	"github.com/fintrack-dev/fintrack/internal/id"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Persisted blob keys.
const (
	keyData = "data"
	keyUser = "current_user"
)

// ValidationError reports a rejected field on record creation. The input is
// rejected whole; no partial record is created.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports a lookup of a record ID that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Store is the single owner of all record collections. It is constructed
// from persisted state and writes the full blob back on every mutation
// (last write wins, no merge).
type Store struct {
	kv   KV
	data Data
	user *model.User
}

// Open loads the store from kv. Missing keys yield an empty store with
// default settings.
func Open(kv KV) (*Store, error) {
	blob, err := kv.Get(keyData)
	if err != nil {
		return nil, err
	}
	data, err := unmarshalData(blob)
	if err != nil {
		return nil, err
	}

	userBlob, err := kv.Get(keyUser)
	if err != nil {
		return nil, err
	}
	user, err := unmarshalUser(userBlob)
	if err != nil {
		return nil, err
	}

	return &Store{kv: kv, data: data, user: user}, nil
}

// Data returns a snapshot of the current collections and settings.
func (s *Store) Data() Data {
	return s.data.Clone()
}

// Settings returns the current settings.
func (s *Store) Settings() model.Settings {
	return s.data.Settings
}

// flush writes the full snapshot blob, replacing the previous one.
func (s *Store) flush() error {
	blob, err := marshalData(s.data)
	if err != nil {
		return err
	}
	if err := s.kv.Put(keyData, blob); err != nil {
		return err
	}
	slog.Debug("store flushed",
		"transactions", len(s.data.Transactions),
		"budgets", len(s.data.Budgets),
		"goals", len(s.data.Goals),
		"bills", len(s.data.Bills))
	return nil
}

// TransactionParams holds the user-supplied fields for a new transaction.
type TransactionParams struct {
	Type               model.TransactionType
	Amount             decimal.Decimal
	Category           string
	Date               model.Date
	Description        string
	PaymentMethod      string
	IsRecurring        bool
	RecurringFrequency model.Frequency
}

// AddTransaction validates and appends a transaction, assigning its ID.
func (s *Store) AddTransaction(p TransactionParams) (model.Transaction, error) {
	if !p.Type.Valid() {
		return model.Transaction{}, ValidationError{Field: "type", Message: "select a transaction type"}
	}
	if !p.Amount.IsPositive() {
		return model.Transaction{}, ValidationError{Field: "amount", Message: "enter a valid amount"}
	}
	if p.Category == "" {
		return model.Transaction{}, ValidationError{Field: "category", Message: "select a category"}
	}
	if !categories.ValidForType(p.Category, p.Type) {
		return model.Transaction{}, ValidationError{Field: "category", Message: fmt.Sprintf("unknown %s category %q", p.Type, p.Category)}
	}
	if p.Date.IsZero() {
		return model.Transaction{}, ValidationError{Field: "date", Message: "select a date"}
	}
	if p.IsRecurring && !p.RecurringFrequency.Valid() {
		return model.Transaction{}, ValidationError{Field: "recurringFrequency", Message: "select a recurring frequency"}
	}

	txn := model.Transaction{
		ID:            id.New(),
		Type:          p.Type,
		Amount:        p.Amount,
		Category:      p.Category,
		Date:          p.Date,
		Description:   p.Description,
		PaymentMethod: p.PaymentMethod,
		IsRecurring:   p.IsRecurring,
	}
	if p.IsRecurring {
		txn.RecurringFrequency = p.RecurringFrequency
	}

	s.data.Transactions = append(s.data.Transactions, txn)
	if err := s.flush(); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// Filter selects transactions for history views. Zero-valued fields match
// everything; date bounds are inclusive.
type Filter struct {
	Type     model.TransactionType
	Category string
	From     model.Date
	To       model.Date
}

func (f Filter) matches(t model.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From.Time) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To.Time) {
		return false
	}
	return true
}

// Transactions returns the transactions matching f, in insertion order.
func (s *Store) Transactions(f Filter) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.data.Transactions {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// BudgetParams holds the user-supplied fields for a new budget.
type BudgetParams struct {
	Category  string
	Amount    decimal.Decimal
	Period    model.BudgetPeriod
	StartDate model.Date
}

// AddBudget validates and appends a budget. At most one budget may exist
// per (category, period) pair.
func (s *Store) AddBudget(p BudgetParams) (model.Budget, error) {
	if p.Category == "" {
		return model.Budget{}, ValidationError{Field: "category", Message: "select a category"}
	}
	if !categories.Valid(p.Category) {
		return model.Budget{}, ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", p.Category)}
	}
	if !p.Amount.IsPositive() {
		return model.Budget{}, ValidationError{Field: "amount", Message: "enter a valid amount"}
	}
	if !p.Period.Valid() {
		return model.Budget{}, ValidationError{Field: "period", Message: "select a period"}
	}
	if p.StartDate.IsZero() {
		return model.Budget{}, ValidationError{Field: "startDate", Message: "select a start date"}
	}
	for _, b := range s.data.Budgets {
		if b.Category == p.Category && b.Period == p.Period {
			return model.Budget{}, ValidationError{Field: "category", Message: "budget already exists for this category and period"}
		}
	}

	budget := model.Budget{
		ID:        id.New(),
		Category:  p.Category,
		Amount:    p.Amount,
		Period:    p.Period,
		StartDate: p.StartDate,
	}
	s.data.Budgets = append(s.data.Budgets, budget)
	if err := s.flush(); err != nil {
		return model.Budget{}, err
	}
	return budget, nil
}

// DeleteBudget removes a budget by ID.
func (s *Store) DeleteBudget(budgetID string) error {
	for i, b := range s.data.Budgets {
		if b.ID == budgetID {
			s.data.Budgets = append(s.data.Budgets[:i], s.data.Budgets[i+1:]...)
			return s.flush()
		}
	}
	return NotFoundError{Kind: "budget", ID: budgetID}
}

// Budgets returns all budgets in insertion order.
func (s *Store) Budgets() []model.Budget {
	return append([]model.Budget(nil), s.data.Budgets...)
}

// GoalParams holds the user-supplied fields for a new savings goal.
type GoalParams struct {
	Name        string
	Target      decimal.Decimal
	Current     decimal.Decimal
	Deadline    model.Date
	Description string
}

// AddGoal validates and appends a goal, stamping CreatedAt with today.
func (s *Store) AddGoal(p GoalParams, today model.Date) (model.Goal, error) {
	if p.Name == "" {
		return model.Goal{}, ValidationError{Field: "name", Message: "enter a goal name"}
	}
	if !p.Target.IsPositive() {
		return model.Goal{}, ValidationError{Field: "target", Message: "enter a valid target amount"}
	}
	if p.Current.IsNegative() {
		return model.Goal{}, ValidationError{Field: "current", Message: "current amount cannot be negative"}
	}
	if p.Deadline.IsZero() {
		return model.Goal{}, ValidationError{Field: "deadline", Message: "select a target date"}
	}

	goal := model.Goal{
		ID:          id.New(),
		Name:        p.Name,
		Target:      p.Target,
		Current:     p.Current,
		Deadline:    p.Deadline,
		Description: p.Description,
		CreatedAt:   today,
	}
	s.data.Goals = append(s.data.Goals, goal)
	if err := s.flush(); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

// UpdateGoalProgress replaces a goal's current amount with a user-asserted
// value.
func (s *Store) UpdateGoalProgress(goalID string, current decimal.Decimal) (model.Goal, error) {
	if current.IsNegative() {
		return model.Goal{}, ValidationError{Field: "current", Message: "current amount cannot be negative"}
	}
	for i := range s.data.Goals {
		if s.data.Goals[i].ID == goalID {
			s.data.Goals[i].Current = current
			if err := s.flush(); err != nil {
				return model.Goal{}, err
			}
			return s.data.Goals[i], nil
		}
	}
	return model.Goal{}, NotFoundError{Kind: "goal", ID: goalID}
}

// DeleteGoal removes a goal by ID.
func (s *Store) DeleteGoal(goalID string) error {
	for i, g := range s.data.Goals {
		if g.ID == goalID {
			s.data.Goals = append(s.data.Goals[:i], s.data.Goals[i+1:]...)
			return s.flush()
		}
	}
	return NotFoundError{Kind: "goal", ID: goalID}
}

// Goals returns all goals in insertion order.
func (s *Store) Goals() []model.Goal {
	return append([]model.Goal(nil), s.data.Goals...)
}

// TotalSaved sums the current amounts across all goals.
func (s *Store) TotalSaved() decimal.Decimal {
	total := decimal.Zero
	for _, g := range s.data.Goals {
		total = total.Add(g.Current)
	}
	return total
}

// BillParams holds the user-supplied fields for a new bill.
type BillParams struct {
	Name      string
	Amount    decimal.Decimal
	Category  string
	DueDate   model.Date
	Recurring model.Frequency
}

// AddBill validates and appends an unpaid bill, stamping CreatedAt.
func (s *Store) AddBill(p BillParams, today model.Date) (model.Bill, error) {
	if p.Name == "" {
		return model.Bill{}, ValidationError{Field: "name", Message: "enter a bill name"}
	}
	if !p.Amount.IsPositive() {
		return model.Bill{}, ValidationError{Field: "amount", Message: "enter a valid amount"}
	}
	if p.Category == "" {
		return model.Bill{}, ValidationError{Field: "category", Message: "select a category"}
	}
	if !categories.Valid(p.Category) {
		return model.Bill{}, ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", p.Category)}
	}
	if p.DueDate.IsZero() {
		return model.Bill{}, ValidationError{Field: "dueDate", Message: "select a due date"}
	}
	if p.Recurring != "" && !p.Recurring.Valid() {
		return model.Bill{}, ValidationError{Field: "recurring", Message: "select a valid frequency"}
	}

	bill := model.Bill{
		ID:        id.New(),
		Name:      p.Name,
		Amount:    p.Amount,
		Category:  p.Category,
		DueDate:   p.DueDate,
		Recurring: p.Recurring,
		CreatedAt: today,
	}
	s.data.Bills = append(s.data.Bills, bill)
	if err := s.flush(); err != nil {
		return model.Bill{}, err
	}
	return bill, nil
}

// MarkBillPaid converts a bill into an expense transaction dated today and
// removes the bill, as one committed mutation: the appended transaction and
// the bill removal flush together, so no intermediate state is observable.
func (s *Store) MarkBillPaid(billID string, today model.Date) (model.Transaction, error) {
	idx := -1
	for i, b := range s.data.Bills {
		if b.ID == billID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Transaction{}, NotFoundError{Kind: "bill", ID: billID}
	}

	bill := s.data.Bills[idx]
	txn := model.Transaction{
		ID:            id.New(),
		Type:          model.TypeExpense,
		Amount:        bill.Amount,
		Category:      bill.Category,
		Date:          today,
		Description:   "Payment for " + bill.Name,
		PaymentMethod: "bank",
	}

	s.data.Transactions = append(s.data.Transactions, txn)
	s.data.Bills = append(s.data.Bills[:idx], s.data.Bills[idx+1:]...)
	if err := s.flush(); err != nil {
		return model.Transaction{}, err
	}
	slog.Info("bill paid", "bill", bill.Name, "amount", bill.Amount.StringFixed(2))
	return txn, nil
}

// DeleteBill removes a bill by ID.
func (s *Store) DeleteBill(billID string) error {
	for i, b := range s.data.Bills {
		if b.ID == billID {
			s.data.Bills = append(s.data.Bills[:i], s.data.Bills[i+1:]...)
			return s.flush()
		}
	}
	return NotFoundError{Kind: "bill", ID: billID}
}

// Bills returns all bills in insertion order.
func (s *Store) Bills() []model.Bill {
	return append([]model.Bill(nil), s.data.Bills...)
}

// UpdateSettings replaces the settings.
func (s *Store) UpdateSettings(settings model.Settings) error {
	if settings.Currency == "" {
		return ValidationError{Field: "currency", Message: "select a currency"}
	}
	s.data.Settings = settings
	return s.flush()
}

// CurrentUser returns the authenticated-user descriptor, or nil when no
// one is logged in.
func (s *Store) CurrentUser() *model.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login records the user descriptor under its own key.
func (s *Store) Login(email, name string, now time.Time) (model.User, error) {
	if email == "" {
		return model.User{}, ValidationError{Field: "email", Message: "enter an email"}
	}
	user := model.User{Email: email, Name: name, LoginTime: now}
	blob, err := marshalUser(user)
	if err != nil {
		return model.User{}, err
	}
	if err := s.kv.Put(keyUser, blob); err != nil {
		return model.User{}, err
	}
	s.user = &user
	return user, nil
}

// Logout clears the user descriptor.
func (s *Store) Logout() error {
	if err := s.kv.Delete(keyUser); err != nil {
		return err
	}
	s.user = nil
	return nil
}

// UpdateProfile rewrites the stored user's name and email.
func (s *Store) UpdateProfile(name, email string) (model.User, error) {
	if s.user == nil {
		return model.User{}, NotFoundError{Kind: "user", ID: "current"}
	}
	user := *s.user
	user.Name = name
	user.Email = email
	blob, err := marshalUser(user)
	if err != nil {
		return model.User{}, err
	}
	if err := s.kv.Put(keyUser, blob); err != nil {
		return model.User{}, err
	}
	s.user = &user
	return user, nil
}

// ClearAll resets every collection and settings to defaults. The user
// descriptor is kept.
func (s *Store) ClearAll() error {
	s.data = defaultData()
	return s.flush()
}

// Replace swaps in imported collections and overlays settings, as one
// committed mutation. A nil user leaves the current descriptor untouched.
func (s *Store) Replace(data Data, patch *model.SettingsPatch, user *model.User) error {
	next := data.Clone()
	next.Settings = s.data.Settings
	if patch != nil {
		patch.Apply(&next.Settings)
	}

	s.data = next
	if err := s.flush(); err != nil {
		return err
	}

	if user != nil {
		blob, err := marshalUser(*user)
		if err != nil {
			return err
		}
		if err := s.kv.Put(keyUser, blob); err != nil {
			return err
		}
		u := *user
		s.user = &u
	}
	return nil
}
