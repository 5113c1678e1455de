package model

import "time"

// Settings is process-wide configuration, persisted inside the data blob.
type Settings struct {
	Currency           string `json:"currency"`
	EmailNotifications bool   `json:"emailNotifications"`
	BudgetAlerts       bool   `json:"budgetAlerts"`
	BillReminders      bool   `json:"billReminders"`
	Theme              string `json:"theme"`
}

// DefaultSettings returns the out-of-the-box settings.
func DefaultSettings() Settings {
	return Settings{
		Currency:           "USD",
		EmailNotifications: true,
		BudgetAlerts:       true,
		BillReminders:      true,
		Theme:              "light",
	}
}

// SettingsPatch is a partial settings update, used by import: fields absent
// from the imported document leave the current value untouched.
type SettingsPatch struct {
	Currency           *string `json:"currency"`
	EmailNotifications *bool   `json:"emailNotifications"`
	BudgetAlerts       *bool   `json:"budgetAlerts"`
	BillReminders      *bool   `json:"billReminders"`
	Theme              *string `json:"theme"`
}

// Apply overlays the patch's present fields onto s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.EmailNotifications != nil {
		s.EmailNotifications = *p.EmailNotifications
	}
	if p.BudgetAlerts != nil {
		s.BudgetAlerts = *p.BudgetAlerts
	}
	if p.BillReminders != nil {
		s.BillReminders = *p.BillReminders
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
}

// User is the authenticated-user descriptor, persisted under its own key.
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}
