package store

import (
	"encoding/json"
	"fmt"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Data is the full record-store snapshot: the five collections plus
// settings. Its JSON form is the persisted blob layout.
type Data struct {
	Transactions []model.Transaction `json:"transactions"`
	Budgets      []model.Budget      `json:"budgets"`
	Goals        []model.Goal        `json:"goals"`
	Bills        []model.Bill        `json:"bills"`
	Settings     model.Settings      `json:"settings"`
}

// defaultData returns an empty snapshot with default settings.
func defaultData() Data {
	return Data{Settings: model.DefaultSettings()}
}

// marshalData serializes a snapshot to the persisted blob form.
func marshalData(d Data) ([]byte, error) {
	blob, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}
	return blob, nil
}

// unmarshalData deserializes a persisted blob. A nil blob yields the
// default snapshot. Settings fields absent from the blob keep defaults.
func unmarshalData(blob []byte) (Data, error) {
	d := defaultData()
	if blob == nil {
		return d, nil
	}
	if err := json.Unmarshal(blob, &d); err != nil {
		return Data{}, fmt.Errorf("parsing data blob: %w", err)
	}
	return d, nil
}

// marshalUser serializes the authenticated-user descriptor.
func marshalUser(u model.User) ([]byte, error) {
	blob, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("marshaling user: %w", err)
	}
	return blob, nil
}

// unmarshalUser deserializes a user descriptor blob; nil yields nil.
func unmarshalUser(blob []byte) (*model.User, error) {
	if blob == nil {
		return nil, nil
	}
	var u model.User
	if err := json.Unmarshal(blob, &u); err != nil {
		return nil, fmt.Errorf("parsing user blob: %w", err)
	}
	return &u, nil
}

// Clone returns a deep-enough copy of the snapshot: collection slices are
// copied so callers can range freely while the store mutates.
func (d Data) Clone() Data {
	out := d
	out.Transactions = append([]model.Transaction(nil), d.Transactions...)
	out.Budgets = append([]model.Budget(nil), d.Budgets...)
	out.Goals = append([]model.Goal(nil), d.Goals...)
	out.Bills = append([]model.Bill(nil), d.Bills...)
	return out
}
