package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RecordIDField is the JSON field that carries the server-assigned record
// identifier in every encoded [Record].
const RecordIDField = "id"

// ErrRecordNotObject is returned when a record payload does not encode to a
// JSON object and therefore cannot carry an identifier field.
var ErrRecordNotObject = errors.New("record data must encode as a JSON object")

// Record is a persisted resource: an opaque payload of type T plus the
// identifier assigned by the backing collection.
//
// On the wire the payload's fields and the identifier are flattened into a
// single JSON object:
//
//	{"id":"0190d5f6-...","name":"lamp","price":12.5}
type Record[T any] struct {
	ID   string
	Data T
}

// MarshalJSON encodes the record as the payload object extended with the
// "id" field.
func (r Record[T]) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(r.Data)
	if err != nil {
		return nil, fmt.Errorf("error encoding record data: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return nil, ErrRecordNotObject
	}

	id, err := json.Marshal(r.ID)
	if err != nil {
		return nil, fmt.Errorf("error encoding record id: %w", err)
	}
	fields[RecordIDField] = id

	return json.Marshal(fields)
}

// UnmarshalJSON decodes a flattened record produced by [Record.MarshalJSON].
func (r *Record[T]) UnmarshalJSON(b []byte) error {
	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}

	var data T
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	r.ID = envelope.ID
	r.Data = data
	return nil
}

// Validatable is implemented by resource payloads that carry their own
// field rules. Collections and controllers run Validate before anything is
// persisted, both on create and after an update has been merged.
type Validatable interface {
	Validate() error
}

// ValidationError carries a rule violation reported by [Validatable]. Its
// text is meant for clients, unlike the other causes of a rejected record.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Defaulter is implemented by resource payloads that fill unset fields with
// default values on creation.
type Defaulter interface {
	ApplyDefaults()
}
