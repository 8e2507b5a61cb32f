package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/resourcekit/models"
)

// encodeRecordData encodes a record payload and makes sure it is a JSON
// object without an "id" field of its own.
func encodeRecordData[T any](data T) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, models.ErrRecordNotObject)
	}
	if _, ok := fields[models.RecordIDField]; ok {
		delete(fields, models.RecordIDField)
		return json.Marshal(fields)
	}

	return raw, nil
}

func decodeRecordData[T any](raw []byte) (T, error) {
	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	return data, nil
}

// validateRecordData runs the payload's own rules when it has any.
func validateRecordData[T any](data *T) error {
	if v, ok := any(data).(models.Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, &models.ValidationError{Err: err})
		}
	}
	return nil
}

// mergePatch overlays the top-level fields of patch onto the stored
// payload. Nested objects are replaced, not merged. An "id" field in patch
// is ignored. The merged document is decoded into T and validated.
func mergePatch[T any](stored []byte, patch json.RawMessage) (T, []byte, error) {
	var zero T

	var current map[string]json.RawMessage
	if err := json.Unmarshal(stored, &current); err != nil {
		return zero, nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	if current == nil {
		current = make(map[string]json.RawMessage)
	}

	var changes map[string]json.RawMessage
	if err := json.Unmarshal(patch, &changes); err != nil || changes == nil {
		return zero, nil, fmt.Errorf("%w: %w: %w", ErrInvalidRecord, ErrInvalidPatch, models.ErrRecordNotObject)
	}

	for k, v := range changes {
		if k == models.RecordIDField {
			continue
		}
		current[k] = v
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return zero, nil, fmt.Errorf("%w: %w: %w", ErrInvalidRecord, ErrInvalidPatch, err)
	}

	var data T
	if err = json.Unmarshal(merged, &data); err != nil {
		return zero, nil, fmt.Errorf("%w: %w: %w", ErrInvalidRecord, ErrInvalidPatch, err)
	}
	if err = validateRecordData(&data); err != nil {
		return zero, nil, err
	}

	// re-encode so the stored document only carries fields T knows about
	normalized, err := encodeRecordData(data)
	if err != nil {
		return zero, nil, err
	}

	return data, normalized, nil
}
