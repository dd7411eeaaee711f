package postgres

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// encodeJSON marshals v into a jsonb column value. Nil values become SQL NULL.
func encodeJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode json column")
	}

	return datatypes.JSON(raw), nil
}

// decodeJSON unmarshals a jsonb column into target, leaving it untouched for NULL.
func decodeJSON(raw datatypes.JSON, target any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrap(err, "failed to decode json column")
	}

	return nil
}
