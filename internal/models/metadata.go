package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is a string-keyed JSON document attached to moderation log rows.
// It is stored as a jsonb column and round-trips through encoding/json, so
// values are limited to what JSON can carry.
type Metadata map[string]any

// Value implements driver.Valuer so GORM can write the map as jsonb.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner so GORM can read jsonb back into the map.
func (m *Metadata) Scan(value any) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
}

// GormDataType tells GORM which column type to migrate to.
func (Metadata) GormDataType() string { return "jsonb" }
