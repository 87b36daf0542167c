package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type UUID uuid.UUID

var EmptyUUID = UUID{}

func NewUUID() UUID {
	return UUID(uuid.New())
}

func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID(id), nil
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) IsEmpty() bool {
	return u == EmptyUUID
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *UUID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*u = UUID(id)
	return nil
}

// Value implement sql.Scanner
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan assigns a value from a database driver.
func (u *UUID) Scan(value interface{}) error {
	switch t := value.(type) {
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return err
		}
		*u = UUID(id)
	case []byte:
		id, err := uuid.ParseBytes(t)
		if err != nil {
			return err
		}
		*u = UUID(id)
	default:
		return fmt.Errorf("could not scan type %T into UUID", t)
	}
	return nil
}
