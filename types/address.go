package types

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

const AddressLength = 20

// Address is a 20-byte Haven1 account address, rendered as 0x-prefixed hex.
type Address [AddressLength]byte

var ZeroAddress = Address{}

func ParseAddress(s string) (Address, error) {
	raw := s
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw = raw[2:]
	}
	if len(raw) != AddressLength*2 {
		return Address{}, fmt.Errorf("invalid address length %d: %s", len(s), s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %s: %v", s, err)
	}

	var a Address
	copy(a[:], b)
	return a, nil
}

// MustParseAddress converts a hex string into an address and panics if the
// conversion is not successful.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Value implement sql.Scanner
func (a Address) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan assigns a value from a database driver.
func (a *Address) Scan(value interface{}) error {
	switch t := value.(type) {
	case string:
		addr, err := ParseAddress(t)
		if err != nil {
			return err
		}
		*a = addr
	case []byte:
		addr, err := ParseAddress(string(t))
		if err != nil {
			return err
		}
		*a = addr
	default:
		return fmt.Errorf("could not scan type %T into Address", t)
	}
	return nil
}
