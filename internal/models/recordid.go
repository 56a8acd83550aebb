package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// RecordID identifies an announcement or staff record. Legacy collections
// mix bare integers and strings, so the JSON codec accepts both and
// re-emits the numeric form for all-digit values to keep data files stable.
type RecordID string

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = RecordID(n.String())
		return nil
	}
	return fmt.Errorf("invalid record id: %s", data)
}

// MarshalJSON writes numeric ids as JSON numbers and everything else as
// strings. Only canonical integers qualify: values like "007" or "+7" pass
// Atoi but are not valid JSON numbers, so they stay strings.
func (id RecordID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok && strconv.Itoa(n) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Int reports the numeric value when the id is an integer.
func (id RecordID) Int() (int, bool) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (id RecordID) String() string {
	return string(id)
}

// Scan implements sql.Scanner so relational ids load transparently.
func (id *RecordID) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*id = RecordID(strconv.FormatInt(v, 10))
	case string:
		*id = RecordID(v)
	case []byte:
		*id = RecordID(v)
	case nil:
		*id = ""
	default:
		return fmt.Errorf("unsupported record id type %T", src)
	}
	return nil
}

// Value implements driver.Valuer, storing numeric ids as integers.
func (id RecordID) Value() (driver.Value, error) {
	if n, ok := id.Int(); ok {
		return int64(n), nil
	}
	return string(id), nil
}

// NextRecordID assigns the next free numeric id: max of the existing
// numeric ids plus one, or 1 for an empty collection. Non-numeric ids are
// excluded from the max computation.
func NextRecordID(existing []RecordID) RecordID {
	max := 0
	for _, id := range existing {
		if n, ok := id.Int(); ok && n > max {
			max = n
		}
	}
	return RecordID(strconv.Itoa(max + 1))
}
