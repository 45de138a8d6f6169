package models

import "encoding/json"

// NullableBool is a bool field of a partial update that tells apart:
// - field absent in JSON: Set=false
// - field present with null: Set=true, Valid=false
// - field present with value: Set=true, Valid=true
type NullableBool struct {
	Value bool
	Valid bool
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (nb *NullableBool) UnmarshalJSON(data []byte) error {
	nb.Set = true
	if string(data) == "null" {
		nb.Valid = false
		nb.Value = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	nb.Value = b
	nb.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (nb NullableBool) MarshalJSON() ([]byte, error) {
	if !nb.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nb.Value)
}

// OrDefault returns the value, or def when it was null
func (nb NullableBool) OrDefault(def bool) bool {
	if !nb.Valid {
		return def
	}
	return nb.Value
}

// NullableInt is the int counterpart of NullableBool
type NullableInt struct {
	Value int
	Valid bool
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (ni *NullableInt) UnmarshalJSON(data []byte) error {
	ni.Set = true
	if string(data) == "null" {
		ni.Valid = false
		ni.Value = 0
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	ni.Value = i
	ni.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (ni NullableInt) MarshalJSON() ([]byte, error) {
	if !ni.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ni.Value)
}

// OrDefault returns the value, or def when it was null
func (ni NullableInt) OrDefault(def int) int {
	if !ni.Valid {
		return def
	}
	return ni.Value
}
