package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidFormatVersion is returned when a formatVersion value is neither
// a JSON string nor a JSON integer.
var ErrInvalidFormatVersion = errors.New("formatVersion must be a string or an integer")

// FormatVersion is the version of the configuration document format itself.
// On the wire it is either a JSON string or a JSON integer; both forms are
// valid and downstream consumers may branch on which one was used, so the
// original representation is preserved exactly through parse/serialize
// round-trips instead of being normalized to one type.
//
// The zero value means "absent on the wire".
type FormatVersion struct {
	str     string
	num     int64
	intForm bool
	set     bool
}

// StringFormatVersion returns a FormatVersion carried as a JSON string.
func StringFormatVersion(s string) FormatVersion {
	return FormatVersion{str: s, set: true}
}

// IntFormatVersion returns a FormatVersion carried as a JSON integer.
func IntFormatVersion(n int64) FormatVersion {
	return FormatVersion{num: n, intForm: true, set: true}
}

// IsSet reports whether the field was present on the wire.
func (v FormatVersion) IsSet() bool { return v.set }

// IsInt reports whether the wire representation was a JSON integer.
func (v FormatVersion) IsInt() bool { return v.intForm }

// Int returns the integer value and whether the integer form was used.
func (v FormatVersion) Int() (int64, bool) { return v.num, v.intForm }

// String returns the value rendered as a string regardless of wire form.
func (v FormatVersion) String() string {
	if v.intForm {
		return strconv.FormatInt(v.num, 10)
	}
	return v.str
}

// MarshalJSON emits the value in its original wire representation.
func (v FormatVersion) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	if v.intForm {
		return []byte(strconv.FormatInt(v.num, 10)), nil
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts either a JSON string or a JSON integer and records
// which form was received. Any other shape (float, bool, object, array)
// fails with ErrInvalidFormatVersion.
func (v *FormatVersion) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = FormatVersion{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidFormatVersion
		}
		*v = StringFormatVersion(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return ErrInvalidFormatVersion
	}
	*v = IntFormatVersion(n)
	return nil
}
