package api

import (
	"fmt"
	"strings"
)

// Flag is a boolean that also accepts 0 and 1, the form older clients send
// for valid_account and is_phd.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch strings.TrimSpace(string(b)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("api: invalid flag value %s", b)
	}
	return nil
}

func (f *Flag) Bool() bool {
	return f != nil && bool(*f)
}
