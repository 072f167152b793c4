package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Layouts accepted for request timestamps. The first two carry no zone and
// are read in the server's local time, which is what an HTML datetime-local
// input sends.
var localTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// LocalTime is a request timestamp with or without a zone offset.
type LocalTime struct {
	time.Time
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range localTimeLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q, expected YYYY-MM-DDTHH:MM[:SS] or RFC 3339", s)
}

// timeOrZero returns the zero time for a missing timestamp so the creation
// defaults apply.
func timeOrZero(t *LocalTime) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}

// RecordID is a record id sent either as a JSON number or as a numeric
// string, as form selects do.
type RecordID uint

func (id *RecordID) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = RecordID(v)
	return nil
}
