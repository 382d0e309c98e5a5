package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Status int

const (
	Pending Status = iota
	Done
)

func (s Status) String() string {

	var str string
	switch s {
	case Pending:
		str = "pending"
	case Done:
		str = "done"
	default:
		str = "unknown"
	}

	return str
}

func ParseStatus(name string) (Status, error) {

	switch strings.ToLower(name) {
	case "pending":
		return Pending, nil
	case "done":
		return Done, nil
	}

	return 0, fmt.Errorf("unknown status %q", name)
}

// MarshalJSON encodes the status as its lowercase name. An out-of-range
// value fails to encode rather than producing an empty name.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case Pending, Done:
		return json.Marshal(s.String())
	}

	return nil, fmt.Errorf("unknown status %d", int(s))
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	status, err := ParseStatus(name)
	if err != nil {
		return err
	}

	*s = status
	return nil
}
