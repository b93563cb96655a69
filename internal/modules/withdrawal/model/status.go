package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a withdrawal record.
type Status uint8

const (
	StatusPending Status = iota + 1
	StatusCompleted
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	case StatusRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRejected:
		return true
	default:
		return false
	}
}

// Final reports whether no further transitions are allowed.
func (s Status) Final() bool {
	switch s {
	case StatusCompleted, StatusRejected:
		return true
	case StatusPending:
		return false
	default:
		return false
	}
}

// ParseStatus accepts the display names case-insensitively.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return 0, fmt.Errorf("unknown status %q", v)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
