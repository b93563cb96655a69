package model

const (
	EventCreated       = "withdrawal.created"
	EventStatusChanged = "withdrawal.status_changed"
)

// WithdrawalEvent is what the service emits on the event stream after a
// record is created or its status changes.
type WithdrawalEvent struct {
	Type   string
	Record WithdrawalRecord
	AtMs   int64
}
