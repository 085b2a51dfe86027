package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BookingStatus represents where a service booking is in its lifecycle
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusNoShow     BookingStatus = "NO_SHOW"
	BookingStatusRejected   BookingStatus = "REJECTED"
)

// BookingStatuses lists every booking status in lifecycle order.
func BookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
		BookingStatusNoShow,
		BookingStatusRejected,
	}
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = BookingStatus(str)
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BookingStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = BookingStatus(v)
	case []byte:
		*s = BookingStatus(string(v))
	}
	return nil
}
