package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// IncomeSource identifies where an income ledger entry came from
type IncomeSource string

const (
	IncomeSourceBooking    IncomeSource = "BOOKING"
	IncomeSourceWalkIn     IncomeSource = "WALK_IN"
	IncomeSourceMembership IncomeSource = "MEMBERSHIP"
)

// IncomeSources lists every income source in reporting order.
func IncomeSources() []IncomeSource {
	return []IncomeSource{IncomeSourceBooking, IncomeSourceWalkIn, IncomeSourceMembership}
}

func (s IncomeSource) String() string {
	return string(s)
}

func (s IncomeSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *IncomeSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = IncomeSource(str)
	return nil
}

func (s IncomeSource) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *IncomeSource) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = IncomeSource(v)
	case []byte:
		*s = IncomeSource(string(v))
	}
	return nil
}
