package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LedgerType tells whether a ledger entry is money in or money out
type LedgerType string

const (
	LedgerTypeIncome  LedgerType = "INCOME"
	LedgerTypeExpense LedgerType = "EXPENSE"
)

func (t LedgerType) String() string {
	return string(t)
}

func (t LedgerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *LedgerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = LedgerType(str)
	return nil
}

func (t LedgerType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *LedgerType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = LedgerType(v)
	case []byte:
		*t = LedgerType(string(v))
	}
	return nil
}
