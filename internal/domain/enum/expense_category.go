package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory classifies an expense ledger entry
type ExpenseCategory string

const (
	ExpenseCategorySupplier ExpenseCategory = "SUPPLIER"
	ExpenseCategoryGeneral  ExpenseCategory = "GENERAL"
	ExpenseCategorySalary   ExpenseCategory = "SALARY"
)

// ExpenseCategories lists every expense category in reporting order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{ExpenseCategorySupplier, ExpenseCategoryGeneral, ExpenseCategorySalary}
}

func (c ExpenseCategory) String() string {
	return string(c)
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ExpenseCategory(str)
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryGeneral
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = ExpenseCategory(v)
	case []byte:
		*c = ExpenseCategory(string(v))
	}
	return nil
}
