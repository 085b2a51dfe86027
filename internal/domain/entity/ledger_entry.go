package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerEntry is one committed income or expense transaction in the accounting ledger
type LedgerEntry struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	Type            enum.LedgerType       `gorm:"size:20;not null;index" json:"type"`
	Amount          decimal.Decimal       `gorm:"type:numeric(14,2);not null" json:"amount"`
	OccurredAt      time.Time             `gorm:"not null;index" json:"occurred_at"`
	IncomeSource    *enum.IncomeSource    `gorm:"size:20" json:"income_source,omitempty"`
	ExpenseCategory *enum.ExpenseCategory `gorm:"size:20" json:"expense_category,omitempty"`
	BookingID       *uuid.UUID            `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	Note            *string               `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	DeletedAt       gorm.DeletedAt        `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ledger entry
func (l *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
