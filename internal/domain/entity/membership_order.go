package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MembershipOrder is one purchase of a membership plan by a customer
type MembershipOrder struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	PlanName   string          `gorm:"size:255;not null" json:"plan_name"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"price"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    *time.Time      `gorm:"index" json:"end_date,omitempty"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new membership order
func (m *MembershipOrder) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MembershipOrder model
func (MembershipOrder) TableName() string {
	return "membership_orders"
}
