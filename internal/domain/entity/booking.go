package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking represents a customer's appointment for a vehicle service
type Booking struct {
	ID                    uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID            uuid.UUID           `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID             uuid.UUID           `gorm:"type:uuid;not null;index" json:"service_id"`
	PerformedByEmployeeID *uuid.UUID          `gorm:"type:uuid;index" json:"performed_by_employee_id,omitempty"`
	AppointmentAt         time.Time           `gorm:"not null;index" json:"appointment_at"`
	Status                enum.BookingStatus  `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	CompletedAt           *time.Time          `gorm:"index" json:"completed_at,omitempty"`
	FinalPrice            decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"final_price"`
	VehiclePlate          *string             `gorm:"size:30" json:"vehicle_plate,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
	DeletedAt             gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Customer    Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	Service     Service   `gorm:"foreignKey:ServiceID" json:"service"`
	PerformedBy *Employee `gorm:"foreignKey:PerformedByEmployeeID" json:"performed_by,omitempty"`
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// Service is an item of the service catalogue (wash, oil change, detailing...)
type Service struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	NameEn    string          `gorm:"size:255;not null" json:"name_en"`
	NameAr    string          `gorm:"size:255;not null" json:"name_ar"`
	BasePrice decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"base_price"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
