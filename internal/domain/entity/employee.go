package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a staff member who performs services and clocks attendance
type Employee struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Position  *string        `gorm:"size:100" json:"position,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// Attendance is one clock-in/clock-out shift. CheckOutAt is nil while the shift is open.
type Attendance struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	CheckInAt  time.Time  `gorm:"not null;index" json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new attendance row
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Attendance model
func (Attendance) TableName() string {
	return "attendances"
}

// Rating is a customer's score for a completed booking
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new rating
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}
