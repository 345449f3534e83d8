package contactinfo

import (
	"time"

	"github.com/google/uuid"
)

// ContactInformation is a value object of the employee aggregate. Every
// business field is optional and may be stored as an explicit null. Gender
// here is a free-form string, not the constrained enum the Employee record
// uses; upstream feeds legacy values through this field.
type ContactInformation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName    *string
	DateOfBirth *time.Time
	Gender      *string
	Occupation  *string
	NationalID  *string
	Mobile      *string
	Email       *string
	CreatedAt   *time.Time
}
