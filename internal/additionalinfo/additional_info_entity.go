package additionalinfo

import (
	"time"

	"github.com/google/uuid"
)

// AdditionalInformation carries the extended biographical record of an
// employee. All business fields are optional and nullable; maritalStatus is
// the one constrained enum on this shape.
type AdditionalInformation struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FatherName     *string
	MotherName     *string
	NationalID     *string
	PlaceOfBirth   *string
	MaritalStatus  *string
	ETin           *string
	Program        *string
	Unit           *string
	PrlDate        *time.Time
	RegularityDate *time.Time
	CreatedAt      *time.Time
}
