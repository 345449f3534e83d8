package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the aggregate record. Relations are carried as identifiers
// only; this layer never loads the referenced value objects.
type Employee struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName           string
	Image              string
	OfficeEmail        string `gorm:"uniqueIndex"`
	PersonalEmail      string
	OfficePhone        string
	PersonalPhone      string
	EmploymentType     string
	Nationality        string
	Disability         bool
	Gender             string
	Religion           string
	JoiningDesignation string
	CurrentDesignation string
	DateOfBirth        *time.Time
	ConfirmationDate   *time.Time

	BankName      string
	BranchName    string
	AccountNumber string
	WalletType    string
	WalletNumber  string

	AdditionalInformationID uuid.UUID  `gorm:"type:uuid"`
	PresentAddressID        uuid.UUID  `gorm:"type:uuid"`
	PermanentAddressID      uuid.UUID  `gorm:"type:uuid"`
	SpouseInformationID     *uuid.UUID `gorm:"type:uuid"`
	EmergencyContactID      uuid.UUID  `gorm:"type:uuid"`

	CreatedAt *time.Time
	UpdatedAt *time.Time
}
