package employee

import (
	"time"

	"github.com/google/uuid"
)

// CreateEmployeeInput is the typed result of a valid create (or update)
// payload. Identifier and audit timestamps are server-assigned and never
// appear here.
type CreateEmployeeInput struct {
	FullName           string
	Image              string
	OfficeEmail        string
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

	AdditionalInformationID uuid.UUID
	PresentAddressID        uuid.UUID
	PermanentAddressID      uuid.UUID
	SpouseInformationID     *uuid.UUID
	EmergencyContactID      uuid.UUID
}

type EmployeeResponse struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	Image              string `json:"image"`
	OfficeEmail        string `json:"officeEmail"`
	PersonalEmail      string `json:"personalEmail"`
	OfficePhone        string `json:"officePhone"`
	PersonalPhone      string `json:"personalPhone"`
	EmploymentType     string `json:"employmentType"`
	Nationality        string `json:"nationality"`
	Disability         bool   `json:"disability"`
	Gender             string `json:"gender"`
	Religion           string `json:"religion"`
	JoiningDesignation string `json:"joiningDesignation"`
	CurrentDesignation string `json:"currentDesignation"`
	DateOfBirth        string `json:"dateOfBirth,omitempty"`
	ConfirmationDate   string `json:"confirmationDate,omitempty"`

	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	AccountNumber string `json:"accountNumber"`
	WalletType    string `json:"walletType"`
	WalletNumber  string `json:"walletNumber"`

	AdditionalInformationID string  `json:"additionalInformationId"`
	PresentAddressID        string  `json:"presentAddressId"`
	PermanentAddressID      string  `json:"permanentAddressId"`
	SpouseInformationID     *string `json:"spouseInformationId,omitempty"`
	EmergencyContactID      string  `json:"emergencyContactId"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// EmployeeOption is the lightweight shape dropdowns consume.
type EmployeeOption struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	CurrentDesignation string `json:"currentDesignation"`
}
