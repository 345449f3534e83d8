package employee

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"
)

// Field-descriptor tables for the employee aggregate. Relation fields are
// checked as identifiers only and never dereferenced, which keeps the
// schema non-recursive. spouseInformationId is the single relation that is
// both optional and nullable.
var (
	serverAssignedFields = []string{"id", "createdAt", "updatedAt"}

	// Everything a create payload must still supply once the schema is
	// relaxed: identity, contact, employment and banking fields plus the
	// four mandatory relations.
	alwaysRequiredFields = []string{
		"fullName", "image", "officeEmail", "personalEmail",
		"officePhone", "personalPhone", "employmentType", "nationality",
		"disability", "gender", "religion",
		"joiningDesignation", "currentDesignation",
		"bankName", "branchName", "accountNumber", "walletType", "walletNumber",
		"additionalInformationId", "presentAddressId",
		"permanentAddressId", "emergencyContactId",
	}

	storedSchema = validation.Schema{
		{Name: "id", Validate: validation.UUID, Required: true},
		{Name: "fullName", Validate: validation.String, Required: true},
		{Name: "image", Validate: validation.String, Required: true},
		{Name: "officeEmail", Validate: validation.Email, Required: true},
		{Name: "personalEmail", Validate: validation.Email, Required: true},
		{Name: "officePhone", Validate: validation.String, Required: true},
		{Name: "personalPhone", Validate: validation.String, Required: true},
		{Name: "employmentType", Validate: validation.String, Required: true},
		{Name: "nationality", Validate: validation.String, Required: true},
		{Name: "disability", Validate: validation.Bool, Required: true},
		{Name: "gender", Validate: validation.Enum(validation.GenderValues...), Required: true},
		{Name: "religion", Validate: validation.String, Required: true},
		{Name: "joiningDesignation", Validate: validation.String, Required: true},
		{Name: "currentDesignation", Validate: validation.String, Required: true},
		{Name: "dateOfBirth", Validate: validation.Date, Nullable: true},
		{Name: "confirmationDate", Validate: validation.Date, Nullable: true},
		{Name: "bankName", Validate: validation.String, Required: true},
		{Name: "branchName", Validate: validation.String, Required: true},
		{Name: "accountNumber", Validate: validation.String, Required: true},
		{Name: "walletType", Validate: validation.String, Required: true},
		{Name: "walletNumber", Validate: validation.String, Required: true},
		{Name: "additionalInformationId", Validate: validation.UUID, Required: true},
		{Name: "presentAddressId", Validate: validation.UUID, Required: true},
		{Name: "permanentAddressId", Validate: validation.UUID, Required: true},
		{Name: "spouseInformationId", Validate: validation.UUID, Nullable: true},
		{Name: "emergencyContactId", Validate: validation.UUID, Required: true},
		{Name: "createdAt", Validate: validation.Date, Nullable: true},
		{Name: "updatedAt", Validate: validation.Date, Nullable: true},
	}

	createSchema = validation.CreateSchema(storedSchema, serverAssignedFields, alwaysRequiredFields)
)

func ValidateStored(raw map[string]any) (Employee, error) {
	rec, err := storedSchema.Validate(raw)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		ID:                 rec.UUID("id"),
		FullName:           rec.String("fullName"),
		Image:              rec.String("image"),
		OfficeEmail:        rec.String("officeEmail"),
		PersonalEmail:      rec.String("personalEmail"),
		OfficePhone:        rec.String("officePhone"),
		PersonalPhone:      rec.String("personalPhone"),
		EmploymentType:     rec.String("employmentType"),
		Nationality:        rec.String("nationality"),
		Disability:         rec.Bool("disability"),
		Gender:             rec.String("gender"),
		Religion:           rec.String("religion"),
		JoiningDesignation: rec.String("joiningDesignation"),
		CurrentDesignation: rec.String("currentDesignation"),
		DateOfBirth:        rec.Time("dateOfBirth"),
		ConfirmationDate:   rec.Time("confirmationDate"),

		BankName:      rec.String("bankName"),
		BranchName:    rec.String("branchName"),
		AccountNumber: rec.String("accountNumber"),
		WalletType:    rec.String("walletType"),
		WalletNumber:  rec.String("walletNumber"),

		AdditionalInformationID: rec.UUID("additionalInformationId"),
		PresentAddressID:        rec.UUID("presentAddressId"),
		PermanentAddressID:      rec.UUID("permanentAddressId"),
		SpouseInformationID:     rec.UUIDPtr("spouseInformationId"),
		EmergencyContactID:      rec.UUID("emergencyContactId"),

		CreatedAt: rec.Time("createdAt"),
		UpdatedAt: rec.Time("updatedAt"),
	}, nil
}

func ValidateCreateInput(raw map[string]any) (CreateEmployeeInput, error) {
	rec, err := createSchema.Validate(raw)
	if err != nil {
		return CreateEmployeeInput{}, err
	}
	return CreateEmployeeInput{
		FullName:           rec.String("fullName"),
		Image:              rec.String("image"),
		OfficeEmail:        rec.String("officeEmail"),
		PersonalEmail:      rec.String("personalEmail"),
		OfficePhone:        rec.String("officePhone"),
		PersonalPhone:      rec.String("personalPhone"),
		EmploymentType:     rec.String("employmentType"),
		Nationality:        rec.String("nationality"),
		Disability:         rec.Bool("disability"),
		Gender:             rec.String("gender"),
		Religion:           rec.String("religion"),
		JoiningDesignation: rec.String("joiningDesignation"),
		CurrentDesignation: rec.String("currentDesignation"),
		DateOfBirth:        rec.Time("dateOfBirth"),
		ConfirmationDate:   rec.Time("confirmationDate"),

		BankName:      rec.String("bankName"),
		BranchName:    rec.String("branchName"),
		AccountNumber: rec.String("accountNumber"),
		WalletType:    rec.String("walletType"),
		WalletNumber:  rec.String("walletNumber"),

		AdditionalInformationID: rec.UUID("additionalInformationId"),
		PresentAddressID:        rec.UUID("presentAddressId"),
		PermanentAddressID:      rec.UUID("permanentAddressId"),
		SpouseInformationID:     rec.UUIDPtr("spouseInformationId"),
		EmergencyContactID:      rec.UUID("emergencyContactId"),
	}, nil
}

func rowToRaw(row map[string]any) map[string]any {
	columns := map[string]string{
		"id":                  "id",
		"full_name":           "fullName",
		"image":               "image",
		"office_email":        "officeEmail",
		"personal_email":      "personalEmail",
		"office_phone":        "officePhone",
		"personal_phone":      "personalPhone",
		"employment_type":     "employmentType",
		"nationality":         "nationality",
		"disability":          "disability",
		"gender":              "gender",
		"religion":            "religion",
		"joining_designation": "joiningDesignation",
		"current_designation": "currentDesignation",
		"date_of_birth":       "dateOfBirth",
		"confirmation_date":   "confirmationDate",

		"bank_name":      "bankName",
		"branch_name":    "branchName",
		"account_number": "accountNumber",
		"wallet_type":    "walletType",
		"wallet_number":  "walletNumber",

		"additional_information_id": "additionalInformationId",
		"present_address_id":        "presentAddressId",
		"permanent_address_id":      "permanentAddressId",
		"spouse_information_id":     "spouseInformationId",
		"emergency_contact_id":      "emergencyContactId",

		"created_at": "createdAt",
		"updated_at": "updatedAt",
	}
	raw := make(map[string]any, len(row))
	for col, field := range columns {
		if v, ok := row[col]; ok {
			raw[field] = v
		}
	}
	return raw
}
