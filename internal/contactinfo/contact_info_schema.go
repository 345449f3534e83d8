package contactinfo

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"
)

// Every business field on contact information is optional and nullable:
// upstream legacy records store explicit NULLs for "known absent". Only the
// identifier is required on the stored shape, and nothing is re-required on
// create.
var (
	serverAssignedFields = []string{"id", "createdAt"}
	alwaysRequiredFields []string

	storedSchema = validation.Schema{
		{Name: "id", Validate: validation.UUID, Required: true},
		{Name: "fullName", Validate: validation.String, Nullable: true},
		{Name: "dateOfBirth", Validate: validation.Date, Nullable: true},
		{Name: "gender", Validate: validation.String, Nullable: true},
		{Name: "occupation", Validate: validation.String, Nullable: true},
		{Name: "nationalId", Validate: validation.String, Nullable: true},
		{Name: "mobile", Validate: validation.String, Nullable: true},
		{Name: "email", Validate: validation.Email, Nullable: true},
		{Name: "createdAt", Validate: validation.Date, Nullable: true},
	}

	createSchema = validation.CreateSchema(storedSchema, serverAssignedFields, alwaysRequiredFields)
)

func ValidateStored(raw map[string]any) (ContactInformation, error) {
	rec, err := storedSchema.Validate(raw)
	if err != nil {
		return ContactInformation{}, err
	}
	return ContactInformation{
		ID:          rec.UUID("id"),
		FullName:    rec.StringPtr("fullName"),
		DateOfBirth: rec.Time("dateOfBirth"),
		Gender:      rec.StringPtr("gender"),
		Occupation:  rec.StringPtr("occupation"),
		NationalID:  rec.StringPtr("nationalId"),
		Mobile:      rec.StringPtr("mobile"),
		Email:       rec.StringPtr("email"),
		CreatedAt:   rec.Time("createdAt"),
	}, nil
}

func ValidateCreateInput(raw map[string]any) (CreateContactInformationInput, error) {
	rec, err := createSchema.Validate(raw)
	if err != nil {
		return CreateContactInformationInput{}, err
	}
	return CreateContactInformationInput{
		FullName:    rec.StringPtr("fullName"),
		DateOfBirth: rec.Time("dateOfBirth"),
		Gender:      rec.StringPtr("gender"),
		Occupation:  rec.StringPtr("occupation"),
		NationalID:  rec.StringPtr("nationalId"),
		Mobile:      rec.StringPtr("mobile"),
		Email:       rec.StringPtr("email"),
	}, nil
}

func rowToRaw(row map[string]any) map[string]any {
	columns := map[string]string{
		"id":            "id",
		"full_name":     "fullName",
		"date_of_birth": "dateOfBirth",
		"gender":        "gender",
		"occupation":    "occupation",
		"national_id":   "nationalId",
		"mobile":        "mobile",
		"email":         "email",
		"created_at":    "createdAt",
	}
	raw := make(map[string]any, len(row))
	for col, field := range columns {
		if v, ok := row[col]; ok {
			raw[field] = v
		}
	}
	return raw
}
