package additionalinfo

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"
)

var (
	serverAssignedFields = []string{"id", "createdAt"}
	alwaysRequiredFields []string

	storedSchema = validation.Schema{
		{Name: "id", Validate: validation.UUID, Required: true},
		{Name: "fatherName", Validate: validation.String, Nullable: true},
		{Name: "motherName", Validate: validation.String, Nullable: true},
		{Name: "nationalId", Validate: validation.String, Nullable: true},
		{Name: "placeOfBirth", Validate: validation.String, Nullable: true},
		{Name: "maritalStatus", Validate: validation.Enum(validation.MaritalStatusValues...), Nullable: true},
		{Name: "eTin", Validate: validation.String, Nullable: true},
		{Name: "program", Validate: validation.String, Nullable: true},
		{Name: "unit", Validate: validation.String, Nullable: true},
		{Name: "prlDate", Validate: validation.Date, Nullable: true},
		{Name: "regularityDate", Validate: validation.Date, Nullable: true},
		{Name: "createdAt", Validate: validation.Date, Nullable: true},
	}

	createSchema = validation.CreateSchema(storedSchema, serverAssignedFields, alwaysRequiredFields)
)

func ValidateStored(raw map[string]any) (AdditionalInformation, error) {
	rec, err := storedSchema.Validate(raw)
	if err != nil {
		return AdditionalInformation{}, err
	}
	return AdditionalInformation{
		ID:             rec.UUID("id"),
		FatherName:     rec.StringPtr("fatherName"),
		MotherName:     rec.StringPtr("motherName"),
		NationalID:     rec.StringPtr("nationalId"),
		PlaceOfBirth:   rec.StringPtr("placeOfBirth"),
		MaritalStatus:  rec.StringPtr("maritalStatus"),
		ETin:           rec.StringPtr("eTin"),
		Program:        rec.StringPtr("program"),
		Unit:           rec.StringPtr("unit"),
		PrlDate:        rec.Time("prlDate"),
		RegularityDate: rec.Time("regularityDate"),
		CreatedAt:      rec.Time("createdAt"),
	}, nil
}

func ValidateCreateInput(raw map[string]any) (CreateAdditionalInformationInput, error) {
	rec, err := createSchema.Validate(raw)
	if err != nil {
		return CreateAdditionalInformationInput{}, err
	}
	return CreateAdditionalInformationInput{
		FatherName:     rec.StringPtr("fatherName"),
		MotherName:     rec.StringPtr("motherName"),
		NationalID:     rec.StringPtr("nationalId"),
		PlaceOfBirth:   rec.StringPtr("placeOfBirth"),
		MaritalStatus:  rec.StringPtr("maritalStatus"),
		ETin:           rec.StringPtr("eTin"),
		Program:        rec.StringPtr("program"),
		Unit:           rec.StringPtr("unit"),
		PrlDate:        rec.Time("prlDate"),
		RegularityDate: rec.Time("regularityDate"),
	}, nil
}

func rowToRaw(row map[string]any) map[string]any {
	columns := map[string]string{
		"id":              "id",
		"father_name":     "fatherName",
		"mother_name":     "motherName",
		"national_id":     "nationalId",
		"place_of_birth":  "placeOfBirth",
		"marital_status":  "maritalStatus",
		"e_tin":           "eTin",
		"program":         "program",
		"unit":            "unit",
		"prl_date":        "prlDate",
		"regularity_date": "regularityDate",
		"created_at":      "createdAt",
	}
	raw := make(map[string]any, len(row))
	for col, field := range columns {
		if v, ok := row[col]; ok {
			raw[field] = v
		}
	}
	return raw
}
