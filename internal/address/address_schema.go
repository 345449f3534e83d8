package address

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"
)

// Field-descriptor tables for both address shapes. Present and permanent
// addresses validate against the same tables; only the target table differs.
var (
	serverAssignedFields = []string{"id", "createdAt"}

	// Every geographic field must be supplied on create even though the
	// derived schema defaults to optional.
	alwaysRequiredFields = []string{
		"division", "district", "subDistrict", "postOffice",
		"postCode", "block", "houseOrVillage",
	}

	storedSchema = validation.Schema{
		{Name: "id", Validate: validation.UUID, Required: true},
		{Name: "division", Validate: validation.String, Required: true},
		{Name: "district", Validate: validation.String, Required: true},
		{Name: "subDistrict", Validate: validation.String, Required: true},
		{Name: "postOffice", Validate: validation.String, Required: true},
		{Name: "postCode", Validate: validation.String, Required: true},
		{Name: "block", Validate: validation.String, Required: true},
		{Name: "houseOrVillage", Validate: validation.String, Required: true},
		{Name: "roadNo", Validate: validation.String, Nullable: true},
		{Name: "createdAt", Validate: validation.Date},
	}

	createSchema = validation.CreateSchema(storedSchema, serverAssignedFields, alwaysRequiredFields)
)

// ValidateStored checks a raw stored-shape record (as read back from
// persistence) and returns the typed address, or the complete ordered list
// of field violations.
func ValidateStored(raw map[string]any) (Address, error) {
	rec, err := storedSchema.Validate(raw)
	if err != nil {
		return Address{}, err
	}
	return Address{
		ID:             rec.UUID("id"),
		Division:       rec.String("division"),
		District:       rec.String("district"),
		SubDistrict:    rec.String("subDistrict"),
		PostOffice:     rec.String("postOffice"),
		PostCode:       rec.String("postCode"),
		Block:          rec.String("block"),
		HouseOrVillage: rec.String("houseOrVillage"),
		RoadNo:         rec.StringPtr("roadNo"),
		CreatedAt:      rec.Time("createdAt"),
	}, nil
}

// ValidateCreateInput checks a raw create payload against the derived
// create schema. Server-assigned fields are rejected by omission: they are
// simply not part of the schema, so stray id/createdAt keys are ignored.
func ValidateCreateInput(raw map[string]any) (CreateAddressInput, error) {
	rec, err := createSchema.Validate(raw)
	if err != nil {
		return CreateAddressInput{}, err
	}
	return CreateAddressInput{
		Division:       rec.String("division"),
		District:       rec.String("district"),
		SubDistrict:    rec.String("subDistrict"),
		PostOffice:     rec.String("postOffice"),
		PostCode:       rec.String("postCode"),
		Block:          rec.String("block"),
		HouseOrVillage: rec.String("houseOrVillage"),
		RoadNo:         rec.StringPtr("roadNo"),
	}, nil
}

// rowToRaw renames database columns to the camelCase field paths the
// schemas validate against.
func rowToRaw(row map[string]any) map[string]any {
	columns := map[string]string{
		"id":               "id",
		"division":         "division",
		"district":         "district",
		"sub_district":     "subDistrict",
		"post_office":      "postOffice",
		"post_code":        "postCode",
		"block":            "block",
		"house_or_village": "houseOrVillage",
		"road_no":          "roadNo",
		"created_at":       "createdAt",
	}
	raw := make(map[string]any, len(row))
	for col, field := range columns {
		if v, ok := row[col]; ok {
			raw[field] = v
		}
	}
	return raw
}
