package validation_test

import (
	"testing"
	"time"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/stretchr/testify/assert"
)

func testSchema() validation.Schema {
	return validation.Schema{
		{Name: "id", Validate: validation.UUID, Required: true},
		{Name: "division", Validate: validation.String, Required: true},
		{Name: "roadNo", Validate: validation.String, Nullable: true},
		{Name: "dateOfBirth", Validate: validation.Date},
		{Name: "gender", Validate: validation.Enum(validation.GenderValues...)},
		{Name: "createdAt", Validate: validation.Date},
	}
}

func TestSchemaValidate(t *testing.T) {
	schema := testSchema()

	t.Run("valid input returns normalized record", func(t *testing.T) {
		rec, err := schema.Validate(map[string]any{
			"id":          "0d9af046-74f4-4f6b-b9bc-aa1b42990052",
			"division":    "Dhaka",
			"roadNo":      "12/A",
			"dateOfBirth": "1990-05-12",
			"gender":      "Female",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Dhaka", rec.String("division"))
		assert.Equal(t, "0d9af046-74f4-4f6b-b9bc-aa1b42990052", rec.UUID("id").String())

		dob := rec.Time("dateOfBirth")
		assert.NotNil(t, dob)
		assert.Equal(t, time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC), *dob)
	})

	t.Run("missing required field is reported by name", func(t *testing.T) {
		rec, err := schema.Validate(map[string]any{
			"id": "0d9af046-74f4-4f6b-b9bc-aa1b42990052",
		})
		assert.Nil(t, rec)

		verrs := validation.AsErrors(err)
		assert.Len(t, verrs, 1)
		assert.Equal(t, "division", verrs[0].FieldPath)
		assert.Equal(t, validation.MissingRequiredField, verrs[0].Kind)
	})

	t.Run("explicit null on nullable field is kept distinct from absent", func(t *testing.T) {
		rec, err := schema.Validate(map[string]any{
			"id":       "0d9af046-74f4-4f6b-b9bc-aa1b42990052",
			"division": "Dhaka",
			"roadNo":   nil,
		})
		assert.NoError(t, err)

		_, present := rec["roadNo"]
		assert.True(t, present, "explicit null survives in the record")
		assert.Nil(t, rec.StringPtr("roadNo"))

		_, present = rec["dateOfBirth"]
		assert.False(t, present, "omitted optional field has no entry")
	})

	t.Run("explicit null on non-nullable field fails", func(t *testing.T) {
		_, err := schema.Validate(map[string]any{
			"id":       "0d9af046-74f4-4f6b-b9bc-aa1b42990052",
			"division": nil,
		})
		verrs := validation.AsErrors(err)
		assert.Len(t, verrs, 1)
		assert.Equal(t, "division", verrs[0].FieldPath)
		assert.Equal(t, validation.NullNotAllowed, verrs[0].Kind)
	})

	t.Run("all violations are aggregated in one pass", func(t *testing.T) {
		_, err := schema.Validate(map[string]any{
			"id":          "nope",
			"dateOfBirth": "not-a-date",
			"gender":      "Unknown",
		})
		verrs := validation.AsErrors(err)
		assert.Len(t, verrs, 4)
		assert.True(t, verrs.Has("id"))
		assert.True(t, verrs.Has("division"))
		assert.True(t, verrs.Has("dateOfBirth"))
		assert.True(t, verrs.Has("gender"))
	})

	t.Run("violations keep table order", func(t *testing.T) {
		_, err := schema.Validate(map[string]any{
			"dateOfBirth": "not-a-date",
			"id":          "nope",
		})
		verrs := validation.AsErrors(err)
		assert.Equal(t, []string{"id", "division", "dateOfBirth"}, verrs.Fields())
	})

	t.Run("unknown extra fields are ignored", func(t *testing.T) {
		rec, err := schema.Validate(map[string]any{
			"id":       "0d9af046-74f4-4f6b-b9bc-aa1b42990052",
			"division": "Dhaka",
			"legacy":   "whatever",
		})
		assert.NoError(t, err)
		_, present := rec["legacy"]
		assert.False(t, present)
	})

	t.Run("a coercion failure never aborts sibling fields", func(t *testing.T) {
		_, err := schema.Validate(map[string]any{
			"id":       "0d9af046-74f4-4f6b-b9bc-aa1b42990052",
			"division": "Dhaka",
			"gender":   123,
			"createdAt": map[string]any{
				"weird": true,
			},
		})
		verrs := validation.AsErrors(err)
		assert.Len(t, verrs, 2)
		assert.True(t, verrs.Has("gender"))
		assert.True(t, verrs.Has("createdAt"))
	})
}

func TestErrorsHelpers(t *testing.T) {
	verrs := validation.Errors{
		{FieldPath: "officeEmail", Kind: validation.MissingRequiredField, Message: "is required"},
	}

	t.Run("implements error with field detail", func(t *testing.T) {
		assert.Contains(t, verrs.Error(), "officeEmail")
	})

	t.Run("AsErrors round-trips through error", func(t *testing.T) {
		var err error = verrs
		assert.True(t, validation.IsValidation(err))
		assert.Equal(t, verrs, validation.AsErrors(err))
	})

	t.Run("foreign errors are not validation errors", func(t *testing.T) {
		assert.False(t, validation.IsValidation(assert.AnError))
		assert.Nil(t, validation.AsErrors(nil))
	})
}
