package validation_test

import (
	"testing"
	"time"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDRule(t *testing.T) {
	t.Run("valid uuid normalizes to uuid.UUID", func(t *testing.T) {
		raw := uuid.New().String()
		v, ferr := validation.UUID("presentAddressId", raw)
		assert.Nil(t, ferr)
		assert.Equal(t, raw, v.(uuid.UUID).String())
	})

	t.Run("malformed uuid fails with InvalidFormat", func(t *testing.T) {
		_, ferr := validation.UUID("presentAddressId", "not-a-uuid")
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidFormat, ferr.Kind)
		assert.Equal(t, "presentAddressId", ferr.FieldPath)
	})

	t.Run("non-string fails with InvalidFormat", func(t *testing.T) {
		_, ferr := validation.UUID("presentAddressId", 42)
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidFormat, ferr.Kind)
	})
}

func TestDateRule(t *testing.T) {
	t.Run("YYYY-MM-DD string coerces to calendar date", func(t *testing.T) {
		v, ferr := validation.Date("dateOfBirth", "1990-05-12")
		assert.Nil(t, ferr)
		parsed := v.(time.Time)
		assert.Equal(t, 1990, parsed.Year())
		assert.Equal(t, time.May, parsed.Month())
		assert.Equal(t, 12, parsed.Day())
	})

	t.Run("RFC3339 string coerces", func(t *testing.T) {
		v, ferr := validation.Date("createdAt", "2023-08-01T10:30:00Z")
		assert.Nil(t, ferr)
		assert.False(t, v.(time.Time).IsZero())
	})

	t.Run("coercion is idempotent on native dates", func(t *testing.T) {
		now := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
		v, ferr := validation.Date("prlDate", now)
		assert.Nil(t, ferr)
		assert.Equal(t, now, v)

		again, ferr := validation.Date("prlDate", v)
		assert.Nil(t, ferr)
		assert.Equal(t, v, again)
	})

	t.Run("arbitrary string fails with InvalidDate", func(t *testing.T) {
		_, ferr := validation.Date("dateOfBirth", "not-a-date")
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidDate, ferr.Kind)
	})

	t.Run("non-date type fails with InvalidDate", func(t *testing.T) {
		_, ferr := validation.Date("dateOfBirth", 19900512)
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidDate, ferr.Kind)
	})
}

func TestEnumRule(t *testing.T) {
	gender := validation.Enum(validation.GenderValues...)

	t.Run("declared literal passes", func(t *testing.T) {
		v, ferr := gender("gender", "Male")
		assert.Nil(t, ferr)
		assert.Equal(t, "Male", v)
	})

	t.Run("value outside the set fails with InvalidEnumValue", func(t *testing.T) {
		_, ferr := gender("gender", "Unknown")
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidEnumValue, ferr.Kind)
		assert.Contains(t, ferr.Message, "Male, Female, Other")
	})

	t.Run("marital status set", func(t *testing.T) {
		marital := validation.Enum(validation.MaritalStatusValues...)
		for _, ok := range []string{"Single", "Married", "Divorced", "Widowed", "Separated"} {
			_, ferr := marital("maritalStatus", ok)
			assert.Nil(t, ferr, "expected %q to pass", ok)
		}
		_, ferr := marital("maritalStatus", "single")
		assert.NotNil(t, ferr, "matching is case sensitive")
	})
}

func TestEmailRule(t *testing.T) {
	t.Run("valid address passes", func(t *testing.T) {
		v, ferr := validation.Email("officeEmail", "hr@example.com")
		assert.Nil(t, ferr)
		assert.Equal(t, "hr@example.com", v)
	})

	t.Run("bad address fails with InvalidEmailFormat", func(t *testing.T) {
		_, ferr := validation.Email("officeEmail", "hr@@example")
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidEmailFormat, ferr.Kind)
	})
}

func TestStringRule(t *testing.T) {
	t.Run("legacy sentinel strings are plain strings", func(t *testing.T) {
		v, ferr := validation.String("block", "n/a")
		assert.Nil(t, ferr)
		assert.Equal(t, "n/a", v)
	})

	t.Run("non-string fails", func(t *testing.T) {
		_, ferr := validation.String("block", 7)
		assert.NotNil(t, ferr)
		assert.Equal(t, validation.InvalidFormat, ferr.Kind)
	})
}
