package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190a3b2-7c4d-7e5f-8a6b-9c0d1e2f3a4b"))
	assert.True(t, IsValidUUID("0190A3B2-7C4D-7E5F-8A6B-9C0D1E2F3A4B"))
	// v4, not v7
	assert.False(t, IsValidUUID("0190a3b2-7c4d-4e5f-8a6b-9c0d1e2f3a4b"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "must be in range 1000-9999"},
		{Field: "month", Message: "must be in range 1-12"},
	}

	assert.Equal(t, "year: must be in range 1000-9999; month: must be in range 1-12", errs.Error())
	assert.Equal(t, map[string]string{
		"year":  "must be in range 1000-9999",
		"month": "must be in range 1-12",
	}, errs.ToMap())
}
