package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	v.Check(v.NotBlank("   "), "title", "must be provided")
	v.Check(v.NotBlank(""), "title", "must not be shown")
	v.Check(v.PermittedValue("Cooking", "Blogging", "Cooking"), "category", "must be a known category")
	v.Check(EmailRX.MatchString("jane@example.com"), "email", "must be a valid email address")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)

	err := v.ValidationError()
	var validationErr ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "must be provided", validationErr.Errors["title"])
}

func TestCheckStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.CheckStringLength("héllo", 0, 5))
	assert.False(t, v.CheckStringLength("héllo!", 0, 5))
	assert.False(t, v.CheckStringLength("", 1, 5))
}
