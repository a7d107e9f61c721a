package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecipient struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestValidateStruct_ValidData(t *testing.T) {
	recipient := testRecipient{
		Name:  "Ana Silva",
		Email: "ana@example.com",
	}

	err := ValidateStruct(recipient)
	assert.NoError(t, err, "Valid struct should pass validation")
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	recipient := testRecipient{
		Email: "ana@example.com",
	}

	err := ValidateStruct(recipient)
	require.Error(t, err)

	messages := GetValidationErrors(err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Name is required", messages[0])
}

func TestValidateStruct_InvalidEmail(t *testing.T) {
	recipient := testRecipient{
		Name:  "Ana Silva",
		Email: "not-an-email",
	}

	err := ValidateStruct(recipient)
	require.Error(t, err)

	messages := GetValidationErrors(err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Email must be a valid email", messages[0])
}

func TestValidateStruct_MultipleFailures(t *testing.T) {
	err := ValidateStruct(testRecipient{})
	require.Error(t, err)

	messages := GetValidationErrors(err)
	assert.Len(t, messages, 2)
	assert.Contains(t, messages, "Name is required")
	assert.Contains(t, messages, "Email is required")
}

func TestGetValidationErrors_NonValidationError(t *testing.T) {
	messages := GetValidationErrors(assert.AnError)
	assert.Empty(t, messages)
}
