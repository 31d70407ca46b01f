package utils_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/mwangiben/skill_share/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name                 string `validate:"required,min=2"`
	Email                string `validate:"required,email"`
	Password             string `validate:"required,min=8"`
	PasswordConfirmation string `validate:"required,eqfield=Password"`
	Rating               int    `validate:"required,min=1,max=5"`
	SkillID              uint   `validate:"required"`
}

func TestFormatValidationErrorsFieldKeys(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(sampleRequest{
		Name:                 "a",
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: "different",
		Rating:               9,
	})
	require.Error(t, err)

	out := utils.FormatValidationErrors(err)

	assert.Equal(t, []string{"The name must be at least 2 characters"}, out["name"])
	assert.Equal(t, []string{"The email must be a valid email address"}, out["email"])
	assert.Equal(t, []string{"The password must be at least 8 characters"}, out["password"])
	assert.Equal(t, []string{"Passwords do not match"}, out["password_confirmation"])
	assert.Equal(t, []string{"Rating must be between 1 and 5"}, out["rating"])
	assert.Equal(t, []string{"The skill_id field is required"}, out["skill_id"])
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	out := utils.FormatValidationErrors(assert.AnError)
	require.Contains(t, out, "request")
}

func TestGenerateResetToken(t *testing.T) {
	a, err := utils.GenerateResetToken()
	require.NoError(t, err)
	b, err := utils.GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 60)
	assert.Len(t, b, 60)
	assert.NotEqual(t, a, b)
}
