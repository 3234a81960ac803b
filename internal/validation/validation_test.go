package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wementor/mentor-directory-api/internal/apierror"
)

type signupForm struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	v := New()

	err := v.Struct(signupForm{Email: "bob@example.com", Name: "Bob"})
	assert.NoError(t, err)
}

func TestStruct_InvalidReturnsTranslatedBadRequest(t *testing.T) {
	v := New()

	err := v.Struct(signupForm{Email: "not-an-email", Name: "Bob"})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
	assert.Contains(t, err.Error(), "valid email")
}

func TestStruct_MissingRequiredField(t *testing.T) {
	v := New()

	err := v.Struct(signupForm{Email: "bob@example.com"})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}

func TestVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("bob@example.com", "required,email"))
	assert.Error(t, v.Var("nope", "required,email"))
	assert.Error(t, v.Var("", "required"))
}
