package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

type sampleCommand struct {
	FirstName string `validate:"required,max=5"`
	Email     string `validate:"required,email"`
	Points    int    `validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sampleCommand{FirstName: "Jane", Email: "jane@example.com", Points: 1})
	assert.NoError(t, err)
}

func TestStruct_RequiredField_ReturnsInvalidArgument(t *testing.T) {
	err := Struct(sampleCommand{Email: "jane@example.com", Points: 1})

	require.Error(t, err)
	assert.Equal(t, httperr.KindInvalidArgument, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest))
	assert.Contains(t, err.Error(), "first_name is required")
}

func TestStruct_MaxLength(t *testing.T) {
	err := Struct(sampleCommand{FirstName: strings.Repeat("a", 6), Email: "jane@example.com", Points: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name cannot exceed 5 characters")
}

func TestStruct_InvalidEmail(t *testing.T) {
	err := Struct(sampleCommand{FirstName: "Jane", Email: "not-an-email", Points: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "phone_number", toSnake("PhoneNumber"))
	assert.Equal(t, "id", toSnake("ID"))
	assert.Equal(t, "category_id", toSnake("CategoryID"))
}
