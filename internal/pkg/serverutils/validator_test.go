package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=3"`
	Tone  string `validate:"omitempty,oneof=warm direct"`
}

func TestValidateRequest_Valid(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "a@b.co", Name: "Ana", Tone: "warm"})
	assert.NoError(t, err)
}

func TestValidateRequest_CollectsFieldMessages(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "not-an-email", Name: "x", Tone: "loud"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	assert.Equal(t, "must be a valid email address", vErr.Fields["email"])
	assert.Equal(t, "must be at least 3 characters", vErr.Fields["name"])
	assert.Equal(t, "must be one of: warm direct", vErr.Fields["tone"])
}

func TestValidateRequest_RequiredMessage(t *testing.T) {
	err := ValidateRequest(sampleRequest{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["email"])
}
