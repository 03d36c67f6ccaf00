package invite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCode(t *testing.T) {
	code, token := NewCode("player@furia.fc")
	assert.NotEmpty(t, code, "Encoded code should not be empty")
	assert.NotEmpty(t, token, "Token should not be empty")
}

func TestDecode(t *testing.T) {
	// First, generate a code
	email := "player@furia.fc"
	code, token := NewCode(email)

	// Now, decode the encoded code
	decodedEmail, decodedToken, err := Decode(code)

	// Check if there are any errors
	assert.Nil(t, err, "Should not have an error during decoding")
	assert.Equal(t, email, decodedEmail, "Decoded email should match the original")
	assert.Equal(t, token, decodedToken, "Decoded token should match the original")
}

func TestDecode_ErrorHandling(t *testing.T) {
	// Pass an incorrectly formatted string
	_, _, err := Decode("this is not a base64 string")
	assert.NotNil(t, err, "Expected an error for incorrect base64 string")
}
