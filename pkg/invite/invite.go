package invite

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samborkent/uuidv7"
)

// NewCode mints an invite code binding the invited email to a fresh uuidv7
// token. The code travels in a mail link; the token half is what gets
// persisted and checked on redemption.
func NewCode(email string) (code, token string) {
	token = uuidv7.New().String()

	raw := fmt.Sprintf("%s|%s", email, token)
	return base64.StdEncoding.EncodeToString([]byte(raw)), token
}

// Decode splits an invite code back into the invited email and its token.
func Decode(code string) (email, token string, err error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return "", "", err
	}
	res := strings.Split(string(decodedBytes), "|")
	if len(res) != 2 {
		return "", "", fmt.Errorf("not correct format")
	}
	return res[0], res[1], nil
}
