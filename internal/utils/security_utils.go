package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Link codes are 6 uppercase hex characters (24 bits). Combined with
// the 10 minute lifetime and one-time use this is far beyond what can
// be guessed over HTTP.
const linkCodeBytes = 3

// Session tokens are 64 hex characters (256 bits).
const sessionTokenBytes = 32

func GenerateLinkCode() (string, error) {
	b := make([]byte, linkCodeBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
