package blog

import (
	"encoding/base64"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// The verification token is the raw 16 bytes of a v4 UUID, stored on
// the user row while verification is pending. The externally delivered
// activation link carries base64("<uuid-string>:<email>") in the `t`
// query parameter.

// NewVerificationToken generates a fresh verification token.
func NewVerificationToken() []byte {
	u := uuid.New()
	return u[:]
}

// EncodeActivationPayload builds the activation link payload for a
// pending user record.
func EncodeActivationPayload(token []byte, email string) (string, error) {
	u, err := uuid.FromBytes(token)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "invalid verification token bytes")
	}
	return base64.StdEncoding.EncodeToString([]byte(u.String() + ":" + email)), nil
}

// DecodeActivationPayload parses an activation payload back into the
// token bytes and email address. Every malformed input is a
// verification failure, never a crash: bad base64, a payload without
// exactly one separator, or a malformed UUID segment.
func DecodeActivationPayload(payload string) ([]byte, string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryValidation, "activation payload is not valid base64")
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 2 {
		return nil, "", goerrors.New("activation payload is malformed", goerrors.CategoryValidation)
	}

	u, err := uuid.Parse(parts[0])
	if err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryValidation, "activation token is not a valid UUID")
	}

	return u[:], parts[1], nil
}
