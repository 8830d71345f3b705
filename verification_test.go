package blog_test

import (
	"encoding/base64"
	"testing"

	blog "github.com/goliatone/go-blog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken(t *testing.T) {
	token := blog.NewVerificationToken()
	require.Len(t, token, 16)

	parsed, err := uuid.FromBytes(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.NotEqual(t, token, blog.NewVerificationToken())
}

func TestActivationPayloadRoundTrip(t *testing.T) {
	token := blog.NewVerificationToken()
	email := "alice@example.com"

	payload, err := blog.EncodeActivationPayload(token, email)
	require.NoError(t, err)

	gotToken, gotEmail, err := blog.DecodeActivationPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, token, gotToken)
	assert.Equal(t, email, gotEmail)
}

func TestDecodeActivationPayloadFailures(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "not base64",
			payload: "%%%not-base64%%%",
		},
		{
			name:    "no separator",
			payload: base64.StdEncoding.EncodeToString([]byte(valid + "alice@example.com")),
		},
		{
			name:    "too many separators",
			payload: base64.StdEncoding.EncodeToString([]byte(valid + ":a:b")),
		},
		{
			name:    "malformed uuid segment",
			payload: base64.StdEncoding.EncodeToString([]byte("not-a-uuid:alice@example.com")),
		},
		{
			name:    "empty payload",
			payload: base64.StdEncoding.EncodeToString([]byte("")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := blog.DecodeActivationPayload(tt.payload)
			assert.Error(t, err)
		})
	}
}

func TestEncodeActivationPayloadRejectsBadToken(t *testing.T) {
	_, err := blog.EncodeActivationPayload([]byte{0x01, 0x02}, "alice@example.com")
	assert.Error(t, err)
}
