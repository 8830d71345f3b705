package blog_test

import (
	"strings"
	"testing"

	blog "github.com/goliatone/go-blog"
	"github.com/stretchr/testify/assert"
)

func TestValidPasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "compliant", password: "Passw0rd1", want: true},
		{name: "too short", password: "Pw1abcd", want: false},
		{name: "no uppercase", password: "passw0rd1", want: false},
		{name: "no lowercase", password: "PASSW0RD1", want: false},
		{name: "no digit", password: "Passwordx", want: false},
		{name: "empty", password: "", want: false},
		{name: "exactly eight", password: "Abcdefg1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blog.ValidPasswordComplexity(tt.password))
		})
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload blog.RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid",
			payload: blog.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "Passw0rd1"},
			wantErr: false,
		},
		{
			name:    "missing name",
			payload: blog.RegisterRequest{Email: "alice@example.com", Password: "Passw0rd1"},
			wantErr: true,
		},
		{
			name:    "bad email",
			payload: blog.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "Passw0rd1"},
			wantErr: true,
		},
		{
			name:    "missing password",
			payload: blog.RegisterRequest{Name: "Alice", Email: "alice@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostRequestValidate(t *testing.T) {
	long := strings.Repeat("x", 65536)

	tests := []struct {
		name    string
		payload blog.PostRequest
		wantErr bool
	}{
		{name: "valid", payload: blog.PostRequest{Title: "Hello", Content: "World"}, wantErr: false},
		{name: "missing title", payload: blog.PostRequest{Content: "World"}, wantErr: true},
		{name: "missing content", payload: blog.PostRequest{Title: "Hello"}, wantErr: true},
		{name: "title too long", payload: blog.PostRequest{Title: strings.Repeat("t", 256), Content: "World"}, wantErr: true},
		{name: "content too long", payload: blog.PostRequest{Title: "Hello", Content: long}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := blog.LoginRequest{}.Validate()
	assert.Error(t, err)

	msg := blog.ValidationMessage(err)
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "password")
	assert.Contains(t, msg, "cannot be blank")

	assert.Equal(t, "", blog.ValidationMessage(nil))
}
