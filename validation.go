package blog

import (
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RegisterRequest payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// PostRequest is the create/update payload for posts.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate will run validation rules
func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.Required, validation.Length(1, 65535)),
	)
}

// CommentRequest is the create/update payload for comments.
type CommentRequest struct {
	Content string `json:"content"`
}

// Validate will run validation rules
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 65535)),
	)
}

// ValidPasswordComplexity checks registration password complexity:
// at least 8 characters, 1 lowercase, 1 uppercase, 1 digit.
func ValidPasswordComplexity(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return lower && upper && digit
}

// ValidationMessage flattens an ozzo validation error into the
// space-joined human readable form used by 400 responses.
func ValidationMessage(err error) string {
	if err == nil {
		return ""
	}

	verrs, ok := err.(validation.Errors)
	if !ok {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, "The "+field+" field "+verrs[field].Error()+".")
	}

	return strings.Join(parts, " ")
}
