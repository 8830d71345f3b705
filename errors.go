package blog

import (
	goerrors "github.com/goliatone/go-errors"
)

// Fixed response messages. Error bodies are selected solely by failure
// kind; internal details are never exposed.
const (
	MsgDefaultError = "An unexpected error has occurred"

	MsgLoginFailure    = "Login failed. No accounts found that match the provided credentials"
	MsgLogoutSuccess   = "Successfully logged-out"
	MsgUnauthenticated = "Unauthenticated"

	MsgExistingUser            = "An existing user exists with this email address"
	MsgPasswordComplexity      = "Account passwords must be at least 8 characters in length, and contain at least: 1 lowercase letter, 1 uppercase letter, and 1 number"
	MsgRegisterSuccessTemplate = `Successfully registered account "%s". Please check your email for an Account Validation email in order to verify your account`
	MsgUnverifiedAccount       = "This account has not been verified. Please check your email for an Account Verification email in order to verify your account"

	MsgUnauthorised     = "You are not authorised to make this request. Resources can only be updated by their owner"
	MsgResourceNotFound = "The specified resource could not be found"

	MsgPostDeleted    = "Post has been deleted successfully"
	MsgCommentDeleted = "Comment has been deleted successfully"
)

// ErrAuthenticationFailed covers both a missing account and a wrong
// password so the response cannot be used to enumerate users.
func ErrAuthenticationFailed() *goerrors.Error {
	return goerrors.New(MsgLoginFailure, goerrors.CategoryAuth)
}

// ErrUnauthenticated is returned when a request carries no usable
// bearer token.
func ErrUnauthenticated() *goerrors.Error {
	return goerrors.New(MsgUnauthenticated, goerrors.CategoryAuth).
		WithCode(goerrors.CodeUnauthorized)
}

// ErrUnverifiedAccount blocks login until the email has been verified.
func ErrUnverifiedAccount() *goerrors.Error {
	return goerrors.New(MsgUnverifiedAccount, goerrors.CategoryAuth).
		WithCode(goerrors.CodeForbidden)
}

// ErrUnauthorised is the ownership-guard rejection.
func ErrUnauthorised() *goerrors.Error {
	return goerrors.New(MsgUnauthorised, goerrors.CategoryAuth).
		WithCode(goerrors.CodeUnauthorized)
}

// ErrResourceNotFound is returned for any missing referenced resource.
func ErrResourceNotFound() *goerrors.Error {
	return goerrors.New(MsgResourceNotFound, goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound)
}

// ErrExistingUser rejects duplicate registration emails.
func ErrExistingUser() *goerrors.Error {
	return goerrors.New(MsgExistingUser, goerrors.CategoryConflict).
		WithCode(goerrors.CodeConflict)
}

// ErrValidation wraps a human readable validation message.
func ErrValidation(msg string) *goerrors.Error {
	return goerrors.New(msg, goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest)
}

// IsForbidden reports whether err is the unverified-account outcome.
func IsForbidden(err error) bool {
	var gerr *goerrors.Error
	if !goerrors.As(err, &gerr) {
		return false
	}
	return gerr.Category == goerrors.CategoryAuth && gerr.Code == goerrors.CodeForbidden
}
