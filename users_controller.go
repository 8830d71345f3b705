package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// UsersController handles registration, login, logout, activation, and
// user lookup. Collaborators are injected; no globals.
type UsersController struct {
	Repo    RepositoryManager
	Tokens  *TokenService
	Mailer  Mailer
	Logger  Logger
	BaseURL string
}

type UsersControllerOption func(*UsersController) *UsersController

func NewUsersController(repo RepositoryManager, tokens *TokenService, mailer Mailer, opts ...UsersControllerOption) *UsersController {
	c := &UsersController{
		Repo:   repo,
		Tokens: tokens,
		Mailer: mailer,
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in users controller...")
	}

	if c.Tokens == nil {
		panic("Missing TokenService in users controller...")
	}

	if c.Mailer == nil {
		panic("Missing Mailer in users controller...")
	}

	return c
}

func WithUsersLogger(logger Logger) UsersControllerOption {
	return func(c *UsersController) *UsersController {
		c.Logger = logger
		return c
	}
}

func WithBaseURL(baseURL string) UsersControllerOption {
	return func(c *UsersController) *UsersController {
		c.BaseURL = baseURL
		return c
	}
}

// Register creates a pending account and dispatches the verification
// email without blocking the response.
func (a *UsersController) Register(c *fiber.Ctx) error {
	payload := new(RegisterRequest)

	if err := c.BodyParser(payload); err != nil {
		return ErrValidation("The request body could not be parsed.")
	}

	if err := payload.Validate(); err != nil {
		return ErrValidation(ValidationMessage(err))
	}

	if !ValidPasswordComplexity(payload.Password) {
		return ErrValidation(MsgPasswordComplexity)
	}

	// Duplicate emails are rejected before any row is created.
	_, err := a.Repo.Users().GetByEmail(c.Context(), payload.Email)
	if err == nil {
		return ErrExistingUser()
	}
	if !repository.IsRecordNotFound(err) {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check for existing user")
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user := &User{
		Name:                   payload.Name,
		Email:                  payload.Email,
		PasswordHash:           hash,
		EmailVerificationToken: NewVerificationToken(),
	}

	if user, err = a.Repo.Users().Register(c.Context(), user); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
	}

	a.dispatchVerificationEmail(user)

	return c.SendString(fmt.Sprintf(MsgRegisterSuccessTemplate, user.Email))
}

// dispatchVerificationEmail sends the activation link off the request
// path. Delivery is at-least-once and failures only get logged; the
// user can always be re-sent the link out of band.
func (a *UsersController) dispatchVerificationEmail(user *User) {
	link, err := ActivationLink(a.BaseURL, user)
	if err != nil {
		a.Logger.Error("failed to build activation link", "email", user.Email, "error", err)
		return
	}

	if !a.Mailer.IsEnabled() {
		a.Logger.Info("mail delivery disabled", "email", user.Email, "activation_link", link)
		return
	}

	go func() {
		if err := a.Mailer.SendVerificationEmail(user, link); err != nil {
			a.Logger.Error("failed to send verification email", "email", user.Email, "error", err)
		}
	}()
}

// Login exchanges credentials for a bearer token. Preconditions are
// checked in order: existence, verified, password. The unverified check
// runs strictly before password comparison so the 403 cannot leak
// whether a password was correct.
func (a *UsersController) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		return ErrValidation("The request body could not be parsed.")
	}

	if err := payload.Validate(); err != nil {
		return ErrValidation(ValidationMessage(err))
	}

	user, err := a.Repo.Users().GetByEmail(c.Context(), payload.Email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return ErrAuthenticationFailed()
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to look up account")
	}

	if !user.Verified() {
		return ErrUnverifiedAccount()
	}

	if err := ComparePasswordAndHash(payload.Password, user.PasswordHash); err != nil {
		return ErrAuthenticationFailed()
	}

	token, err := a.Tokens.Issue(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// Logout revokes the presented bearer token.
func (a *UsersController) Logout(c *fiber.Ctx) error {
	raw, ok := BearerToken(c)
	if !ok {
		return ErrUnauthenticated()
	}

	if err := a.Tokens.Revoke(c.Context(), raw); err != nil {
		return err
	}

	return c.SendString(MsgLogoutSuccess)
}

// GetUser returns the public view of a user record: id and name.
func (a *UsersController) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return ErrResourceNotFound()
	}

	user, err := a.Repo.Users().GetByID(c.Context(), id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return ErrResourceNotFound()
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to load user")
	}

	return c.JSON(user)
}

// Activate redeems a verification token. The endpoint never surfaces an
// error status: every outcome renders either the success or the failure
// view.
func (a *UsersController) Activate(c *fiber.Ctx) error {
	payload := c.Query("t")
	if payload == "" {
		return a.renderActivation(c, false)
	}

	token, email, err := DecodeActivationPayload(payload)
	if err != nil {
		return a.renderActivation(c, false)
	}

	ctx, cancel := context.WithTimeout(c.Context(), time.Second*10)
	defer cancel()

	if _, err := a.Repo.Users().RedeemVerification(ctx, email, token); err != nil {
		if !repository.IsRecordNotFound(err) {
			a.Logger.Error("verification redemption failed", "email", email, "error", err)
		}
		return a.renderActivation(c, false)
	}

	return a.renderActivation(c, true)
}

func (a *UsersController) renderActivation(c *fiber.Ctx, success bool) error {
	view := "activation_failure"
	if success {
		view = "activation_success"
	}

	return c.Render(view, fiber.Map{})
}
