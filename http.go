package blog

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const (
	// ContextActorKey holds the resolved actor id in request locals.
	ContextActorKey = "blog_actor_id"
	// ContextTokenKey holds the presented bearer token in request locals.
	ContextTokenKey = "blog_bearer_token"
)

// BearerToken extracts the raw bearer credential from the request.
func BearerToken(c *fiber.Ctx) (string, bool) {
	if raw, ok := c.Locals(ContextTokenKey).(string); ok && raw != "" {
		return raw, true
	}

	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// ActorID returns the authenticated user id stored by RequireAuth.
func ActorID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(ContextActorKey).(uuid.UUID)
	return id, ok
}

// RequireAuth resolves the bearer token to an actor and stashes both in
// request locals. Unknown and revoked tokens fail identically.
func RequireAuth(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := BearerToken(c)
		if !ok {
			return ErrUnauthenticated()
		}

		actorID, err := tokens.Resolve(c.Context(), raw)
		if err != nil {
			return err
		}

		c.Locals(ContextActorKey, actorID)
		c.Locals(ContextTokenKey, raw)

		return c.Next()
	}
}

// HTTPErrorHandler is the single funnel that maps failure kinds onto
// responses. Status selection depends only on the error category; no
// stack traces or internal details ever reach the caller.
func HTTPErrorHandler(logger Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).SendString(ferr.Message)
		}

		var gerr *goerrors.Error
		if !goerrors.As(err, &gerr) {
			logger.Error("unclassified error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(MsgDefaultError)
		}

		switch gerr.Category {
		case goerrors.CategoryValidation, goerrors.CategoryBadInput, goerrors.CategoryConflict:
			return c.Status(fiber.StatusBadRequest).SendString(gerr.Message)
		case goerrors.CategoryAuth:
			if gerr.Code == goerrors.CodeForbidden {
				return c.Status(fiber.StatusForbidden).SendString(gerr.Message)
			}
			return c.Status(fiber.StatusUnauthorized).SendString(gerr.Message)
		case goerrors.CategoryNotFound:
			return c.Status(fiber.StatusNotFound).SendString(gerr.Message)
		default:
			logger.Error("internal error", "error", gerr)
			return c.Status(fiber.StatusInternalServerError).SendString(MsgDefaultError)
		}
	}
}

// RegisterRoutes wires the full HTTP surface onto app.
func RegisterRoutes(app *fiber.App, users *UsersController, posts *PostsController, comments *CommentsController, tokens *TokenService) {
	protected := RequireAuth(tokens)

	app.Post("/users/register", users.Register)
	app.Post("/users/login", users.Login)
	app.Get("/users/activate", users.Activate)
	app.Post("/users/logout", protected, users.Logout)
	app.Get("/users/:id", protected, users.GetUser)

	app.Get("/posts", protected, posts.GetPaginated)
	app.Post("/posts", protected, posts.Create)
	app.Get("/posts/:id", protected, posts.GetSingular)
	app.Patch("/posts/:id", protected, posts.Update)
	app.Delete("/posts/:id", protected, posts.Delete)

	app.Get("/posts/:postId/comments", protected, comments.GetPaginated)
	app.Post("/posts/:postId/comments", protected, comments.Create)
	app.Patch("/posts/:postId/comments/:id", protected, comments.Update)
	app.Delete("/posts/:postId/comments/:id", protected, comments.Delete)
}
