package blog

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// PostsController handles post CRUD. Reads need a valid bearer token;
// mutations additionally pass the ownership guard.
type PostsController struct {
	Repo   RepositoryManager
	Logger Logger
}

func NewPostsController(repo RepositoryManager, opts ...func(*PostsController)) *PostsController {
	c := &PostsController{
		Repo:   repo,
		Logger: defLogger{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in posts controller...")
	}

	return c
}

func WithPostsLogger(logger Logger) func(*PostsController) {
	return func(c *PostsController) {
		c.Logger = logger
	}
}

// GetPaginated returns one page of posts in ascending id order.
func (a *PostsController) GetPaginated(c *fiber.Ctx) error {
	page, err := ParsePage(c.Query("page"))
	if err != nil {
		return err
	}

	records, total, err := a.Repo.Posts().List(c.Context(), page)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list posts")
	}

	return c.JSON(fiber.Map{
		"posts":        records,
		"current_page": page,
		"total_pages":  TotalPages(total),
	})
}

// GetSingular returns one post by id.
func (a *PostsController) GetSingular(c *fiber.Ctx) error {
	post, err := a.loadPost(c)
	if err != nil {
		return err
	}

	return c.JSON(post)
}

// Create stores a new post owned by the acting user.
func (a *PostsController) Create(c *fiber.Ctx) error {
	payload := new(PostRequest)

	if err := c.BodyParser(payload); err != nil {
		return ErrValidation("The request body could not be parsed.")
	}

	if err := payload.Validate(); err != nil {
		return ErrValidation(ValidationMessage(err))
	}

	actorID, ok := ActorID(c)
	if !ok {
		return ErrUnauthenticated()
	}

	post, err := a.Repo.Posts().Create(c.Context(), &Post{
		UserID:  actorID,
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create post")
	}

	return c.JSON(post)
}

// Update edits a post; owner only.
func (a *PostsController) Update(c *fiber.Ctx) error {
	payload := new(PostRequest)

	if err := c.BodyParser(payload); err != nil {
		return ErrValidation("The request body could not be parsed.")
	}

	if err := payload.Validate(); err != nil {
		return ErrValidation(ValidationMessage(err))
	}

	post, err := a.loadPost(c)
	if err != nil {
		return err
	}

	actorID, ok := ActorID(c)
	if !ok {
		return ErrUnauthenticated()
	}

	if !CanMutatePost(actorID, post) {
		return ErrUnauthorised()
	}

	post.Title = payload.Title
	post.Content = payload.Content

	if post, err = a.Repo.Posts().Update(c.Context(), post); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not update post")
	}

	return c.JSON(post)
}

// Delete removes a post and, through the schema dependency, its
// comments; owner only.
func (a *PostsController) Delete(c *fiber.Ctx) error {
	post, err := a.loadPost(c)
	if err != nil {
		return err
	}

	actorID, ok := ActorID(c)
	if !ok {
		return ErrUnauthenticated()
	}

	if !CanMutatePost(actorID, post) {
		return ErrUnauthorised()
	}

	if err := a.Repo.Posts().Delete(c.Context(), post); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not delete post")
	}

	return c.SendString(MsgPostDeleted)
}

func (a *PostsController) loadPost(c *fiber.Ctx) (*Post, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, ErrResourceNotFound()
	}

	post, err := a.Repo.Posts().GetByID(c.Context(), int64(id))
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrResourceNotFound()
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to load post")
	}

	return post, nil
}
