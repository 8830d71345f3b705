package blog

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// CommentsController handles comment CRUD nested under posts. Deleting
// a comment is allowed for its author or the owner of the parent post;
// editing is author only.
type CommentsController struct {
	Repo   RepositoryManager
	Logger Logger
}

func NewCommentsController(repo RepositoryManager, opts ...func(*CommentsController)) *CommentsController {
	c := &CommentsController{
		Repo:   repo,
		Logger: defLogger{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in comments controller...")
	}

	return c
}

func WithCommentsLogger(logger Logger) func(*CommentsController) {
	return func(c *CommentsController) {
		c.Logger = logger
	}
}

// GetPaginated returns one page of a post's comments in ascending id
// order; 404 when the post is missing.
func (a *CommentsController) GetPaginated(c *fiber.Ctx) error {
	page, err := ParsePage(c.Query("page"))
	if err != nil {
		return err
	}

	post, err := a.loadPost(c)
	if err != nil {
		return err
	}

	records, total, err := a.Repo.Comments().ListByPost(c.Context(), post.ID, page)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list comments")
	}

	return c.JSON(fiber.Map{
		"comments":     records,
		"current_page": page,
		"total_pages":  TotalPages(total),
	})
}

// Create stores a new comment by the acting user on the target post.
func (a *CommentsController) Create(c *fiber.Ctx) error {
	payload := new(CommentRequest)

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

	post, err := a.loadPost(c)
	if err != nil {
		return err
	}

	comment, err := a.Repo.Comments().Create(c.Context(), &Comment{
		PostID:  post.ID,
		UserID:  actorID,
		Content: payload.Content,
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create comment")
	}

	return c.JSON(comment)
}

// Update edits a comment; comment owner only, moderation does not
// grant edit rights.
func (a *CommentsController) Update(c *fiber.Ctx) error {
	payload := new(CommentRequest)

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

	comment, err := a.loadPostComment(c, post)
	if err != nil {
		return err
	}

	actorID, ok := ActorID(c)
	if !ok {
		return ErrUnauthenticated()
	}

	if !CanUpdateComment(actorID, comment) {
		return ErrUnauthorised()
	}

	comment.Content = payload.Content

	if comment, err = a.Repo.Comments().Update(c.Context(), comment); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not update comment")
	}

	return c.JSON(comment)
}

// Delete removes a comment; allowed for the comment owner or the
// parent-post owner.
func (a *CommentsController) Delete(c *fiber.Ctx) error {
	post, err := a.loadPost(c)
	if err != nil {
		return err
	}

	comment, err := a.loadPostComment(c, post)
	if err != nil {
		return err
	}

	actorID, ok := ActorID(c)
	if !ok {
		return ErrUnauthenticated()
	}

	if !CanDeleteComment(actorID, comment, post) {
		return ErrUnauthorised()
	}

	if err := a.Repo.Comments().Delete(c.Context(), comment); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not delete comment")
	}

	return c.SendString(MsgCommentDeleted)
}

func (a *CommentsController) loadPost(c *fiber.Ctx) (*Post, error) {
	id, err := c.ParamsInt("postId")
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

func (a *CommentsController) loadPostComment(c *fiber.Ctx, post *Post) (*Comment, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, ErrResourceNotFound()
	}

	comment, err := a.Repo.Comments().GetByPostAndID(c.Context(), post.ID, int64(id))
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrResourceNotFound()
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to load comment")
	}

	return comment, nil
}
