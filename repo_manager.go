package blog

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Users() Users
	Posts() Posts
	Comments() Comments
	AccessTokens() AccessTokens
}

type mngr struct {
	db           *bun.DB
	users        Users
	posts        Posts
	comments     Comments
	accessTokens AccessTokens
}

// NewRepositoryManager wires every repository over a shared bun handle.
func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:           db,
		users:        NewUsersRepository(db),
		posts:        NewPostsRepository(db),
		comments:     NewCommentsRepository(db),
		accessTokens: NewAccessTokensRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.posts == nil {
		return errors.New("repository posts should be initialized")
	}

	if m.comments == nil {
		return errors.New("repository comments should be initialized")
	}

	if m.accessTokens == nil {
		return errors.New("repository accessTokens should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users {
	return m.users
}

func (m mngr) Posts() Posts {
	return m.posts
}

func (m mngr) Comments() Comments {
	return m.comments
}

func (m mngr) AccessTokens() AccessTokens {
	return m.accessTokens
}
