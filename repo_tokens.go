package blog

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type AccessTokens interface {
	Create(ctx context.Context, token *AccessToken) (*AccessToken, error)
	GetByDigest(ctx context.Context, digest string) (*AccessToken, error)
	DeleteByDigest(ctx context.Context, digest string) error
}

type accessTokens struct {
	db *bun.DB
}

var _ AccessTokens = (*accessTokens)(nil)

func NewAccessTokensRepository(db *bun.DB) AccessTokens {
	return &accessTokens{db: db}
}

func (r *accessTokens) Create(ctx context.Context, token *AccessToken) (*AccessToken, error) {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	if _, err := r.db.NewInsert().Model(token).Exec(ctx); err != nil {
		return nil, err
	}

	return token, nil
}

func (r *accessTokens) GetByDigest(ctx context.Context, digest string) (*AccessToken, error) {
	record := &AccessToken{}

	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.token_digest = ?", digest).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"token_digest": digest,
				})
		}
		return nil, err
	}

	return record, nil
}

// DeleteByDigest is idempotent: deleting an unknown digest is a no-op.
func (r *accessTokens) DeleteByDigest(ctx context.Context, digest string) error {
	_, err := r.db.NewDelete().
		Model((*AccessToken)(nil)).
		Where("token_digest = ?", digest).
		Exec(ctx)

	return err
}
