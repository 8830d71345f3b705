package blog

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

type Posts interface {
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context, page int) ([]*Post, int, error)
	Create(ctx context.Context, post *Post) (*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	Delete(ctx context.Context, post *Post) error
}

type posts struct {
	db *bun.DB
}

var _ Posts = (*posts)(nil)

func NewPostsRepository(db *bun.DB) Posts {
	return &posts{db: db}
}

func (r *posts) GetByID(ctx context.Context, id int64) (*Post, error) {
	record := &Post{}

	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"id": id,
				})
		}
		return nil, err
	}

	return record, nil
}

// List returns one page of posts in ascending id order together with
// the total row count. Pages beyond range yield an empty, non-nil
// slice.
func (r *posts) List(ctx context.Context, page int) ([]*Post, int, error) {
	records := make([]*Post, 0, PageSize)

	total, err := r.db.NewSelect().
		Model(&records).
		OrderExpr("?TableAlias.id ASC").
		Offset(PageOffset(page)).
		Limit(PageSize).
		ScanAndCount(ctx)

	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *posts) Create(ctx context.Context, post *Post) (*Post, error) {
	now := time.Now()
	post.CreatedAt = &now
	post.UpdatedAt = &now

	if _, err := r.db.NewInsert().Model(post).Exec(ctx); err != nil {
		return nil, err
	}

	return post, nil
}

// Update persists title and content only; the owner never changes.
func (r *posts) Update(ctx context.Context, post *Post) (*Post, error) {
	now := time.Now()
	post.UpdatedAt = &now

	_, err := r.db.NewUpdate().
		Model(post).
		Column("title", "content", "updated_at").
		WherePK().
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes the post and its comments in one transaction.
func (r *posts) Delete(ctx context.Context, post *Post) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*Comment)(nil)).
			Where("post_id = ?", post.ID).
			Exec(ctx); err != nil {
			return err
		}

		_, err := tx.NewDelete().
			Model(post).
			WherePK().
			Exec(ctx)

		return err
	})
}
