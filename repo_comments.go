package blog

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

type Comments interface {
	GetByPostAndID(ctx context.Context, postID, commentID int64) (*Comment, error)
	ListByPost(ctx context.Context, postID int64, page int) ([]*Comment, int, error)
	Create(ctx context.Context, comment *Comment) (*Comment, error)
	Update(ctx context.Context, comment *Comment) (*Comment, error)
	Delete(ctx context.Context, comment *Comment) error
}

type comments struct {
	db *bun.DB
}

var _ Comments = (*comments)(nil)

func NewCommentsRepository(db *bun.DB) Comments {
	return &comments{db: db}
}

// GetByPostAndID scopes the lookup to the owning post so a comment id
// from another post resolves as missing.
func (r *comments) GetByPostAndID(ctx context.Context, postID, commentID int64) (*Comment, error) {
	record := &Comment{}

	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.post_id = ?", postID).
		Where("?TableAlias.id = ?", commentID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"post_id": postID,
					"id":      commentID,
				})
		}
		return nil, err
	}

	return record, nil
}

func (r *comments) ListByPost(ctx context.Context, postID int64, page int) ([]*Comment, int, error) {
	records := make([]*Comment, 0, PageSize)

	total, err := r.db.NewSelect().
		Model(&records).
		Where("?TableAlias.post_id = ?", postID).
		OrderExpr("?TableAlias.id ASC").
		Offset(PageOffset(page)).
		Limit(PageSize).
		ScanAndCount(ctx)

	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *comments) Create(ctx context.Context, comment *Comment) (*Comment, error) {
	now := time.Now()
	comment.CreatedAt = &now
	comment.UpdatedAt = &now

	if _, err := r.db.NewInsert().Model(comment).Exec(ctx); err != nil {
		return nil, err
	}

	return comment, nil
}

// Update persists content only; post and owner are immutable.
func (r *comments) Update(ctx context.Context, comment *Comment) (*Comment, error) {
	now := time.Now()
	comment.UpdatedAt = &now

	_, err := r.db.NewUpdate().
		Model(comment).
		Column("content", "updated_at").
		WherePK().
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *comments) Delete(ctx context.Context, comment *Comment) error {
	_, err := r.db.NewDelete().
		Model(comment).
		WherePK().
		Exec(ctx)

	return err
}
