package blog

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RedeemVerificationSQL clears the verification token and stamps the
// verification time in one conditional update. The WHERE clause pins
// the stored token to the expected bytes so two concurrent redemption
// attempts cannot both succeed.
var RedeemVerificationSQL = `UPDATE "users" AS "usr"
SET
	"email_verified_at" = ?,
	"email_verification_token" = NULL
WHERE
	"usr"."email" = ?
AND (
	"usr"."email_verification_token" = ?
) RETURNING *;`

type Users interface {
	repository.Repository[*User]

	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)
	RedeemVerification(ctx context.Context, email string, token []byte) (*User, error)
	RedeemVerificationTx(ctx context.Context, tx bun.IDB, email string, token []byte) (*User, error)
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users                        = (*users)(nil)
	_ repository.Repository[*User] = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	prepareUserDefaults(user)
	return a.Repository.CreateTx(ctx, tx, user)
}

func (a *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return a.GetByEmailTx(ctx, a.db, email)
}

// GetByEmailTx matches the stored email exactly and case sensitively;
// duplicate detection depends on that.
func (a *users) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	record := &User{}

	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"email": email,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *users) RedeemVerification(ctx context.Context, email string, token []byte) (*User, error) {
	return a.RedeemVerificationTx(ctx, a.db, email, token)
}

func (a *users) RedeemVerificationTx(ctx context.Context, tx bun.IDB, email string, token []byte) (*User, error) {
	res, err := a.Repository.RawTx(ctx, tx, RedeemVerificationSQL, time.Now(), email, token)
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		// No row carried the expected token bytes: unknown email,
		// tampered token, or a token already redeemed.
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{
				"email": email,
			})
	}

	return res[0], nil
}

func prepareUserDefaults(record *User) {
	if record == nil {
		return
	}

	if record.ID == uuid.Nil {
		if id, err := hashid.NewUUID(record.Email); err == nil {
			record.ID = id
		} else {
			record.ID = uuid.New()
		}
	}
}
