package blog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the account model. Only the id and name are exposed over the
// API; credentials and verification state never leave the server.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID                     uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id"`
	Name                   string     `bun:"name,notnull" json:"name"`
	Email                  string     `bun:"email,notnull,unique" json:"-"`
	PasswordHash           string     `bun:"password_hash,notnull" json:"-"`
	EmailVerifiedAt        *time.Time `bun:"email_verified_at,nullzero" json:"-"`
	EmailVerificationToken []byte     `bun:"email_verification_token,nullzero" json:"-"`
	CreatedAt              *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"-"`
	UpdatedAt              *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"-"`
}

// Verified reports whether the account completed email verification.
func (u *User) Verified() bool {
	return u != nil && u.EmailVerifiedAt != nil
}

// Post is a blog entry. UserID is the owner and is immutable after
// creation; deleting a post removes its comments.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	UserID    uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id"`
	Title     string     `bun:"title,notnull" json:"title"`
	Content   string     `bun:"content,notnull" json:"content"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Comment belongs to a post. The user_id column is nullable in the
// schema but the API always records the authoring actor.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	PostID    int64      `bun:"post_id,notnull" json:"post_id"`
	UserID    uuid.UUID  `bun:"user_id,nullzero,type:uuid" json:"user_id"`
	Content   string     `bun:"content,notnull" json:"content"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// AccessToken is a bearer credential bound to a user. Only a SHA-256
// digest of the plaintext is persisted; the plaintext is handed out
// exactly once at login and the row is deleted at logout.
type AccessToken struct {
	bun.BaseModel `bun:"table:access_tokens,alias:tok"`

	ID          uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id"`
	UserID      uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id"`
	TokenDigest string     `bun:"token_digest,notnull,unique" json:"-"`
	CreatedAt   *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}
