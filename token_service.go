package blog

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// TokenService issues, resolves, and revokes bearer access tokens. The
// plaintext token is random and handed out exactly once; the store only
// keeps a SHA-256 digest, so a leaked database cannot replay sessions
// and revocation is immediate and final.
type TokenService struct {
	tokens AccessTokens
	logger Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(tokens AccessTokens, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		tokens: tokens,
		logger: logger,
	}
}

// Issue creates a bearer credential bound to userID and returns its
// plaintext form.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate access token")
	}

	plaintext := base64.RawURLEncoding.EncodeToString(secret)

	_, err := s.tokens.Create(ctx, &AccessToken{
		UserID:      userID,
		TokenDigest: digestToken(plaintext),
	})
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist access token")
	}

	return plaintext, nil
}

// Resolve maps a presented bearer token back to its user. Unknown and
// revoked tokens are indistinguishable to the caller.
func (s *TokenService) Resolve(ctx context.Context, plaintext string) (uuid.UUID, error) {
	record, err := s.tokens.GetByDigest(ctx, digestToken(plaintext))
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return uuid.Nil, ErrUnauthenticated()
		}
		return uuid.Nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to resolve access token")
	}

	return record.UserID, nil
}

// Revoke deletes the credential; revoking twice is a no-op.
func (s *TokenService) Revoke(ctx context.Context, plaintext string) error {
	if err := s.tokens.DeleteByDigest(ctx, digestToken(plaintext)); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to revoke access token")
	}
	return nil
}

func digestToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
