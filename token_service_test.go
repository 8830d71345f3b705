package blog_test

import (
	"context"
	"testing"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct {
	byDigest map[string]*blog.AccessToken
}

func newMemTokens() *memTokens {
	return &memTokens{byDigest: map[string]*blog.AccessToken{}}
}

func (m *memTokens) Create(_ context.Context, token *blog.AccessToken) (*blog.AccessToken, error) {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	m.byDigest[token.TokenDigest] = token
	return token, nil
}

func (m *memTokens) GetByDigest(_ context.Context, digest string) (*blog.AccessToken, error) {
	record, ok := m.byDigest[digest]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (m *memTokens) DeleteByDigest(_ context.Context, digest string) error {
	delete(m.byDigest, digest)
	return nil
}

func TestTokenServiceIssueAndResolve(t *testing.T) {
	ctx := context.Background()
	store := newMemTokens()
	svc := blog.NewTokenService(store, nil)

	userID := uuid.New()

	plaintext, err := svc.Issue(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, plaintext)

	// The store never sees the plaintext form.
	_, stored := store.byDigest[plaintext]
	assert.False(t, stored)

	got, err := svc.Resolve(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenServiceIssueIsUnique(t *testing.T) {
	ctx := context.Background()
	svc := blog.NewTokenService(newMemTokens(), nil)

	userID := uuid.New()

	first, err := svc.Issue(ctx, userID)
	require.NoError(t, err)

	second, err := svc.Issue(ctx, userID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenServiceResolveUnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := blog.NewTokenService(newMemTokens(), nil)

	_, err := svc.Resolve(ctx, "never-issued")
	assert.Error(t, err)
}

func TestTokenServiceRevoke(t *testing.T) {
	ctx := context.Background()
	svc := blog.NewTokenService(newMemTokens(), nil)

	plaintext, err := svc.Issue(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, plaintext))

	_, err = svc.Resolve(ctx, plaintext)
	assert.Error(t, err, "revoked token must not resolve")

	// Revoking again is a no-op.
	assert.NoError(t, svc.Revoke(ctx, plaintext))
}
