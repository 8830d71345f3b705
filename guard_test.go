package blog_test

import (
	"testing"

	blog "github.com/goliatone/go-blog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutatePost(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	post := &blog.Post{ID: 1, UserID: owner}

	tests := []struct {
		name  string
		actor uuid.UUID
		post  *blog.Post
		want  bool
	}{
		{name: "owner may mutate", actor: owner, post: post, want: true},
		{name: "non owner may not", actor: other, post: post, want: false},
		{name: "nil post", actor: owner, post: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blog.CanMutatePost(tt.actor, tt.post))
		})
	}
}

func TestCanUpdateComment(t *testing.T) {
	author := uuid.New()
	postOwner := uuid.New()

	comment := &blog.Comment{ID: 1, PostID: 1, UserID: author}

	tests := []struct {
		name  string
		actor uuid.UUID
		want  bool
	}{
		{name: "author may edit", actor: author, want: true},
		// Moderation grants delete, never edit.
		{name: "post owner may not edit", actor: postOwner, want: false},
		{name: "stranger may not edit", actor: uuid.New(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blog.CanUpdateComment(tt.actor, comment))
		})
	}

	assert.False(t, blog.CanUpdateComment(author, nil))
}

func TestCanDeleteComment(t *testing.T) {
	author := uuid.New()
	postOwner := uuid.New()

	post := &blog.Post{ID: 1, UserID: postOwner}
	comment := &blog.Comment{ID: 1, PostID: 1, UserID: author}

	tests := []struct {
		name  string
		actor uuid.UUID
		want  bool
	}{
		{name: "author may delete", actor: author, want: true},
		{name: "post owner may moderate", actor: postOwner, want: true},
		{name: "stranger may not delete", actor: uuid.New(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blog.CanDeleteComment(tt.actor, comment, post))
		})
	}

	assert.False(t, blog.CanDeleteComment(author, nil, post))
	assert.True(t, blog.CanDeleteComment(author, comment, nil), "author needs no parent post to delete")
}
