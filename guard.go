package blog

import "github.com/google/uuid"

// The ownership guard is a set of pure decision functions over records
// that have already been loaded; it never reaches into storage. Any
// false answer must short-circuit the request into an unauthorised
// outcome before a mutation is attempted.

// CanMutatePost reports whether actor may update or delete the post.
func CanMutatePost(actorID uuid.UUID, post *Post) bool {
	return post != nil && actorID == post.UserID
}

// CanUpdateComment reports whether actor may edit the comment. Only the
// comment owner can edit; moderation does not grant update rights.
func CanUpdateComment(actorID uuid.UUID, comment *Comment) bool {
	return comment != nil && actorID == comment.UserID
}

// CanDeleteComment reports whether actor may delete the comment. The
// parent post owner can moderate comments on their own posts.
func CanDeleteComment(actorID uuid.UUID, comment *Comment, parent *Post) bool {
	if comment == nil {
		return false
	}
	if actorID == comment.UserID {
		return true
	}
	return parent != nil && actorID == parent.UserID
}
