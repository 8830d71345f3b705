// Package blog implements a small authenticated blog backend: user
// registration with email verification, bearer-token sessions, and
// owner-guarded CRUD for posts and comments.
package blog
