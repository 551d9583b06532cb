package commentservice

import (
	"context"
	"errors"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/store"
)

var (
	ErrMissingPostID    = errors.New("Error: Missing post ID for comments")
	ErrNotAuthenticated = errors.New("not authenticated")
)

type API interface {
	GetComments(ctx context.Context, postID string) ([]apiclient.Comment, error)
	CreateComment(ctx context.Context, postID, content string) (*apiclient.Response, error)
	LikeComment(ctx context.Context, commentID string) (*apiclient.Response, error)
	EditComment(ctx context.Context, commentID, content string) (*apiclient.Response, error)
	DeleteComment(ctx context.Context, commentID string) (*apiclient.Response, error)
	GetMyBlogComments(ctx context.Context) ([]apiclient.Comment, error)
}

// CommentBox manages the comments of a single post for one session.
type CommentBox struct {
	api    API
	state  *store.State
	postID string
}

// CommentView is a comment as the page renders it.
type CommentView struct {
	ID         string
	Content    string
	AuthorName string
	AuthorID   string
	PhotoURL   string
	PostID     string
	PostTitle  string
	LikeCount  int
	CreatedAt  time.Time

	Liked   bool
	Editing bool
	Owned   bool
}
