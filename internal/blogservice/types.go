package blogservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/store"
)

var (
	ErrNotFound         = errors.New("blog not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnexpected       = errors.New("unexpected response")
)

// Categories are the blog categories offered by the editor.
var Categories = []string{
	"Web Development",
	"Digital Marketing",
	"Blogging",
	"Photography",
	"Cooking",
}

// API is the part of the backend client the blog flows use.
type API interface {
	GetPublishedBlogs(ctx context.Context) ([]apiclient.Blog, error)
	GetOwnBlogs(ctx context.Context) ([]apiclient.Blog, error)
	CreateBlog(ctx context.Context, title, category string) (*apiclient.BlogResponse, error)
	EditBlog(ctx context.Context, id string, form apiclient.BlogForm) (*apiclient.BlogResponse, error)
	SetPublished(ctx context.Context, id string, publish bool) (*apiclient.Response, error)
	DeleteBlog(ctx context.Context, id string) (*apiclient.Response, error)
	LikeBlog(ctx context.Context, id string) (*apiclient.Response, error)
	DislikeBlog(ctx context.Context, id string) (*apiclient.Response, error)
	GetMyBlogComments(ctx context.Context) ([]apiclient.Comment, error)
}

// BlogService runs the blog flows of one session against the backend.
type BlogService struct {
	api       API
	state     *store.State
	mb        common.MessageProducer
	publicURL string
	logger    *slog.Logger
}

type LikeResult struct {
	Liked   bool
	Count   int
	Message string
}

type Stats struct {
	TotalBlogs    int
	TotalLikes    int
	TotalComments int
}
