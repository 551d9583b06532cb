package blogservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/store"
)

func NewBlogService(api API, state *store.State, mb common.MessageProducer, publicURL string, logger *slog.Logger) *BlogService {
	if mb == nil {
		mb = common.DiscardProducer{}
	}

	return &BlogService{
		api:       api,
		state:     state,
		mb:        mb,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// LoadPublished fetches the published blogs and replaces the cache with them.
func (s *BlogService) LoadPublished(ctx context.Context) ([]apiclient.Blog, error) {
	blogs, err := s.api.GetPublishedBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.state.SetBlogs(blogs)
	return blogs, nil
}

// LoadOwn fetches the blogs of the signed in user and replaces the cache with them.
func (s *BlogService) LoadOwn(ctx context.Context) ([]apiclient.Blog, error) {
	if !s.state.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	blogs, err := s.api.GetOwnBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.state.SetBlogs(blogs)
	return blogs, nil
}

// Find resolves a blog from the cache only. It never calls the backend.
func (s *BlogService) Find(id string) (*apiclient.Blog, error) {
	b, ok := s.state.FindBlog(id)
	if !ok {
		return nil, ErrNotFound
	}

	return &b, nil
}

// ToggleLike likes or unlikes the blog depending on whether the current user already likes it.
// The cache is rewritten only when the backend accepts the action.
func (s *BlogService) ToggleLike(ctx context.Context, id string) (*LikeResult, error) {
	userID := s.state.UserID()
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	b, ok := s.state.FindBlog(id)
	if !ok {
		return nil, ErrNotFound
	}

	liked := b.LikedBy(userID)

	var (
		res *apiclient.Response
		err error
	)
	if liked {
		res, err = s.api.DislikeBlog(ctx, id)
	} else {
		res, err = s.api.LikeBlog(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	var updated apiclient.Blog
	s.state.UpdateBlog(id, func(cached *apiclient.Blog) {
		cached.Likes = toggleMembership(cached.Likes, userID, !liked)
		updated = *cached
	})

	return &LikeResult{Liked: !liked, Count: updated.LikeCount(), Message: res.Message}, nil
}

// Create starts a draft with a title and category. Nothing is sent when either is invalid.
func (s *BlogService) Create(ctx context.Context, title, category string) (*apiclient.Blog, error) {
	title = strings.TrimSpace(title)

	v := common.NewValidator()
	validateTitle(v, title)
	validateCategory(v, category)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.api.CreateBlog(ctx, title, category)
	if err != nil {
		return nil, err
	}
	if res.Blog == nil || res.Blog.ID == "" {
		return nil, ErrUnexpected
	}

	s.state.AppendBlog(*res.Blog)
	return res.Blog, nil
}

// Update sends the edited blog. The thumbnail is uploaded only when form.Thumbnail is set.
// The category is not limited to Categories: a blog may carry one the backend assigned.
func (s *BlogService) Update(ctx context.Context, id string, form apiclient.BlogForm) (*apiclient.Response, error) {
	form.Title = strings.TrimSpace(form.Title)

	v := common.NewValidator()
	validateID(v, id)
	validateTitle(v, form.Title)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.api.EditBlog(ctx, id, form)
	if err != nil {
		return nil, err
	}

	if res.Blog != nil {
		b := *res.Blog
		if b.ID == "" {
			b.ID = id
		}
		s.state.ReplaceBlog(b)
	}

	return &res.Response, nil
}

// SetPublished publishes or unpublishes a blog and mirrors the result in the cache.
// Publishing also announces the blog on the message broker.
func (s *BlogService) SetPublished(ctx context.Context, id string, publish bool) (*apiclient.Response, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.api.SetPublished(ctx, id, publish)
	if err != nil {
		return nil, err
	}

	var title string
	s.state.UpdateBlog(id, func(b *apiclient.Blog) {
		b.IsPublished = publish
		title = b.Title
	})

	if publish {
		s.announce(ctx, id, title)
	}

	return res, nil
}

func (s *BlogService) announce(ctx context.Context, id, title string) {
	user := s.state.User()
	if user == nil || user.Email == "" {
		return
	}

	msg, err := json.Marshal(common.BlogPublished{
		BlogID:      id,
		Title:       title,
		URL:         s.publicURL + "/blogs/" + id,
		AuthorEmail: user.Email,
		AuthorName:  user.FullName(),
	})
	if err != nil {
		s.logger.Error("failed to encode publish event", slog.String("blog_id", id), slog.String("error", err.Error()))
		return
	}

	err = s.mb.Publish(ctx, msg, common.BlogPublishedKey, common.BlogExchange)
	if err != nil {
		s.logger.Error("failed to publish blog event", slog.String("blog_id", id), slog.String("error", err.Error()))
	}
}

// Delete removes the blog on the backend and then from the cache.
func (s *BlogService) Delete(ctx context.Context, id string) (*apiclient.Response, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.api.DeleteBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	s.state.RemoveBlog(id)
	return res, nil
}

// Search filters the cached blogs. The published list is fetched first when the cache is empty.
func (s *BlogService) Search(ctx context.Context, query string) ([]apiclient.Blog, error) {
	blogs := s.state.Blogs()
	if len(blogs) == 0 {
		var err error
		blogs, err = s.LoadPublished(ctx)
		if err != nil {
			return nil, err
		}
	}

	return filterBlogs(blogs, query), nil
}

// Stats counts the signed in user's blogs, the likes on them and the comments on them.
func (s *BlogService) Stats(ctx context.Context) (*Stats, error) {
	blogs, err := s.LoadOwn(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.api.GetMyBlogComments(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalBlogs:    len(blogs),
		TotalLikes:    totalLikes(blogs),
		TotalComments: len(comments),
	}, nil
}
