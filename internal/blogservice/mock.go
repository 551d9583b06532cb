package blogservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) GetPublishedBlogs(ctx context.Context) ([]apiclient.Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]apiclient.Blog)
	return blogs, args.Error(1)
}

func (m *MockAPI) GetOwnBlogs(ctx context.Context) ([]apiclient.Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]apiclient.Blog)
	return blogs, args.Error(1)
}

func (m *MockAPI) CreateBlog(ctx context.Context, title, category string) (*apiclient.BlogResponse, error) {
	args := m.Called(ctx, title, category)
	res, _ := args.Get(0).(*apiclient.BlogResponse)
	return res, args.Error(1)
}

func (m *MockAPI) EditBlog(ctx context.Context, id string, form apiclient.BlogForm) (*apiclient.BlogResponse, error) {
	args := m.Called(ctx, id, form)
	res, _ := args.Get(0).(*apiclient.BlogResponse)
	return res, args.Error(1)
}

func (m *MockAPI) SetPublished(ctx context.Context, id string, publish bool) (*apiclient.Response, error) {
	args := m.Called(ctx, id, publish)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) DeleteBlog(ctx context.Context, id string) (*apiclient.Response, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) LikeBlog(ctx context.Context, id string) (*apiclient.Response, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) DislikeBlog(ctx context.Context, id string) (*apiclient.Response, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) GetMyBlogComments(ctx context.Context) ([]apiclient.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]apiclient.Comment)
	return comments, args.Error(1)
}

type MockMessageProducer struct {
	mock.Mock
}

func (m *MockMessageProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	args := m.Called(ctx, msg, key, exchange)
	return args.Error(0)
}
