package commentservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/blogfront/internal/apiclient"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) GetComments(ctx context.Context, postID string) ([]apiclient.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]apiclient.Comment)
	return comments, args.Error(1)
}

func (m *MockAPI) CreateComment(ctx context.Context, postID, content string) (*apiclient.Response, error) {
	args := m.Called(ctx, postID, content)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) LikeComment(ctx context.Context, commentID string) (*apiclient.Response, error) {
	args := m.Called(ctx, commentID)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) EditComment(ctx context.Context, commentID, content string) (*apiclient.Response, error) {
	args := m.Called(ctx, commentID, content)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) DeleteComment(ctx context.Context, commentID string) (*apiclient.Response, error) {
	args := m.Called(ctx, commentID)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) GetMyBlogComments(ctx context.Context) ([]apiclient.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]apiclient.Comment)
	return comments, args.Error(1)
}
