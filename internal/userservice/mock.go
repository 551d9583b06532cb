package userservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/blogfront/internal/apiclient"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.LoginResponse, error) {
	args := m.Called(ctx, creds)
	res, _ := args.Get(0).(*apiclient.LoginResponse)
	return res, args.Error(1)
}

func (m *MockAPI) Register(ctx context.Context, reg apiclient.Registration) (*apiclient.Response, error) {
	args := m.Called(ctx, reg)
	res, _ := args.Get(0).(*apiclient.Response)
	return res, args.Error(1)
}

func (m *MockAPI) UpdateProfile(ctx context.Context, form apiclient.ProfileForm) (*apiclient.UserResponse, error) {
	args := m.Called(ctx, form)
	res, _ := args.Get(0).(*apiclient.UserResponse)
	return res, args.Error(1)
}
