package userservice

import (
	"context"
	"errors"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/store"
)

var (
	ErrNotAuthenticated = errors.New("User not authenticated. Please log in again.")
	ErrNoToken          = errors.New("login response carried no token")
)

type API interface {
	Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.LoginResponse, error)
	Register(ctx context.Context, reg apiclient.Registration) (*apiclient.Response, error)
	UpdateProfile(ctx context.Context, form apiclient.ProfileForm) (*apiclient.UserResponse, error)
}

// UserService runs the account flows of one session.
type UserService struct {
	api   API
	state *store.State
}
