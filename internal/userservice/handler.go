package userservice

import (
	"context"
	"strings"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/store"
)

func NewUserService(api API, state *store.State) *UserService {
	return &UserService{api: api, state: state}
}

// Login authenticates against the backend and stores the token and user in the session.
// Nothing is stored when the backend refuses.
func (s *UserService) Login(ctx context.Context, email, password string) (*apiclient.LoginResponse, error) {
	email = strings.TrimSpace(email)

	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.api.Login(ctx, apiclient.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, ErrNoToken
	}

	s.state.SignIn(res.Token, res.User)
	return res, nil
}

// Signup creates an account. The user still has to log in afterwards.
func (s *UserService) Signup(ctx context.Context, reg apiclient.Registration) (*apiclient.Response, error) {
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	reg.Email = strings.TrimSpace(reg.Email)

	v := common.NewValidator()
	validateName(v, reg.FirstName, "firstName")
	validateName(v, reg.LastName, "lastName")
	validateEmail(v, reg.Email)
	validateNewPassword(v, reg.Password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.api.Register(ctx, reg)
}

func (s *UserService) Logout() {
	s.state.SignOut()
}

// UpdateProfile sends the profile form. The avatar is uploaded only when form.Avatar is set.
// On success the session user is replaced with the one the backend returns.
func (s *UserService) UpdateProfile(ctx context.Context, form apiclient.ProfileForm) (*apiclient.UserResponse, error) {
	if s.state.Token() == "" {
		return nil, ErrNotAuthenticated
	}

	v := common.NewValidator()
	validateProfile(v, form)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.api.UpdateProfile(ctx, form)
	if err != nil {
		return nil, err
	}

	if res.User != nil {
		s.state.SetUser(*res.User)
	}

	return res, nil
}
