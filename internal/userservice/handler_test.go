package userservice

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/store"
)

func setupTestService(t *testing.T) (*UserService, *MockAPI, *store.State) {
	t.Helper()

	api := new(MockAPI)
	state := store.NewState()
	return NewUserService(api, state), api, state
}

func TestLogin(t *testing.T) {
	t.Run("success stores token and user", func(t *testing.T) {
		s, api, state := setupTestService(t)
		api.On("Login", mock.Anything, apiclient.Credentials{Email: "ada@example.com", Password: "secret"}).
			Return(&apiclient.LoginResponse{
				Response: apiclient.Response{Success: true, Message: "Welcome back Ada"},
				Token:    "jwt",
				User:     apiclient.User{ID: "u1", FirstName: "Ada"},
			}, nil)

		res, err := s.Login(context.Background(), " ada@example.com ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "Welcome back Ada", res.Message)
		assert.Equal(t, "jwt", state.Token())
		assert.Equal(t, "u1", state.UserID())
	})

	t.Run("rejected credentials store nothing", func(t *testing.T) {
		s, api, state := setupTestService(t)
		api.On("Login", mock.Anything, mock.Anything).
			Return(nil, &apiclient.APIError{Status: 400, Message: "Incorrect email or password"})

		_, err := s.Login(context.Background(), "ada@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Incorrect email or password", apiclient.MessageOr(err, "Login failed"))
		assert.Empty(t, state.Token())
		assert.False(t, state.IsAuthenticated())
	})

	t.Run("missing token", func(t *testing.T) {
		s, api, state := setupTestService(t)
		api.On("Login", mock.Anything, mock.Anything).
			Return(&apiclient.LoginResponse{Response: apiclient.Response{Success: true}}, nil)

		_, err := s.Login(context.Background(), "ada@example.com", "secret")
		assert.ErrorIs(t, err, ErrNoToken)
		assert.False(t, state.IsAuthenticated())
	})

	t.Run("validation", func(t *testing.T) {
		s, api, _ := setupTestService(t)

		_, err := s.Login(context.Background(), "", "")

		var verr common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "email")
		assert.Contains(t, verr.Errors, "password")
		assert.Empty(t, api.Calls)
	})
}

func TestSignup(t *testing.T) {
	s, api, state := setupTestService(t)
	reg := apiclient.Registration{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "engines"}
	api.On("Register", mock.Anything, reg).Return(&apiclient.Response{Success: true, Message: "Account Created Successfully"}, nil)

	res, err := s.Signup(context.Background(), apiclient.Registration{
		FirstName: " Ada ", LastName: "Lovelace", Email: "ada@example.com", Password: "engines",
	})
	require.NoError(t, err)
	assert.Equal(t, "Account Created Successfully", res.Message)
	assert.False(t, state.IsAuthenticated())

	_, err = s.Signup(context.Background(), apiclient.Registration{Email: "nope"})
	var verr common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 4)
	api.AssertNumberOfCalls(t, "Register", 1)
}

func TestLogout(t *testing.T) {
	s, _, state := setupTestService(t)
	state.SignIn("jwt", apiclient.User{ID: "u1"})

	s.Logout()
	assert.Empty(t, state.Token())
	assert.Nil(t, state.User())
}

func TestUpdateProfile(t *testing.T) {
	t.Run("requires token", func(t *testing.T) {
		s, api, _ := setupTestService(t)

		_, err := s.UpdateProfile(context.Background(), apiclient.ProfileForm{FirstName: "Ada"})
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.Equal(t, "User not authenticated. Please log in again.", err.Error())
		assert.Empty(t, api.Calls)
	})

	t.Run("success replaces user", func(t *testing.T) {
		s, api, state := setupTestService(t)
		state.SignIn("jwt", apiclient.User{ID: "u1", FirstName: "Ada"})

		form := apiclient.ProfileForm{FirstName: "Augusta", Bio: "math"}
		api.On("UpdateProfile", mock.Anything, form).Return(&apiclient.UserResponse{
			Response: apiclient.Response{Success: true, Message: "Profile updated successfully."},
			User:     &apiclient.User{ID: "u1", FirstName: "Augusta", Bio: "math"},
		}, nil)

		_, err := s.UpdateProfile(context.Background(), form)
		require.NoError(t, err)
		assert.Equal(t, "Augusta", state.User().FirstName)
		assert.Equal(t, "jwt", state.Token())
	})

	t.Run("avatar passed through only when uploaded", func(t *testing.T) {
		s, api, state := setupTestService(t)
		state.SignIn("jwt", apiclient.User{ID: "u1"})

		api.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(f apiclient.ProfileForm) bool {
			return f.Avatar != nil && f.Avatar.Filename == "me.png"
		})).Return(&apiclient.UserResponse{Response: apiclient.Response{Success: true}}, nil)

		_, err := s.UpdateProfile(context.Background(), apiclient.ProfileForm{
			Avatar: &apiclient.Upload{Filename: "me.png", ContentType: "image/png", Body: strings.NewReader("png")},
		})
		require.NoError(t, err)
		api.AssertExpectations(t)
		assert.Equal(t, "u1", state.UserID())
	})

	t.Run("failure keeps user", func(t *testing.T) {
		s, api, state := setupTestService(t)
		state.SignIn("jwt", apiclient.User{ID: "u1", FirstName: "Ada"})
		api.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil, &apiclient.APIError{Status: 500})

		_, err := s.UpdateProfile(context.Background(), apiclient.ProfileForm{FirstName: "X"})
		assert.Error(t, err)
		assert.Equal(t, "Ada", state.User().FirstName)
	})
}
