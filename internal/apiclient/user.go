package apiclient

import (
	"context"
	"net/http"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProfileForm is the multipart payload of a profile update. Avatar is sent only when set.
type ProfileForm struct {
	FirstName  string
	LastName   string
	Bio        string
	Occupation string
	Facebook   string
	LinkedIn   string
	Instagram  string
	GitHub     string
	Avatar     *Upload
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var res LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/user/login", creds, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*Response, error) {
	var res Response
	err := c.doJSON(ctx, http.MethodPost, "/user/register", reg, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) UpdateProfile(ctx context.Context, form ProfileForm) (*UserResponse, error) {
	fields := []formField{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"bio", form.Bio},
		{"occupation", form.Occupation},
		{"facebook", form.Facebook},
		{"linkedin", form.LinkedIn},
		{"instagram", form.Instagram},
		{"github", form.GitHub},
	}

	body, contentType, err := encodeMultipart(fields, map[string]*Upload{"avatar": form.Avatar})
	if err != nil {
		return nil, err
	}

	var res UserResponse
	err = c.do(ctx, http.MethodPut, "/user/profile/update", nil, body, contentType, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
