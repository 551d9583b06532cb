package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// BlogForm is the multipart payload of a blog edit. Thumbnail is sent as "file" only when set.
type BlogForm struct {
	Title       string
	Subtitle    string
	Description string
	Category    string
	Thumbnail   *Upload
}

func (c *Client) GetPublishedBlogs(ctx context.Context) ([]Blog, error) {
	var res BlogsResponse
	err := c.do(ctx, http.MethodGet, "/blog/get-published-blogs", nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return res.Blogs, nil
}

func (c *Client) GetOwnBlogs(ctx context.Context) ([]Blog, error) {
	var res BlogsResponse
	err := c.do(ctx, http.MethodGet, "/blog/get-own-blogs", nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return res.Blogs, nil
}

func (c *Client) CreateBlog(ctx context.Context, title, category string) (*BlogResponse, error) {
	payload := map[string]string{"title": title, "category": category}

	var res BlogResponse
	err := c.doJSON(ctx, http.MethodPost, "/blog/", payload, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) EditBlog(ctx context.Context, id string, form BlogForm) (*BlogResponse, error) {
	fields := []formField{
		{"title", form.Title},
		{"subtitle", form.Subtitle},
		{"description", form.Description},
		{"category", form.Category},
	}

	body, contentType, err := encodeMultipart(fields, map[string]*Upload{"file": form.Thumbnail})
	if err != nil {
		return nil, err
	}

	var res BlogResponse
	err = c.do(ctx, http.MethodPut, "/blog/edit/"+escape(id), nil, body, contentType, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// SetPublished asks the backend to publish (true) or unpublish (false) the blog.
func (c *Client) SetPublished(ctx context.Context, id string, publish bool) (*Response, error) {
	query := url.Values{"action": {strconv.FormatBool(publish)}}

	var res Response
	err := c.do(ctx, http.MethodPatch, "/blog/action/"+escape(id)+"/publish", query, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) (*Response, error) {
	var res Response
	err := c.do(ctx, http.MethodDelete, "/blog/delete/"+escape(id), nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) LikeBlog(ctx context.Context, id string) (*Response, error) {
	return c.blogAction(ctx, id, "like")
}

func (c *Client) DislikeBlog(ctx context.Context, id string) (*Response, error) {
	return c.blogAction(ctx, id, "dislike")
}

func (c *Client) blogAction(ctx context.Context, id, action string) (*Response, error) {
	var res Response
	err := c.do(ctx, http.MethodGet, "/blog/action/"+escape(id)+"/"+action, nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
