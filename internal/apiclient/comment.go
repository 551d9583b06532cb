package apiclient

import (
	"context"
	"net/http"
)

type commentPayload struct {
	Content string `json:"content"`
}

func (c *Client) GetComments(ctx context.Context, postID string) ([]Comment, error) {
	var res CommentsResponse
	err := c.do(ctx, http.MethodGet, "/comment/"+escape(postID), nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return res.Comments, nil
}

func (c *Client) CreateComment(ctx context.Context, postID, content string) (*Response, error) {
	var res Response
	err := c.doJSON(ctx, http.MethodPost, "/comment/"+escape(postID), commentPayload{Content: content}, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) LikeComment(ctx context.Context, commentID string) (*Response, error) {
	var res Response
	err := c.doJSON(ctx, http.MethodPatch, "/comment/like/"+escape(commentID), struct{}{}, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) EditComment(ctx context.Context, commentID, content string) (*Response, error) {
	var res Response
	err := c.doJSON(ctx, http.MethodPut, "/comment/"+escape(commentID), commentPayload{Content: content}, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) (*Response, error) {
	var res Response
	err := c.do(ctx, http.MethodDelete, "/comment/"+escape(commentID), nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// GetMyBlogComments lists the comments left on the current user's blogs.
func (c *Client) GetMyBlogComments(ctx context.Context) ([]Comment, error) {
	var res CommentsResponse
	err := c.do(ctx, http.MethodGet, "/comment/my-blogs/comments", nil, nil, "", &res)
	if err != nil {
		return nil, err
	}

	return res.Comments, nil
}
