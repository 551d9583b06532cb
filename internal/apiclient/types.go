package apiclient

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// User is the account record returned by the backend.
type User struct {
	ID         string `json:"_id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	Occupation string `json:"occupation"`
	Facebook   string `json:"facebook"`
	LinkedIn   string `json:"linkedin"`
	Instagram  string `json:"instagram"`
	GitHub     string `json:"github"`
	PhotoURL   string `json:"photoUrl"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Author is a User reference that the backend sends either populated or as a bare id.
type Author struct {
	User
}

func (a *Author) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.ID)
	}

	return json.Unmarshal(data, &a.User)
}

// PostRef is a Blog reference that the backend sends either populated or as a bare id.
type PostRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

func (p *PostRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &p.ID)
	}

	type plain PostRef
	return json.Unmarshal(data, (*plain)(p))
}

type Blog struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Thumbnail   string    `json:"thumbnail"`
	Author      Author    `json:"author"`
	IsPublished bool      `json:"isPublished"`
	Likes       []string  `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LikedBy reports whether the user id is in the blog's like list.
func (b Blog) LikedBy(userID string) bool {
	return userID != "" && slices.Contains(b.Likes, userID)
}

func (b Blog) LikeCount() int {
	return len(b.Likes)
}

type Comment struct {
	ID            string    `json:"_id"`
	Content       string    `json:"content"`
	Author        Author    `json:"userId"`
	Post          PostRef   `json:"postId"`
	Likes         []string  `json:"likes"`
	NumberOfLikes int       `json:"numberOfLikes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (c Comment) LikedBy(userID string) bool {
	return userID != "" && slices.Contains(c.Likes, userID)
}

// Response is the envelope every backend call answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r *Response) envelope() *Response {
	return r
}

type LoginResponse struct {
	Response
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UserResponse struct {
	Response
	User *User `json:"user"`
}

type BlogResponse struct {
	Response
	Blog *Blog `json:"blog"`
}

type BlogsResponse struct {
	Response
	Blogs []Blog `json:"blogs"`
}

type CommentsResponse struct {
	Response
	Comments []Comment `json:"comments"`
}
