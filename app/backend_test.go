package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
)

const (
	testEmail    = "ada@example.com"
	testPassword = "secret"
	testToken    = "tok-ada"
)

// fakeBackend is an in-memory stand-in for the blog REST API.
type fakeBackend struct {
	mu       sync.Mutex
	user     apiclient.User
	blogs    []apiclient.Blog
	comments []apiclient.Comment
	nextID   int
	expired  bool

	// commentsDown makes comment listing fail while every other endpoint keeps working.
	commentsDown bool

	calls []string
	last  lastRequest
}

// lastRequest holds what the most recent upload, publish and authenticated calls carried.
type lastRequest struct {
	avatar  string
	file    string
	fields  map[string]string
	publish string
	authz   string
}

func newFakeBackend() *fakeBackend {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	return &fakeBackend{
		user: apiclient.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: testEmail},
		blogs: []apiclient.Blog{
			{ID: "b1", Title: "Sourdough at home", Subtitle: "Starter basics", Description: "<p>Feed it daily.</p><script>alert(1)</script>", Category: "Cooking", Author: apiclient.Author{User: apiclient.User{ID: "u2", FirstName: "Grace", LastName: "Hopper"}}, IsPublished: true, Likes: []string{"u2"}, CreatedAt: created},
			{ID: "b2", Title: "Night skies", Description: "<p>Long exposure.</p>", Category: "Photography", Author: apiclient.Author{User: apiclient.User{ID: "u1"}}, IsPublished: true, CreatedAt: created},
			{ID: "b3", Title: "Draft notes", Category: "Blogging", Author: apiclient.Author{User: apiclient.User{ID: "u1"}}, CreatedAt: created},
		},
		comments: []apiclient.Comment{
			{ID: "c1", Content: "Great read", Author: apiclient.Author{User: apiclient.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace"}}, Post: apiclient.PostRef{ID: "b1"}},
			{ID: "c2", Content: "Lovely photos", Author: apiclient.Author{User: apiclient.User{ID: "u2", FirstName: "Grace"}}, Post: apiclient.PostRef{ID: "b2", Title: "Night skies"}},
		},
		nextID: 100,
	}
}

func (f *fakeBackend) expire() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expired = true
}

func (f *fakeBackend) setCommentsDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commentsDown = down
}

func (f *fakeBackend) setCategory(id, category string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.blogIndex(id); i >= 0 {
		f.blogs[i].Category = category
	}
}

func (f *fakeBackend) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeBackend) callCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeBackend) latest() lastRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeBackend) blog(id string) (apiclient.Blog, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.blogIndex(id)
	if i < 0 {
		return apiclient.Blog{}, false
	}
	return f.blogs[i], true
}

func (f *fakeBackend) blogIndex(id string) int {
	for i, b := range f.blogs {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func reply(w http.ResponseWriter, status int, data map[string]any) {
	if _, ok := data["success"]; !ok {
		data["success"] = status < 300
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	// auth wraps handlers that need a valid bearer token and records every call.
	auth := func(h func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.last.authz = r.Header.Get("Authorization")
			ok := !f.expired && f.last.authz == "Bearer "+testToken
			f.mu.Unlock()

			if !ok {
				reply(w, http.StatusUnauthorized, map[string]any{"message": "User not authenticated"})
				return
			}

			h(w, r)
		}
	}

	record := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.calls = append(f.calls, r.Method+" "+r.URL.Path)
			f.mu.Unlock()
			h(w, r)
		}
	}

	mux.HandleFunc("POST /user/login", record(func(w http.ResponseWriter, r *http.Request) {
		var creds apiclient.Credentials
		json.NewDecoder(r.Body).Decode(&creds)

		if creds.Email != testEmail || creds.Password != testPassword {
			reply(w, http.StatusBadRequest, map[string]any{"message": "Incorrect email or password"})
			return
		}

		f.mu.Lock()
		f.expired = false
		user := f.user
		f.mu.Unlock()

		reply(w, http.StatusOK, map[string]any{"message": "Welcome back Ada", "token": testToken, "user": user})
	}))

	mux.HandleFunc("POST /user/register", record(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusCreated, map[string]any{"message": "Account Created Successfully"})
	}))

	mux.HandleFunc("PUT /user/profile/update", record(auth(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			reply(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		f.last.fields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			f.last.fields[k] = v[0]
		}
		f.last.avatar = ""
		if files := r.MultipartForm.File["avatar"]; len(files) > 0 {
			f.last.avatar = files[0].Filename
			f.user.PhotoURL = "https://cdn.example.com/" + files[0].Filename
		}

		f.user.FirstName = r.FormValue("firstName")
		f.user.LastName = r.FormValue("lastName")
		f.user.Bio = r.FormValue("bio")

		reply(w, http.StatusOK, map[string]any{"message": "Profile updated successfully", "user": f.user})
	})))

	mux.HandleFunc("GET /blog/get-published-blogs", record(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var blogs []apiclient.Blog
		for _, b := range f.blogs {
			if b.IsPublished {
				blogs = append(blogs, b)
			}
		}
		reply(w, http.StatusOK, map[string]any{"blogs": blogs})
	}))

	mux.HandleFunc("GET /blog/get-own-blogs", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var blogs []apiclient.Blog
		for _, b := range f.blogs {
			if b.Author.ID == f.user.ID {
				blogs = append(blogs, b)
			}
		}
		reply(w, http.StatusOK, map[string]any{"blogs": blogs})
	})))

	mux.HandleFunc("POST /blog/", record(auth(func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Title    string `json:"title"`
			Category string `json:"category"`
		}
		json.NewDecoder(r.Body).Decode(&input)

		f.mu.Lock()
		defer f.mu.Unlock()

		f.nextID++
		b := apiclient.Blog{ID: fmt.Sprintf("b%d", f.nextID), Title: input.Title, Category: input.Category, Author: apiclient.Author{User: apiclient.User{ID: f.user.ID}}}
		f.blogs = append(f.blogs, b)

		reply(w, http.StatusCreated, map[string]any{"message": "Blog created successfully", "blog": b})
	})))

	mux.HandleFunc("PUT /blog/edit/{id}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			reply(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		i := f.blogIndex(r.PathValue("id"))
		if i < 0 {
			reply(w, http.StatusNotFound, map[string]any{"message": "Blog not found"})
			return
		}

		f.last.file = ""
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			f.last.file = files[0].Filename
			f.blogs[i].Thumbnail = "https://cdn.example.com/" + files[0].Filename
		}

		f.blogs[i].Title = r.FormValue("title")
		f.blogs[i].Subtitle = r.FormValue("subtitle")
		f.blogs[i].Description = r.FormValue("description")
		f.blogs[i].Category = r.FormValue("category")

		reply(w, http.StatusOK, map[string]any{"message": "Blog updated successfully", "blog": f.blogs[i]})
	})))

	mux.HandleFunc("PATCH /blog/action/{id}/publish", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		i := f.blogIndex(r.PathValue("id"))
		if i < 0 {
			reply(w, http.StatusNotFound, map[string]any{"message": "Blog not found"})
			return
		}

		f.last.publish = r.URL.Query().Get("action")
		f.blogs[i].IsPublished = f.last.publish == "true"

		reply(w, http.StatusOK, map[string]any{"message": "Blog publish state updated"})
	})))

	mux.HandleFunc("DELETE /blog/delete/{id}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		i := f.blogIndex(r.PathValue("id"))
		if i < 0 {
			reply(w, http.StatusNotFound, map[string]any{"message": "Blog not found"})
			return
		}
		f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)

		reply(w, http.StatusOK, map[string]any{"message": "Blog deleted successfully"})
	})))

	likeAction := func(like bool) http.HandlerFunc {
		return record(auth(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()

			i := f.blogIndex(r.PathValue("id"))
			if i < 0 {
				reply(w, http.StatusNotFound, map[string]any{"message": "Blog not found"})
				return
			}

			var likes []string
			for _, id := range f.blogs[i].Likes {
				if id != f.user.ID {
					likes = append(likes, id)
				}
			}
			if like {
				likes = append(likes, f.user.ID)
			}
			f.blogs[i].Likes = likes

			message := "Blog disliked"
			if like {
				message = "Blog liked"
			}
			reply(w, http.StatusOK, map[string]any{"message": message})
		}))
	}
	mux.HandleFunc("GET /blog/action/{id}/like", likeAction(true))
	mux.HandleFunc("GET /blog/action/{id}/dislike", likeAction(false))

	mux.HandleFunc("GET /comment/my-blogs/comments", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var comments []apiclient.Comment
		for _, c := range f.comments {
			i := f.blogIndex(c.Post.ID)
			if i >= 0 && f.blogs[i].Author.ID == f.user.ID {
				comments = append(comments, c)
			}
		}
		reply(w, http.StatusOK, map[string]any{"comments": comments})
	})))

	mux.HandleFunc("GET /comment/{postId}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.commentsDown {
			reply(w, http.StatusInternalServerError, map[string]any{"message": "Comments are unavailable"})
			return
		}

		var comments []apiclient.Comment
		for _, c := range f.comments {
			if c.Post.ID == r.PathValue("postId") {
				comments = append(comments, c)
			}
		}
		reply(w, http.StatusOK, map[string]any{"comments": comments})
	})))

	mux.HandleFunc("POST /comment/{postId}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Content string `json:"content"`
		}
		json.NewDecoder(r.Body).Decode(&input)

		f.mu.Lock()
		defer f.mu.Unlock()

		f.nextID++
		f.comments = append(f.comments, apiclient.Comment{
			ID:      fmt.Sprintf("c%d", f.nextID),
			Content: input.Content,
			Author:  apiclient.Author{User: f.user},
			Post:    apiclient.PostRef{ID: r.PathValue("postId")},
		})

		reply(w, http.StatusCreated, map[string]any{"message": "Comment Added"})
	})))

	mux.HandleFunc("PATCH /comment/like/{id}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		for i := range f.comments {
			if f.comments[i].ID == r.PathValue("id") {
				f.comments[i].Likes = append(f.comments[i].Likes, f.user.ID)
				f.comments[i].NumberOfLikes = len(f.comments[i].Likes)
			}
		}
		reply(w, http.StatusOK, map[string]any{"message": "Comment liked"})
	})))

	mux.HandleFunc("PUT /comment/{id}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Content string `json:"content"`
		}
		json.NewDecoder(r.Body).Decode(&input)

		f.mu.Lock()
		defer f.mu.Unlock()

		for i := range f.comments {
			if f.comments[i].ID == r.PathValue("id") {
				f.comments[i].Content = input.Content
			}
		}
		reply(w, http.StatusOK, map[string]any{"message": "Comment updated"})
	})))

	mux.HandleFunc("DELETE /comment/{id}", record(auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var kept []apiclient.Comment
		for _, c := range f.comments {
			if c.ID != r.PathValue("id") {
				kept = append(kept, c)
			}
		}
		f.comments = kept
		reply(w, http.StatusOK, map[string]any{"message": "Comment deleted"})
	})))

	return mux
}
