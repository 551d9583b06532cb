package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/blogservice"
	"github.com/sushihentaime/blogfront/internal/commentservice"
	"github.com/sushihentaime/blogfront/internal/userservice"
)

const homeBlogLimit = 6

func (app *application) blogService(r *http.Request) *blogservice.BlogService {
	st := app.contextGetState(r)
	return blogservice.NewBlogService(app.api.WithSession(st), st, app.broker, app.config.PublicURL, app.logger)
}

func (app *application) commentBox(r *http.Request, postID string) *commentservice.CommentBox {
	st := app.contextGetState(r)
	return commentservice.NewCommentBox(app.api.WithSession(st), st, postID)
}

func (app *application) userService(r *http.Request) *userservice.UserService {
	st := app.contextGetState(r)
	return userservice.NewUserService(app.api.WithSession(st), st)
}

// pageError records a failed backend read as a notice. It reports true when it already
// answered the request, which happens when the session was revoked.
func (app *application) pageError(w http.ResponseWriter, r *http.Request, err error, fallback string) bool {
	st := app.contextGetState(r)

	if errors.Is(err, apiclient.ErrUnauthorized) || errors.Is(err, blogservice.ErrNotAuthenticated) || errors.Is(err, commentservice.ErrNotAuthenticated) {
		st.Error(apiclient.MessageOr(err, "Your session has expired. Please log in again."))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return true
	}

	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		app.logError(r, err)
	}

	st.Error(apiclient.MessageOr(err, fallback))
	return false
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService(r).LoadPublished(r.Context())
	if err != nil && app.pageError(w, r, err, "Failed to load blogs") {
		return
	}

	if len(blogs) > homeBlogLimit {
		blogs = blogs[:homeBlogLimit]
	}

	app.render(w, r, http.StatusOK, "home", &templateData{Blogs: blogs})
}

func (app *application) blogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService(r).LoadPublished(r.Context())
	if err != nil && app.pageError(w, r, err, "Failed to load blogs") {
		return
	}

	app.render(w, r, http.StatusOK, "blogs", &templateData{Blogs: blogs})
}

func (app *application) aboutHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "about", &templateData{})
}

func (app *application) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	blogs, err := app.blogService(r).Search(r.Context(), query)
	if err != nil && app.pageError(w, r, err, "Search failed") {
		return
	}

	app.render(w, r, http.StatusOK, "search", &templateData{Query: query, Blogs: blogs})
}

// blogViewHandler shows one blog from the cached list and its comments.
func (app *application) blogViewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readStringParam(r, "blogId")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	blog, err := app.blogService(r).Find(id)
	if err != nil {
		app.render(w, r, http.StatusNotFound, "blog_not_found", &templateData{Message: "Blog not found."})
		return
	}

	st := app.contextGetState(r)
	data := &templateData{
		Blog:   blog,
		Liked:  blog.LikedBy(st.UserID()),
		PostID: blog.ID,
	}

	comments, err := app.commentBox(r, blog.ID).Load(r.Context())
	switch {
	case err == nil:
		data.Comments = comments
	case errors.Is(err, commentservice.ErrMissingPostID):
		data.CommentsError = err.Error()
	case errors.Is(err, apiclient.ErrUnauthorized):
		app.pageError(w, r, err, "")
		return
	default:
		app.logError(r, err)
		data.CommentsError = apiclient.MessageOr(err, "Failed to load comments")
	}

	app.render(w, r, http.StatusOK, "blog", data)
}

func (app *application) likeBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readStringParam(r, "blogId")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	back := "/blogs/" + id

	res, err := app.blogService(r).ToggleLike(r.Context(), id)
	if err != nil {
		app.handleActionError(w, r, err, "Something went wrong", back)
		return
	}

	message := res.Message
	if message == "" {
		message = "You unliked the blog"
		if res.Liked {
			message = "You liked the blog"
		}
	}

	app.contextGetState(r).Success(message)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
