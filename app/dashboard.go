package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/blogservice"
	"github.com/sushihentaime/blogfront/internal/commentservice"
	"github.com/sushihentaime/blogfront/internal/common"
)

func (app *application) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.blogService(r).Stats(r.Context())
	if err != nil && app.pageError(w, r, err, "Failed to load statistics") {
		return
	}
	if stats == nil {
		stats = &blogservice.Stats{}
	}

	app.render(w, r, http.StatusOK, "dashboard", &templateData{Stats: stats})
}

func (app *application) createBlogPageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.render(w, r, http.StatusOK, name, &templateData{
			Form:       map[string]string{},
			Categories: blogservice.Categories,
		})
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	err := app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	title := r.PostForm.Get("title")
	category := r.PostForm.Get("category")

	blog, err := app.blogService(r).Create(r.Context(), title, category)
	if err != nil {
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) {
			app.render(w, r, http.StatusUnprocessableEntity, "dashboard_write_blog", &templateData{
				Form:        map[string]string{"title": title, "category": category},
				FieldErrors: validationErr.Errors,
				Categories:  blogservice.Categories,
			})
			return
		}

		app.handleActionError(w, r, err, "Failed to create blog", "/dashboard/write-blog")
		return
	}

	app.contextGetState(r).Success("Blog created successfully")
	http.Redirect(w, r, "/dashboard/write-blog/"+blog.ID, http.StatusSeeOther)
}

// findOwnBlog resolves a blog for the editor, refreshing the own list once when it is not cached.
func (app *application) findOwnBlog(r *http.Request, id string) (*apiclient.Blog, error) {
	bs := app.blogService(r)

	blog, err := bs.Find(id)
	if err == nil {
		return blog, nil
	}

	_, err = bs.LoadOwn(r.Context())
	if err != nil {
		return nil, err
	}

	return bs.Find(id)
}

func blogForm(b *apiclient.Blog) map[string]string {
	return map[string]string{
		"title":       b.Title,
		"subtitle":    b.Subtitle,
		"description": b.Description,
		"category":    b.Category,
		"thumbnail":   b.Thumbnail,
	}
}

func (app *application) updateBlogPageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readStringParam(r, "blogId")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	blog, err := app.findOwnBlog(r, id)
	if err != nil {
		if errors.Is(err, blogservice.ErrNotFound) {
			app.render(w, r, http.StatusNotFound, "blog_not_found", &templateData{Message: "Blog not found."})
			return
		}
		if !app.pageError(w, r, err, "Failed to load blog") {
			http.Redirect(w, r, "/dashboard/your-blog", http.StatusSeeOther)
		}
		return
	}

	app.render(w, r, http.StatusOK, "dashboard_update_blog", &templateData{
		Blog:       blog,
		Form:       blogForm(blog),
		Categories: blogservice.Categories,
	})
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readStringParam(r, "blogId")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	err = app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	thumbnail, closer, err := app.readUpload(r, "file")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	form := apiclient.BlogForm{
		Title:       r.PostForm.Get("title"),
		Subtitle:    r.PostForm.Get("subtitle"),
		Description: r.PostForm.Get("description"),
		Category:    r.PostForm.Get("category"),
		Thumbnail:   thumbnail,
	}

	bs := app.blogService(r)

	res, err := bs.Update(r.Context(), id, form)
	if err != nil {
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) {
			blog, _ := bs.Find(id)
			if blog == nil {
				blog = &apiclient.Blog{ID: id}
			}

			app.render(w, r, http.StatusUnprocessableEntity, "dashboard_update_blog", &templateData{
				Blog: blog,
				Form: map[string]string{
					"title":       form.Title,
					"subtitle":    form.Subtitle,
					"description": form.Description,
					"category":    form.Category,
					"thumbnail":   blog.Thumbnail,
				},
				FieldErrors: validationErr.Errors,
				Categories:  blogservice.Categories,
			})
			return
		}

		app.handleActionError(w, r, err, "Failed to update blog", "/dashboard/write-blog/"+id)
		return
	}

	message := res.Message
	if message == "" {
		message = "Blog updated successfully"
	}
	app.contextGetState(r).Success(message)

	http.Redirect(w, r, "/dashboard/your-blog", http.StatusSeeOther)
}

// publishBlogHandler applies the action the page computed from the blog's current state.
func (app *application) publishBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readStringParam(r, "blogId")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	err = app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	publish, err := strconv.ParseBool(r.PostForm.Get("action"))
	if err != nil {
		app.badRequestErrorResponse(w, r, errors.New("action must be true or false"))
		return
	}

	back := r.PostForm.Get("redirect")
	if back != "/dashboard/your-blog" {
		back = "/dashboard/write-blog/" + id
	}

	res, err := app.blogService(r).SetPublished(r.Context(), id, publish)
	if err != nil {
		app.handleActionError(w, r, err, "Failed to update blog", back)
		return
	}

	message := res.Message
	if message == "" {
		message = "Blog unpublished"
		if publish {
			message = "Blog published"
		}
	}
	app.contextGetState(r).Success(message)

	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readStringParam(r, "blogId")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	res, err := app.blogService(r).Delete(r.Context(), id)
	if err != nil {
		app.handleActionError(w, r, err, "Failed to delete blog", "/dashboard/your-blog")
		return
	}

	message := res.Message
	if message == "" {
		message = "Blog deleted"
	}
	app.contextGetState(r).Success(message)

	http.Redirect(w, r, "/dashboard/your-blog", http.StatusSeeOther)
}

func (app *application) yourBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService(r).LoadOwn(r.Context())
	if err != nil && app.pageError(w, r, err, "Failed to load your blogs") {
		return
	}

	app.render(w, r, http.StatusOK, "your_blog", &templateData{Blogs: blogs})
}

func (app *application) myCommentsHandler(w http.ResponseWriter, r *http.Request) {
	st := app.contextGetState(r)

	comments, err := commentservice.MyBlogComments(r.Context(), app.api.WithSession(st), st)
	if err != nil && app.pageError(w, r, err, "Failed to load comments") {
		return
	}

	app.render(w, r, http.StatusOK, "comments", &templateData{Comments: comments})
}
