package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	dynamic := func(h http.HandlerFunc) http.Handler {
		return app.loadSession(h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return app.loadSession(app.requireAuthUser(h))
	}

	router.HandlerFunc(http.MethodGet, "/healthz", app.healthCheckHandler)

	// public pages
	router.Handler(http.MethodGet, "/", dynamic(app.homeHandler))
	router.Handler(http.MethodGet, "/blogs", dynamic(app.blogsHandler))
	router.Handler(http.MethodGet, "/about", dynamic(app.aboutHandler))
	router.Handler(http.MethodGet, "/search", dynamic(app.searchHandler))

	// blog detail and comment box
	router.Handler(http.MethodGet, "/blogs/:blogId", protected(app.blogViewHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/like", protected(app.likeBlogHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/comments", protected(app.addCommentHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/comments/:commentId/edit", protected(app.beginEditCommentHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/comments/:commentId/cancel", protected(app.cancelEditCommentHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/comments/:commentId/save", protected(app.editCommentHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/comments/:commentId/delete", protected(app.deleteCommentHandler))
	router.Handler(http.MethodPost, "/blogs/:blogId/comments/:commentId/like", protected(app.likeCommentHandler))

	// account
	router.Handler(http.MethodGet, "/signup", dynamic(app.signupPageHandler))
	router.Handler(http.MethodPost, "/signup", dynamic(app.signupHandler))
	router.Handler(http.MethodGet, "/login", dynamic(app.loginPageHandler))
	router.Handler(http.MethodPost, "/login", dynamic(app.loginHandler))
	router.Handler(http.MethodPost, "/logout", dynamic(app.logoutHandler))
	router.Handler(http.MethodGet, "/write-blog", dynamic(app.createBlogPageHandler("write_blog")))
	router.Handler(http.MethodGet, "/profile", dynamic(app.profilePageHandler("profile")))
	router.Handler(http.MethodPost, "/profile", dynamic(app.updateProfileHandler))

	// dashboard
	router.Handler(http.MethodGet, "/dashboard", protected(app.dashboardHandler))
	router.Handler(http.MethodGet, "/dashboard/write-blog", protected(app.createBlogPageHandler("dashboard_write_blog")))
	router.Handler(http.MethodPost, "/dashboard/write-blog", protected(app.createBlogHandler))
	router.Handler(http.MethodGet, "/dashboard/write-blog/:blogId", protected(app.updateBlogPageHandler))
	router.Handler(http.MethodPost, "/dashboard/write-blog/:blogId", protected(app.updateBlogHandler))
	router.Handler(http.MethodPost, "/dashboard/write-blog/:blogId/publish", protected(app.publishBlogHandler))
	router.Handler(http.MethodPost, "/dashboard/write-blog/:blogId/delete", protected(app.deleteBlogHandler))
	router.Handler(http.MethodGet, "/dashboard/your-blog", protected(app.yourBlogHandler))
	router.Handler(http.MethodGet, "/dashboard/comments", protected(app.myCommentsHandler))
	router.Handler(http.MethodGet, "/dashboard/profile", protected(app.profilePageHandler("dashboard_profile")))
	router.Handler(http.MethodPost, "/dashboard/profile", protected(app.updateProfileHandler))

	return app.recoverPanic(app.logRequest(app.rateLimit(app.secureHeaders(router))))
}
