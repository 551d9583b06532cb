package main

import (
	"net/http"
	"strings"

	"github.com/sushihentaime/blogfront/internal/apiclient"
)

func commentsAnchor(postID string) string {
	return "/blogs/" + postID + "#comments"
}

// readCommentParams returns the post id and, when the route has one, the comment id.
func (app *application) readCommentParams(r *http.Request) (string, string) {
	postID, _ := app.readStringParam(r, "blogId")
	commentID, _ := app.readStringParam(r, "commentId")
	return postID, commentID
}

func (app *application) commentSuccess(r *http.Request, res *apiclient.Response, fallback string) {
	message := strings.TrimSpace(res.Message)
	if message == "" {
		message = fallback
	}
	app.contextGetState(r).Success(message)
}

func (app *application) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, _ := app.readCommentParams(r)

	err := app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.commentBox(r, postID).Add(r.Context(), r.PostForm.Get("content"))
	if err != nil {
		app.handleActionError(w, r, err, "Failed to add comment", commentsAnchor(postID))
		return
	}

	app.commentSuccess(r, res, "Comment added")
	http.Redirect(w, r, commentsAnchor(postID), http.StatusSeeOther)
}

func (app *application) beginEditCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, commentID := app.readCommentParams(r)

	if !app.commentBox(r, postID).BeginEdit(commentID) {
		app.contextGetState(r).Error("Comment not found.")
	}

	http.Redirect(w, r, commentsAnchor(postID), http.StatusSeeOther)
}

func (app *application) cancelEditCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, _ := app.readCommentParams(r)

	app.commentBox(r, postID).CancelEdit()
	http.Redirect(w, r, commentsAnchor(postID), http.StatusSeeOther)
}

func (app *application) editCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, commentID := app.readCommentParams(r)

	err := app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.commentBox(r, postID).Edit(r.Context(), commentID, r.PostForm.Get("content"))
	if err != nil {
		app.handleActionError(w, r, err, "Failed to edit comment", commentsAnchor(postID))
		return
	}

	app.commentSuccess(r, res, "Comment updated")
	http.Redirect(w, r, commentsAnchor(postID), http.StatusSeeOther)
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, commentID := app.readCommentParams(r)

	res, err := app.commentBox(r, postID).Delete(r.Context(), commentID)
	if err != nil {
		app.handleActionError(w, r, err, "Failed to delete comment", commentsAnchor(postID))
		return
	}

	app.commentSuccess(r, res, "Comment deleted")
	http.Redirect(w, r, commentsAnchor(postID), http.StatusSeeOther)
}

func (app *application) likeCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, commentID := app.readCommentParams(r)

	res, err := app.commentBox(r, postID).Like(r.Context(), commentID)
	if err != nil {
		app.handleActionError(w, r, err, "Failed to like comment", commentsAnchor(postID))
		return
	}

	app.commentSuccess(r, res, "Comment like updated")
	http.Redirect(w, r, commentsAnchor(postID), http.StatusSeeOther)
}
