package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/blogservice"
	"github.com/sushihentaime/blogfront/internal/commentservice"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/userservice"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url), slog.String("request_id", contextGetRequestID(r)))
}

// writeErrorPage renders the bare error page. It never touches the session state so it
// works from middleware that runs before the session is loaded.
func (app *application) writeErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := &templateData{
		Status:  status,
		Message: message,
	}

	err := app.renderPage(w, status, "error", data)
	if err != nil {
		app.logError(r, err)
		http.Error(w, message, status)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorPage(w, r, http.StatusInternalServerError, message)
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorPage(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorPage(w, r, http.StatusNotFound, "the requested page could not be found")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorPage(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorPage(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}

// handleActionError turns a failed backend call into a notice and a redirect.
// A 401 has already revoked the session, so the user is sent to log in again.
func (app *application) handleActionError(w http.ResponseWriter, r *http.Request, err error, fallback, redirectTo string) {
	st := app.contextGetState(r)

	var validationErr common.ValidationError
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		st.Error(apiclient.MessageOr(err, "Your session has expired. Please log in again."))
		redirectTo = "/login"
	case errors.As(err, &validationErr):
		st.Error(validationMessage(validationErr))
	case errors.Is(err, blogservice.ErrNotAuthenticated),
		errors.Is(err, commentservice.ErrNotAuthenticated):
		st.Error("Please log in to continue.")
		redirectTo = "/login"
	case errors.Is(err, userservice.ErrNotAuthenticated),
		errors.Is(err, commentservice.ErrMissingPostID):
		st.Error(err.Error())
	case errors.Is(err, blogservice.ErrNotFound):
		st.Error("Blog not found.")
	default:
		var apiErr *apiclient.APIError
		if !errors.As(err, &apiErr) {
			app.logError(r, err)
		}
		st.Error(apiclient.MessageOr(err, fallback))
	}

	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}
