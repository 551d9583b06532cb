package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sushihentaime/blogfront/internal/store"
)

const sessionCookieName = "blogfront_session"

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Referrer-Policy", "origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")

		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		var (
			ip     = r.RemoteAddr
			method = r.Method
			proto  = r.Proto
			uri    = r.URL.RequestURI()
			start  = time.Now()
		)

		w.Header().Set("X-Request-ID", requestID)
		r = contextSetRequestID(r, requestID)

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		app.logger.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("uri", uri),
			slog.String("remote_addr", ip),
			slog.String("proto", proto),
			slog.Int("status", sr.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (app *application) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.RateLimitEnabled {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !app.limiter.allow(ip) {
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loadSession attaches the session state named by the cookie to the request, starting a
// new anonymous session when there is none. Auth changes are persisted after the handler.
func (app *application) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			token string
			st    *store.State
		)

		cookie, err := r.Cookie(sessionCookieName)
		if err == nil {
			st, err = app.sessions.Load(r.Context(), cookie.Value)
			switch {
			case err == nil:
				token = cookie.Value
			case errors.Is(err, store.ErrSessionNotFound):
			default:
				app.serverErrorResponse(w, r, err)
				return
			}
		}

		if st == nil {
			token, st, err = app.sessions.Create(r.Context())
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(app.config.SessionTTL.Seconds()),
				HttpOnly: true,
				Secure:   app.config.Environment == "production",
				SameSite: http.SameSiteLaxMode,
			})
		}

		r = app.contextSetState(r, st)
		next.ServeHTTP(w, r)

		err = app.sessions.Save(context.WithoutCancel(r.Context()), token, st)
		if err != nil {
			app.logError(r, fmt.Errorf("save session: %w", err))
		}
	})
}

// requireAuthUser sends visitors without a signed in user to the login page.
// It trusts the session state and does not ask the backend.
func (app *application) requireAuthUser(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := app.contextGetState(r)
		if !st.IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		w.Header().Add("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
