package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/blogfront/internal/store"
)

type contextKey string

const (
	stateContextKey     = contextKey("state")
	requestIDContextKey = contextKey("request_id")
)

func (app *application) contextSetState(r *http.Request, st *store.State) *http.Request {
	ctx := context.WithValue(r.Context(), stateContextKey, st)
	return r.WithContext(ctx)
}

// contextGetState returns the session state loadSession attached to the request.
func (app *application) contextGetState(r *http.Request) *store.State {
	st, ok := r.Context().Value(stateContextKey).(*store.State)
	if !ok {
		panic("missing session state in request context")
	}
	return st
}

func contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

func contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}
