package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
)

func (app *application) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	if app.contextGetState(r).IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	app.render(w, r, http.StatusOK, "login", &templateData{Form: map[string]string{}})
}

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	err := app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	st := app.contextGetState(r)
	email := r.PostForm.Get("email")
	data := &templateData{Form: map[string]string{"email": email}}

	res, err := app.userService(r).Login(r.Context(), email, r.PostForm.Get("password"))
	if err != nil {
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) {
			data.FieldErrors = validationErr.Errors
		} else {
			var apiErr *apiclient.APIError
			if !errors.As(err, &apiErr) {
				app.logError(r, err)
			}
			st.Error(apiclient.MessageOr(err, "Login failed"))
		}

		app.render(w, r, http.StatusUnprocessableEntity, "login", data)
		return
	}

	message := res.Message
	if message == "" {
		message = "Welcome back " + res.User.FirstName
	}
	st.Success(message)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) signupPageHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "signup", &templateData{Form: map[string]string{}})
}

func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	err := app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	st := app.contextGetState(r)
	reg := apiclient.Registration{
		FirstName: r.PostForm.Get("firstName"),
		LastName:  r.PostForm.Get("lastName"),
		Email:     r.PostForm.Get("email"),
		Password:  r.PostForm.Get("password"),
	}
	data := &templateData{Form: map[string]string{
		"firstName": reg.FirstName,
		"lastName":  reg.LastName,
		"email":     reg.Email,
	}}

	res, err := app.userService(r).Signup(r.Context(), reg)
	if err != nil {
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) {
			data.FieldErrors = validationErr.Errors
		} else {
			var apiErr *apiclient.APIError
			if !errors.As(err, &apiErr) {
				app.logError(r, err)
			}
			st.Error(apiclient.MessageOr(err, "Signup failed"))
		}

		app.render(w, r, http.StatusUnprocessableEntity, "signup", data)
		return
	}

	message := res.Message
	if message == "" {
		message = "Account created. Please log in."
	}
	st.Success(message)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	app.userService(r).Logout()
	app.contextGetState(r).Success("Logged out successfully.")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func profileForm(u *apiclient.User) map[string]string {
	if u == nil {
		return map[string]string{}
	}

	return map[string]string{
		"firstName":  u.FirstName,
		"lastName":   u.LastName,
		"email":      u.Email,
		"bio":        u.Bio,
		"occupation": u.Occupation,
		"facebook":   u.Facebook,
		"linkedin":   u.LinkedIn,
		"instagram":  u.Instagram,
		"github":     u.GitHub,
		"photoUrl":   u.PhotoURL,
	}
}

func (app *application) profilePageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetState(r).User()
		app.render(w, r, http.StatusOK, name, &templateData{Form: profileForm(user)})
	}
}

// updateProfileHandler sends the profile form back to the page it came from.
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	back := r.URL.Path

	err := app.parseForm(w, r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	avatar, closer, err := app.readUpload(r, "avatar")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	form := apiclient.ProfileForm{
		FirstName:  r.PostForm.Get("firstName"),
		LastName:   r.PostForm.Get("lastName"),
		Bio:        r.PostForm.Get("bio"),
		Occupation: r.PostForm.Get("occupation"),
		Facebook:   r.PostForm.Get("facebook"),
		LinkedIn:   r.PostForm.Get("linkedin"),
		Instagram:  r.PostForm.Get("instagram"),
		GitHub:     r.PostForm.Get("github"),
		Avatar:     avatar,
	}

	res, err := app.userService(r).UpdateProfile(r.Context(), form)
	if err != nil {
		app.handleActionError(w, r, err, "Update failed", back)
		return
	}

	message := res.Message
	if message == "" {
		message = "Profile updated successfully!"
	}
	app.contextGetState(r).Success(message)

	http.Redirect(w, r, back, http.StatusSeeOther)
}
