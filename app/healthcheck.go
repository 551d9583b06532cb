package main

import "net/http"

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	sessions := "memory"
	if app.config.dsn() != "" {
		sessions = "postgres"
	}

	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Environment,
			"version":     app.config.Version,
			"api":         app.config.APIBaseURL,
		},
		"sessions":        sessions,
		"active_sessions": app.sessions.Active(),
		"notifications":   app.mailService != nil,
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
