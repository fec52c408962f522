// Package app wires the application together.
package app

import (
	"voicebrief/internal/app/api/vosk"
	"voicebrief/internal/app/repository"
	"voicebrief/web"
)

// Application bundles the server with the resources that need explicit
// teardown: the speech model handle and the database connection.
type Application struct {
	Server *web.Server

	model *vosk.Model
	repos *repositories
}

func newApplication(server *web.Server, model *vosk.Model, repos *repositories) *Application {
	return &Application{Server: server, model: model, repos: repos}
}

// Close releases the model and the database. Call after the server has
// shut down.
func (a *Application) Close() error {
	a.model.Free()
	return a.repos.close()
}

// repositories holds the chosen DAO implementations plus their shared
// connection closer.
type repositories struct {
	users     repository.UserDAO
	summaries repository.SummaryDAO
	closer    func() error
}

func (r *repositories) close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
