package handler

import (
	"net/http"
	"sync"

	"dinedesk/config"
	"dinedesk/di"
	"dinedesk/shared/logger"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler serves the dashboard API from a serverless function. Workspaces live as long
// as the function instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService().Adaptor()
	})

	app.ServeHTTP(w, r)
}
