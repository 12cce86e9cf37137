package handler

import (
	"net/http"
	"sync"

	"pms/config"
	"pms/di"
	"pms/shared/logger"
)

// app is built on the first invocation and reused while the function instance stays warm.
var app = sync.OnceValue(func() http.Handler {
	logger.InitLoggerFor(config.Get())

	return di.InitializeService()
})

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	app().ServeHTTP(w, r)
}
