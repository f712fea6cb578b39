package handler

import (
	"net/http"
	"safari/config"
	"safari/di"
	"safari/shared/logger"
	"sync"

	httpTransport "safari/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built once per warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
