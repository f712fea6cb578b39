package di

import (
	"safari/transport/http"
	"safari/transport/scheduler"
)

// App bundles the long-running transports started by cmd/app.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
}
