package handler

import (
	"net/http"
	"resort/config"
	"resort/di"
	"resort/shared/logger"
	"sync"
)

var (
	server     http.Handler
	serverOnce sync.Once
)

// Handler serves the booking API from a serverless runtime. The dependency graph is
// built on the first invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()
	server.ServeHTTP(w, r)
}
