package handler

import (
	"cowork/config"
	"cowork/di"
	"cowork/shared/logger"
	transport "cowork/transport/http"
	nethttp "net/http"
	"sync"
)

var (
	server *transport.HTTP
	boot   sync.Once
)

// Handler is the serverless entry point. The dependency graph is built once per
// instance and reused by every invocation.
func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	boot.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
