package configs

import "time"

// HTTP defines configuration for the HTTP server. Port is the TCP port the
// server binds to. ShutdownTimeout bounds the graceful shutdown.
type HTTP struct {
	Port            uint16        `env:"PORT" envDefault:"8080" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
