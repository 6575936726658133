// Package logging carries per-invocation fields through context and into
// zerolog events.
package logging

import (
	"github.com/rs/zerolog"
)

// Component derives a logger tagged with a component identifier.
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}
