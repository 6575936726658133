package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies run_id and command from the event context onto log
// events. Events must be given a context with Event.Ctx.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if runID := RunID(ctx); runID != "" {
		e.Str("run_id", runID)
	}

	if cmd := Command(ctx); cmd != "" {
		e.Str("command", cmd)
	}
}
