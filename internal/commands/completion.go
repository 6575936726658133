package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/core/challenge"
)

// PendingDateCompleter returns a ShellCompleteFunc that suggests the dates of
// pending challenges as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func PendingDateCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Tracker == nil {
			return
		}

		pending, err := flags.Tracker.List(ctx, challenge.StatusPending)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, ch := range pending {
			_, _ = fmt.Fprintln(w, ch.Date())
		}
	}
}
