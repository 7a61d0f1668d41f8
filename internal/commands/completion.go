package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
)

// tripFilePattern matches the YAML files offered as trip file completions.
const tripFilePattern = "**/*.{yaml,yml}"

// TripFileCompleter returns a ShellCompleteFunc that suggests YAML files below
// dir as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func TripFileCompleter(dir string) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		matches, err := tripFileCandidates(dir)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, m := range matches {
			_, _ = fmt.Fprintln(w, m)
		}
	}
}

func tripFileCandidates(dir string) ([]string, error) {
	return doublestar.Glob(os.DirFS(dir), tripFilePattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
}
