// Package cmd wires the jsxkit command-line surface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the jsxkit CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:    "jsxkit",
		Usage:   "Normalize and generate Adobe Illustrator scripts",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "normalize",
				Usage:     "Rewrite .jsx files under a directory into canonical shape",
				ArgsUsage: "[dir]",
				Flags:     []cli.Flag{verboseFlag()},
				Action:    normalizeAction,
			},
			{
				Name:      "generate",
				Usage:     "Generate canonical scripts from a scripts.toml manifest",
				ArgsUsage: "[dir]",
				Flags:     []cli.Flag{verboseFlag()},
				Action:    generateAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Log every file visited",
	}
}

// setupLogging configures the shared logger per invocation. Color is
// dropped when stderr is not a terminal or NO_COLOR is set.
func setupLogging(cmd *cli.Command) {
	if cmd.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd())) {
		os.Setenv("NO_COLOR", "1")
	}
}

// rootDir resolves the optional positional directory argument.
func rootDir(cmd *cli.Command) string {
	if cmd.NArg() > 0 {
		return cmd.Args().First()
	}
	return "."
}
