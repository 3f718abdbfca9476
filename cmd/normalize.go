package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jsxkit/jsxkit/generate"
	"github.com/jsxkit/jsxkit/walker"
)

func normalizeAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)
	stats, err := walker.Run(rootDir(cmd), walker.DefaultPattern)
	if err != nil {
		return err
	}
	fmt.Printf("Processed %d files, modified %d, failed %d\n",
		stats.Visited, stats.Modified, stats.Failed)
	return nil
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)
	res, err := generate.Run(rootDir(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("Scripts: %d total, %d generated, %d manual, %d failed, %d missing\n",
		res.Total, res.Generated, res.Manual, res.Failed, res.Missing)
	return nil
}
