package cmd

import (
	"context"

	"github.com/emrgen/cataviz/internal/pipeline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "rank the documents of every primary contributor by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDriver(func(ctx context.Context, a *app, d *pipeline.Driver) error {
				ranked, err := d.Order(ctx)
				if err != nil {
					return err
				}
				color.Green("%d documents ranked", ranked)
				return nil
			})
		},
	}
}
