package cmd

import (
	"context"
	"fmt"

	"github.com/emrgen/cataviz/internal/pipeline"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [dir]",
	Short: "load every catalogue file of a directory",
	Long: `load authority files first, then the identities named in document files,
then the documents and their links. The directory defaults to DATA_DIR.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipOrder, _ := cmd.Flags().GetBool("no-order")
		return withDriver(func(ctx context.Context, a *app, d *pipeline.Driver) error {
			dir := a.cfg.DataDir
			if len(args) == 1 {
				dir = args[0]
			}
			report, err := d.Run(ctx, dir)
			printReport(report)
			if err != nil {
				return err
			}
			if skipOrder {
				return nil
			}
			_, err = d.Order(ctx)
			return err
		})
	},
}

func init() {
	loadCmd.Flags().Bool("no-order", false, "do not rank documents after loading")
	loadCmd.AddCommand(loadPhaseCmd("auth", "load authority files", pipeline.KindAuthority,
		func(d *pipeline.Driver) phaseFunc { return d.LoadAuthorities }))
	loadCmd.AddCommand(loadPhaseCmd("byline", "load the identities named in document files", pipeline.KindDocument,
		func(d *pipeline.Driver) phaseFunc { return d.LoadBylines }))
	loadCmd.AddCommand(loadPhaseCmd("docs", "load documents and link them", pipeline.KindDocument,
		func(d *pipeline.Driver) phaseFunc { return d.LoadDocuments }))
}

type phaseFunc func(ctx context.Context, sources ...pipeline.Source) (pipeline.Report, error)

func loadPhaseCmd(use, short string, kind pipeline.Kind, phase func(*pipeline.Driver) phaseFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDriver(func(ctx context.Context, a *app, d *pipeline.Driver) error {
				sources, err := classify(a.patterns(), kind, args)
				if err != nil {
					return err
				}
				report, err := phase(d)(ctx, sources...)
				printReport(report)
				return err
			})
		},
	}
}

// classify maps file arguments to sources of the expected kind.
func classify(patterns pipeline.Patterns, kind pipeline.Kind, paths []string) ([]pipeline.Source, error) {
	sources := make([]pipeline.Source, 0, len(paths))
	for _, path := range paths {
		src, ok := patterns.Classify(path)
		if !ok || src.Kind != kind {
			return nil, fmt.Errorf("%s is not a %s file", path, kind)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func withDriver(f func(ctx context.Context, a *app, d *pipeline.Driver) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	d, err := a.driver()
	if err != nil {
		return err
	}
	logrus.Debugf("run %s", d.RunID())
	return f(context.Background(), a, d)
}

func printReport(r pipeline.Report) {
	color.Green("files %d, records %d, skipped %d", r.Files, r.Records, r.Skipped)
	color.Green("identities %d, documents %d, contributions %d", r.Identities, r.Documents, r.Contributions)
}
