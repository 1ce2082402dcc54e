package cmd

import (
	"context"
	"os"
	"sort"
	"strconv"

	"github.com/emrgen/cataviz/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func statsCmd() *cobra.Command {
	var asYAML bool

	command := &cobra.Command{
		Use:   "stats",
		Short: "count the loaded rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.store.Stats(context.Background())
			if err != nil {
				return err
			}

			if asYAML {
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(stats)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Rows", "Count"})
			table.Append([]string{"identities", strconv.FormatInt(stats.Identities, 10)})
			table.Append([]string{"  persons", strconv.FormatInt(stats.Persons, 10)})
			table.Append([]string{"  corporate bodies", strconv.FormatInt(stats.CorporateBodies, 10)})
			table.Append([]string{"documents", strconv.FormatInt(stats.Documents, 10)})

			eras := make([]model.Era, 0, len(stats.Eras))
			for era := range stats.Eras {
				eras = append(eras, era)
			}
			sort.Slice(eras, func(i, j int) bool { return eras[i] < eras[j] })
			for _, era := range eras {
				table.Append([]string{"  " + string(era), strconv.FormatInt(stats.Eras[era], 10)})
			}

			table.Append([]string{"contributions", strconv.FormatInt(stats.Contributions, 10)})
			table.Render()
			return nil
		},
	}

	command.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")

	return command
}
