package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cataviz",
	Short: "load BnF UNIMARC dumps into a relational database",
	Example: `cataviz db migrate
cataviz load data/
cataviz load auth data/P1486_1.UTF8
cataviz load docs data/P174_*.UTF8
cataviz order
cataviz show data/P174_1.UTF8 --limit 3 --tag 700
cataviz stats --yaml
cataviz watch`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(orderCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
