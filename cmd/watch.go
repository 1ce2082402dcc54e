package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/emrgen/cataviz/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

func watchCmd() *cobra.Command {
	var dir string

	command := &cobra.Command{
		Use:   "watch",
		Short: "load new catalogue files on a schedule",
		Long:  `scan the data directory on WATCH_SCHEDULE and load the files not loaded yet by this process`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if dir == "" {
				dir = a.cfg.DataDir
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			task := jobs.NewScanTask(ctx, a.cfg.WatchSchedule, dir, a.patterns(), func() (jobs.Loader, error) {
				return a.driver()
			})

			executor := jobs.NewTaskExecutor(task)
			if err := executor.Run(); err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, unix.SIGINT, unix.SIGTERM)
			s := <-sig
			logrus.Infof("received %s, shutting down", s)

			cancel()
			executor.Stop()
			return nil
		},
	}

	command.Flags().StringVarP(&dir, "dir", "d", "", "directory to watch (defaults to DATA_DIR)")

	return command
}
