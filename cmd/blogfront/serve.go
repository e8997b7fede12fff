package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/blogfront"
	"github.com/eringen/blogfront/views"
)

func init() {
	serveCmd.Flags().String("static", "public", "directory for static assets and uploads")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		static, err := cmd.Flags().GetString("static")
		if err != nil {
			return err
		}

		cfg, err := configFromEnv(true)
		if err != nil {
			return err
		}
		app := blogfront.New(cfg, views.New(cfg, cfg.Theme()).Funcs(), blogfront.WithStaticDir(static))
		if err := app.Init(); err != nil {
			return err
		}
		defer app.Close()

		errc := make(chan error, 1)
		go func() {
			errc <- app.Start()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errc:
			return err
		case <-quit:
		}

		app.Echo.Logger.Info("stopping server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.Echo.Shutdown(ctx)
	},
}
