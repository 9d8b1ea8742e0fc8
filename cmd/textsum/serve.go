package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"textsum/internal/metrics"
	"textsum/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the summarizer over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ratio, err := ratioFlag()
			if err != nil {
				return err
			}
			srv := server.New(server.Config{
				Addr:         viper.GetString("addr"),
				DefaultRatio: ratio,
				BodyLimit:    current.cfg.Server.MaxBodyBytes,
			}, current.summarizer, metrics.NewExporter(nil), current.log.WithField("component", "http"))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					current.log.WithError(err).Warn("http shutdown")
				}
			}()
			return srv.Start()
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	if err := viper.BindPFlag("addr", cmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	return cmd
}
