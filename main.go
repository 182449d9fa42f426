package main

import (
	"fmt"
	"net/http"

	"formtools/cli"
	"formtools/config"
	"formtools/log"
	ftmiddleware "formtools/middleware"
	"formtools/routes"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "formtools",
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
	rootCmd.AddCommand(cli.ParseCmd)
	rootCmd.AddCommand(cli.ParseTimeCmd)
	rootCmd.AddCommand(cli.ResolveCmd)
	rootCmd.AddCommand(cli.FormatCmd)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func runServer() {
	r := chi.NewRouter()
	r.Use(ftmiddleware.Logger)
	r.Use(middleware.Compress(5))
	r.Use(ftmiddleware.Recoverer)
	r.Use(ftmiddleware.DefaultHeaders)
	r.Use(middleware.GetHead)

	r.Post("/api/dates/parse", routes.Dates_Parse)
	r.Post("/api/times/parse", routes.Times_Parse)
	r.Post("/api/dates/resolve", routes.Dates_Resolve)
	r.Post("/api/forms/validate", routes.Forms_Validate)

	log.Info().Msg("Started")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", config.Cfg.Port), r); err != nil {
		panic(err)
	}
}
