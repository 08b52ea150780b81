package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-tasks/internal/app"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tasks",
		Short:         "Personal task tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           serve,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the web application",
		Run:   serve,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		Run:   migrate,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() {
	app.InitDefaultLogger()
	app.MustReadConfig()
	app.MustInitApplicationLogger()
	app.MustOpenStorage()
}

func serve(*cobra.Command, []string) {
	bootstrap()
	defer app.CloseStorage()

	app.MustListenAndServeHTTP()
}

// migrate relies on MustOpenStorage creating missing tables.
func migrate(*cobra.Command, []string) {
	bootstrap()
	app.CloseStorage()
}
