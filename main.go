package main

import (
	_ "embed"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"

	"webserver/httpd"
	"webserver/routes"
)

//go:embed version
var version string

// 协程池里Worker的数量(flag --workers)
var workers int

// HTML模板目录(flag --templates)
var templatesDir string

var green func(a ...interface{}) string

func main() {
	green = color.New(color.FgGreen).SprintFunc()
	err := execRootCmd(os.Args, version)
	if err != nil {
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	version = ver
	rootCmd := cobrau.PrepareRootCmd(
		"webserver",
		"Multithreaded HTTP/1.x server",
		args,
		version,
		newServeCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the server and waits for incoming connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := httpd.NewServer(workers, templatesDir)
			server.
				Handle(httpd.Must(httpd.Get("/")), routes.Index(server.Templates())).
				Handle(httpd.Must(httpd.Get("/slow_request")), routes.SlowRequest(server.Templates()))

			cmd.Println(green("webserver version ", version))
			return server.Serve(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 2, "Number of workers handling the requests")
	cmd.Flags().StringVar(&templatesDir, "templates", "templates", "Path to the directory with the HTML templates")
	return cmd
}
