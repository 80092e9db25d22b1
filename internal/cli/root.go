package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/internal/logging"
)

var (
	flagAPI       string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *api.Client
)

// defaultAPI returns the backend URL, checking CAMPUS_API env var first.
func defaultAPI() string {
	if s := os.Getenv("CAMPUS_API"); s != "" {
		return s
	}
	return "http://localhost:5208"
}

// NewRootCmd creates the root cobra command for the campus CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "campus",
		Short: "Campus course and exam management from the terminal",
		Long:  "Campus talks to the learning platform's REST API: sign in, browse courses, and manage exams without opening the web UI.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)

			cfg := api.DefaultConfig()
			cfg.BaseURL = flagAPI
			cfg.Token = LoadToken()
			client = api.NewClient(cfg, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", defaultAPI(), "Backend API URL (or CAMPUS_API env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newCoursesCmd(),
		newExamsCmd(),
	)

	return root
}
