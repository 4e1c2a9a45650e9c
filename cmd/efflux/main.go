package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	units "github.com/docker/go-units"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/efflux/internal/cliconfig"
	"github.com/bft-labs/efflux/pkg/efflux"
	"github.com/bft-labs/efflux/pkg/log"
)

const helpDescription = `
Bulk-load a local log file into a Splunk HTTP Event Collector.

The file is read line by line and posted to the collector's raw endpoint in
batches that stay under --max-batch-size. Batches are sent one at a time, in
file order, and each response status is printed as

  request:<n> size:<bytes> status:<code>

Non-2xx statuses are reported but do not stop the upload. A missing file,
an undecodable line or a failed request stops it with a non-zero exit code.
`

var exampleUsage = strings.TrimSpace(`
  efflux -f /var/log/app.log -h x.splunk.com -t <hec-token>
  efflux -f app.log -h x.splunk.com -t <hec-token> -s myapp -y app_logs --max-batch-size 512KiB
  efflux --config $HOME/.efflux/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel).Error("efflux", log.Err(err))
		os.Exit(1)
	}
}

// newRootCmd builds the efflux command. Report lines go to the command's
// output and logs to its error stream.
func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "efflux",
		Short:         "Ship a log file to a Splunk HTTP Event Collector in size-bounded batches",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Explicit --config must exist; the default path is optional.
			loaded := false
			if cfgFile != "" && (changed["config"] || cliconfig.FileExists(cfgFile)) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
				loaded = true
			}

			// EFFLUX_* override the file but not explicit flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := log.NewZerologAdapter(cmd.ErrOrStderr(), level)

			logger.Info("configuration",
				log.Any("config", cfg.Masked()),
				log.Bool("config_file_loaded", loaded),
				log.String("endpoint", cfg.Endpoint().URL),
				log.String("max_batch_size", units.BytesSize(float64(cfg.MaxBatchBytes))),
			)

			s, err := efflux.New(efflux.Config{
				File:          cfg.File,
				Host:          cfg.Host,
				ServiceURL:    cfg.ServiceURL,
				Token:         cfg.Token,
				Source:        cfg.Source,
				SourceType:    cfg.SourceType,
				MaxBatchBytes: cfg.MaxBatchBytes,
				HTTPTimeout:   cfg.HTTPTimeout,
			},
				efflux.WithLogger(logger),
				efflux.WithOutput(cmd.OutOrStdout()),
				efflux.WithUserAgent("efflux/"+getVersion()),
			)
			if err != nil {
				return fmt.Errorf("create efflux: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return s.Run(ctx)
		},
	}

	// -h is the collector host, as in the original tool. Defining help here
	// stops cobra from claiming -h for it.
	root.Flags().Bool("help", false, "help for efflux")

	root.Flags().StringVarP(&cfg.File, "file", "f", cfg.File, "path of the file to upload")
	root.Flags().StringVarP(&cfg.Host, "host", "h", cfg.Host, "collector host name, e.g. x.splunk.com")
	root.Flags().StringVarP(&cfg.Token, "token", "t", cfg.Token, "HEC token")
	root.Flags().StringVarP(&cfg.Source, "source", "s", cfg.Source, "source attached to every event")
	root.Flags().StringVarP(&cfg.SourceType, "sourcetype", "y", cfg.SourceType, "sourcetype attached to every event")

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.efflux/config.toml)")
	root.Flags().StringVar(&cfg.MaxBatchSize, "max-batch-size", cfg.MaxBatchSize, "maximum summed line size per request; units are binary, e.g. 950KiB or 1MiB (1MB = 1MiB)")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per request (0 means none)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "base collector URL replacing https://<host> (testing only)")
	_ = root.Flags().MarkHidden("service-url")

	return root
}
