// Package cli implements the extsvc command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	slogctx "github.com/veqryn/slog-context"

	"github.com/skosovsky/extsvc"
)

// EnvPrefix is prepended to flag names to form environment variables (EXTSVC_SERVICE).
const EnvPrefix = "EXTSVC"

// errRejected is returned after a rejection has already been reported on stdout.
var errRejected = errors.New("configuration rejected")

// IsSilent reports whether err has already been reported to the user.
func IsSilent(err error) bool {
	return errors.Is(err, errRejected)
}

// New returns the root command with all subcommands attached.
func New() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	cmd := &cobra.Command{
		Use:           "extsvc",
		Short:         "Validate external service configuration payloads",
		Long:          `extsvc checks JSON update payloads for the S3, SMTP, SMS and NOTIFICATION integrations against their parameter whitelists.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			bindFlags(cmd, v)
			logger := setupLogging(v, cmd.ErrOrStderr())
			cmd.SetContext(slogctx.NewCtx(cmd.Context(), logger))
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.String("log-format", "text", "log format (text|json)")
	pflags.CountP("log-level", "v", "log level (-v=warn, -vv=info, -vvv=debug)")

	cmd.AddCommand(newValidateCommand(v))
	cmd.AddCommand(newKeysCommand(v))
	cmd.AddCommand(newServicesCommand())
	cmd.AddCommand(newSchemaCommand(v))

	return cmd
}

// bindFlags binds local and persistent flags of cmd to v so EXTSVC_* variables fill unset flags.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	bind := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = v.BindPFlag(f.Name, f)
		})
	}
	bind(cmd.Flags())
	bind(cmd.InheritedFlags())
}

func setupLogging(v *viper.Viper, w io.Writer) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelError - slog.Level(v.GetInt("log-level")*4))
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if v.GetString("log-format") == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// newValidator builds the validator used by every subcommand, logging through ctx's logger.
func newValidator(cmd *cobra.Command) extsvc.ConfigValidator {
	logger := slogctx.FromCtx(cmd.Context())
	return extsvc.Chain(extsvc.NewValidator(), extsvc.WithLogging(logger), extsvc.WithRecovery())
}

// readInput reads the payload from path, or from stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
