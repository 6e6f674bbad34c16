package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skosovsky/extsvc"
)

// validationResult is the -o json form of a validate run.
type validationResult struct {
	Service    string   `json:"service"`
	Valid      bool     `json:"valid"`
	Kind       string   `json:"kind,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func newValidateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration update payload for a service",
		Long: `Validate checks that every top-level key of the payload is a parameter of the service.

Examples:
  # Validate a file
  extsvc validate --service S3 --file s3.json

  # Validate stdin, JSON output for CI
  echo '{"host":"smtp.example.com"}' | extsvc validate -s SMTP -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, v)
		},
	}
	flags := cmd.Flags()
	flags.StringP("service", "s", "", "service identifier (S3|SMTP|SMS|NOTIFICATION)")
	flags.StringP("file", "f", "-", "payload file, - for stdin")
	flags.StringP("output", "o", "text", "output format (text|json)")
	return cmd
}

func runValidate(cmd *cobra.Command, v *viper.Viper) error {
	service := v.GetString("service")
	doc, err := readInput(cmd, v.GetString("file"))
	if err != nil {
		return err
	}

	err = newValidator(cmd).ValidateForUpdate(doc, service)
	if extsvc.IsSystemError(err) {
		return err
	}

	result := validationResult{Service: service, Valid: err == nil}
	if err != nil {
		result.Kind = extsvc.KindOf(err).String()
		result.Parameters = extsvc.UnsupportedParameters(err)
		result.Error = err.Error()
	}

	out := cmd.OutOrStdout()
	if v.GetString("output") == "json" {
		if encErr := writeJSON(cmd, result); encErr != nil {
			return encErr
		}
	} else if result.Valid {
		fmt.Fprintln(out, "ok")
	} else {
		fmt.Fprintf(out, "rejected (%s): %s\n", result.Kind, result.Error)
	}

	if !result.Valid {
		return errRejected
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
