package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skosovsky/extsvc"
)

func newServicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List services and their allowed parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := extsvc.DefaultCatalog()
			for _, svc := range extsvc.Services() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", svc, strings.Join(catalog.Allowed(svc).Names(), ", "))
			}
			return nil
		},
	}
}

func newSchemaCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a service's update payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := v.GetString("service")
			svc, ok := extsvc.ParseService(name)
			if !ok {
				return &extsvc.UnknownServiceError{Name: name}
			}
			return writeJSON(cmd, extsvc.DefaultCatalog().Schema(svc))
		},
	}
	cmd.Flags().StringP("service", "s", "", "service identifier (S3|SMTP|SMS|NOTIFICATION)")
	return cmd
}
