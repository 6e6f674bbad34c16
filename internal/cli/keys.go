package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newKeysCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the top-level keys of a payload without validating them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readInput(cmd, v.GetString("file"))
			if err != nil {
				return err
			}
			keys, err := newValidator(cmd).ExtractTopLevelKeys(doc)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if v.GetString("output") == "json" {
				return json.NewEncoder(out).Encode(keys)
			}
			for _, k := range keys {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringP("file", "f", "-", "payload file, - for stdin")
	flags.StringP("output", "o", "text", "output format (text|json)")
	return cmd
}
