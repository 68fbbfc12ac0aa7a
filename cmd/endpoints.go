package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deicod/usdafas/pkg/fas"
)

func init() {
	for _, ep := range fas.Endpoints() {
		rootCmd.AddCommand(newEndpointCommand(ep))
	}
}

// newEndpointCommand wraps one endpoint descriptor in a cobra command.
// Argument-count mismatches stay usage errors handled by cobra; every
// failure past that point is a plain error and exits 1 without usage
// text.
func newEndpointCommand(ep fas.Endpoint) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ep.Name + ep.ArgsUsage(),
		Short: ep.Short,
		Args:  cobra.ExactArgs(len(ep.Params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument validation already ran; from here on a
			// failure is a request error, not a usage error, so
			// it must not dump the usage text.
			cmd.SilenceUsage = true
			return runEndpoint(cmd, ep, args)
		},
	}
	return cmd
}

func runEndpoint(cmd *cobra.Command, ep fas.Endpoint, args []string) error {
	apiKey := resolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("USDA_API_KEY environment variable not set; set it using: export USDA_API_KEY='your_api_key'")
	}

	path, err := ep.Path(args)
	if err != nil {
		return err
	}

	client, err := fas.New(fas.Options{
		BaseURL: viper.GetString("base_url"),
		APIKey:  apiKey,
		Timeout: viper.GetDuration("timeout"),
	})
	if err != nil {
		return err
	}

	payload, err := client.Get(cmd.Context(), path, nil)
	if err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	// cobra's Println targets stderr; payloads belong on stdout.
	fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
	return nil
}
