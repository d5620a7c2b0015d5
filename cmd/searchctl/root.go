package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damedic/azsearch-toolbox-go/rest"
)

const envPrefix = "SEARCHCTL"

// cli carries the state shared by all commands of one invocation.
type cli struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "searchctl",
		Short: "CLI for search services and their resource provider",
		Long: `searchctl talks to the data plane of a search service and to the
management endpoint of its resource provider.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SEARCHCTL_*, e.g. SEARCHCTL_API_KEY)
3. Configuration file (--config, ./searchctl.yaml or ~/.searchctl/searchctl.yaml)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Configuration file")
	flags.String("endpoint", "", "Search service URL, e.g. https://myservice.search.windows.net")
	flags.String("management-endpoint", "", "Resource manager URL (default https://management.azure.com)")
	flags.String("subscription", "", "Subscription ID for management requests")
	flags.String("api-version", "", "API version of the targeted endpoint")
	flags.String("api-key", "", "API key of the search service")
	flags.StringP("output", "o", "table", "Output format: table, json, yaml")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(c.capabilitiesCmd())
	root.AddCommand(c.indexesCmd())
	root.AddCommand(c.decodeCmd())

	return root
}

func (c *cli) configure(cmd *cobra.Command) error {
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if file := c.v.GetString("config"); file != "" {
		c.v.SetConfigFile(file)
	} else {
		c.v.SetConfigName("searchctl")
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
		c.v.AddConfigPath("$HOME/.searchctl")
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	c.logger = slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))

	switch format := c.v.GetString("output"); format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %s (use table, json or yaml)", format)
	}
	return nil
}

func (c *cli) serviceClient() (*rest.ServiceClient, error) {
	endpoint := c.v.GetString("endpoint")
	if endpoint == "" {
		return nil, fmt.Errorf("no service endpoint configured, set --endpoint or %s_ENDPOINT", envPrefix)
	}
	baseURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	header := http.Header{}
	if key := c.v.GetString("api-key"); key != "" {
		header.Set("api-key", key)
	}
	return &rest.ServiceClient{
		BaseURL:    baseURL,
		APIVersion: c.v.GetString("api-version"),
		Header:     header,
		Logger:     c.logger,
	}, nil
}

func (c *cli) managementClient() (*rest.ManagementClient, error) {
	subscription := c.v.GetString("subscription")
	if subscription == "" {
		return nil, fmt.Errorf("no subscription configured, set --subscription or %s_SUBSCRIPTION", envPrefix)
	}

	client := &rest.ManagementClient{
		SubscriptionID: subscription,
		APIVersion:     c.v.GetString("api-version"),
		Logger:         c.logger,
	}
	if endpoint := c.v.GetString("management-endpoint"); endpoint != "" {
		baseURL, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid management endpoint: %w", err)
		}
		client.BaseURL = baseURL
	}
	return client, nil
}
