package commands

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"cumulus/internal/api"
	"cumulus/internal/cli"
	"cumulus/internal/config"
	"cumulus/internal/format"
)

func registerConfig(registry *cli.Registry) {
	module := registry.AddModule("config", "View and store client configuration")
	module.Add("show", configShow{})
	module.Add("setup", configSetup{})
}

type configShow struct{}

func (configShow) Doc() string { return "Show the resolved client configuration" }

func (configShow) RegisterFlags(fs *pflag.FlagSet) {}

func (configShow) Execute(ctx context.Context, client *api.Client, inv *cli.Invocation) (format.Value, error) {
	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		return nil, err
	}

	table := keyValueTable()
	table.Add(format.Text("username"), format.Text(cfg.Username))
	table.Add(format.Text("api_key"), format.Item(cfg.APIKey, maskSecret(cfg.APIKey)))
	table.Add(format.Text("endpoint_url"), format.Text(cfg.EndpointURL))
	return table, nil
}

// maskSecret keeps the last four characters visible so keys can be told
// apart without being disclosed.
func maskSecret(secret string) string {
	if secret == "" {
		return "-"
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

type configSetup struct{}

func (configSetup) Doc() string { return "Write credentials to the default config file" }

func (configSetup) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("username", "", "API username")
	fs.String("api-key", "", "API key")
	fs.String("endpoint", "", "API endpoint URL")
}

func (configSetup) Execute(ctx context.Context, client *api.Client, inv *cli.Invocation) (format.Value, error) {
	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		return nil, err
	}

	if username, _ := inv.Flags.GetString("username"); username != "" {
		cfg.Username = username
	}
	if apiKey, _ := inv.Flags.GetString("api-key"); apiKey != "" {
		cfg.APIKey = apiKey
	}
	if endpoint, _ := inv.Flags.GetString("endpoint"); endpoint != "" {
		cfg.EndpointURL = endpoint
	}
	if cfg.Username == "" || cfg.APIKey == "" {
		return nil, cli.Abortf(1, "config setup requires --username and --api-key")
	}

	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	if err := cfg.Write(path); err != nil {
		return nil, err
	}
	return format.Text("Configuration written to " + path), nil
}
