package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"cumulus/internal/api"
	"cumulus/internal/config"
	"cumulus/internal/format"
	"cumulus/internal/logging"
)

// Main runs one CLI invocation end to end and returns the process exit
// code: 0 for success or usage halts, an error's declared code when it has
// one, and 1 for everything else. Interrupts exit 1 silently.
func Main(ctx context.Context, argv []string, env *Environment) int {
	code, err := run(ctx, argv, env)
	if err == nil {
		return code
	}

	if errors.Is(err, context.Canceled) {
		return 1
	}
	var abort *Abort
	if errors.As(err, &abort) {
		env.write(abort.Message)
		return abort.Code
	}
	var exit *ExitRequest
	if errors.As(err, &exit) {
		return exit.Code
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		env.write(usage.Message)
		return exitUsage
	}
	env.write(err.Error())
	return 1
}

// run is the single-pass pipeline: resolve module, resolve action, load
// config, execute, format. Any failure propagates straight out.
func run(ctx context.Context, argv []string, env *Environment) (int, error) {
	primary, outcome, err := ParsePrimaryArgs(env.Registry.ModuleNames(), argv)
	if err != nil {
		return 0, err
	}
	if outcome.Halted {
		env.write(outcome.Text)
		return outcome.Code, nil
	}

	inv, outcome, err := ParseModuleArgs(env, primary.Module, primary.Args)
	if err != nil {
		return 0, err
	}
	if outcome.Halted {
		env.write(outcome.Text)
		return outcome.Code, nil
	}

	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		return 0, err
	}

	logger := env.Logger
	if logger == nil {
		logger, err = logging.New(logging.Options{Level: resolveLogLevel(cfg)})
		if err != nil {
			return 0, err
		}
	}

	client := api.NewClient(api.Options{
		Username:    cfg.Username,
		APIKey:      cfg.APIKey,
		EndpointURL: cfg.EndpointURL,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		Transport:   env.Transport,
		Logger:      logger,
	})

	data, err := inv.Command.Execute(ctx, client, inv)
	if err != nil {
		return 0, err
	}
	if data != nil {
		env.write(format.Output(data, format.Mode(inv.Format)))
	}
	return 0, nil
}

// resolveLogLevel prefers the CUMULUS_LOG_LEVEL environment variable over
// the configured log_level.
func resolveLogLevel(cfg *config.Config) string {
	if level := os.Getenv("CUMULUS_LOG_LEVEL"); level != "" {
		return level
	}
	return cfg.LogLevel
}
