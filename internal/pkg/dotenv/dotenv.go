package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// override maps a command line flag onto the environment variable it replaces.
type override struct {
	flag  string
	env   string
	usage string
}

var overrides = []override{
	{flag: "port", env: "PORT", usage: "server port (overrides PORT)"},
	{flag: "envios-api", env: "ENVIOS_API_BASE_URL", usage: "remote envios API base URL (overrides ENVIOS_API_BASE_URL)"},
	{flag: "lifecycle-policy", env: "LIFECYCLE_TRANSITION_POLICY", usage: "unrestricted or monotonic (overrides LIFECYCLE_TRANSITION_POLICY)"},
}

// Load reads .env into the process environment without replacing variables
// that are already set, then applies command line overrides.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("read .env: %w", err)
	}
	return applyFlags(flag.CommandLine, os.Args[1:])
}

func applyFlags(fs *flag.FlagSet, args []string) error {
	values := make(map[string]*string, len(overrides))
	for _, o := range overrides {
		values[o.env] = fs.String(o.flag, "", o.usage)
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for _, o := range overrides {
		value := *values[o.env]
		if value == "" {
			continue
		}
		if err := os.Setenv(o.env, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", o.env, err)
		}
	}
	return nil
}
