package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load, e.g.
// TAGENV_REMOTE or TAGENV_DRY_RUN.
const EnvPrefix = "TAGENV_"

// Load builds a Config from, in increasing precedence: defaults, TAGENV_*
// environment variables, and flags that were set on the command line.
func Load(flags *pflag.FlagSet, termio *TerminalIO) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(GetDefault(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: load environment: %w", err)
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("config: load flags: %w", err)
		}
	}

	overrides := &Config{}
	if err := k.Unmarshal("", overrides); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if os.Getenv("NO_COLOR") != "" {
		overrides.NoColor = true
	}
	cfg := NewWithTerminalIO(overrides, termio)
	return cfg, cfg.Validate()
}

// envKey maps TAGENV_DRY_RUN to dry-run.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
