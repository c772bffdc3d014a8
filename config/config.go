// Package config holds the flag-backed settings for the hexpixi binary
// and shell. Engine packages take plain values or their own config
// structs; only the harness reads this.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Also usable as flag names (--max-depth 8) and as
// arguments to the shell `config` command.
const (
	ConfigDebug       = "debug"
	ConfigMaxDepth    = "max-depth"
	ConfigTimeLimitMs = "time-limit-ms"
	ConfigTTSizeMB    = "tt-size-mb"
	ConfigVerbose     = "verbose"
	ConfigPosition    = "position"
	ConfigCPUProfile  = "cpu-profile"
	ConfigMemProfile  = "mem-profile"
)

// Config wraps a viper instance bound to the command-line flags. Runtime
// overrides via Set layer on top of whatever the flags established.
type Config struct {
	vc   *viper.Viper
	fs   *pflag.FlagSet
	args []string
}

// Load parses args (typically os.Args[1:]) and binds the results.
// Positional arguments left over after flag parsing are kept for the
// caller; the binary treats them as a one-shot shell command.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("hexpixi", pflag.ContinueOnError)
	// Flags come before any one-shot command; everything from the first
	// positional on is handed to the shell untouched, so command options
	// like `autoplay -depth 3` are not mistaken for binary flags.
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigMaxDepth, 20, "maximum search depth in plies")
	fs.Int(ConfigTimeLimitMs, 30000, "search time budget in milliseconds; 0 or less searches without a clock")
	fs.Int(ConfigTTSizeMB, 0, "transposition table budget in MB; 0 sizes it from system memory")
	fs.Bool(ConfigVerbose, true, "print a summary line after each completed search depth")
	fs.String(ConfigPosition, "", "starting position: a sample name (see `position` in the shell) or a full position string")
	fs.String(ConfigCPUProfile, "", "write a cpu profile to this file")
	fs.String(ConfigMemProfile, "", "write a memory profile to this file on exit")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	vc := viper.New()
	if err := vc.BindPFlags(fs); err != nil {
		return err
	}
	c.vc = vc
	c.fs = fs
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments that remained after flag
// parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetBool(key string) bool {
	return c.vc.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.vc.GetInt(key)
}

func (c *Config) GetString(key string) string {
	return c.vc.GetString(key)
}

// Set overrides a setting at runtime. The key must name a known setting;
// the value is cast lazily by the typed getters, so "8" works for an int
// setting and "true" for a bool.
func (c *Config) Set(key, value string) error {
	if c.fs.Lookup(key) == nil {
		return fmt.Errorf("unknown setting %q", key)
	}
	c.vc.Set(key, value)
	return nil
}

// Settings returns a snapshot of every setting, overrides included.
func (c *Config) Settings() map[string]any {
	return c.vc.AllSettings()
}
