package config

import (
	"strings"

	"github.com/ItsNotGoodName/x-cwm/internal/wm"
)

// MaxCommandLength is the longest terminal or launcher command kept from a
// config file.
const MaxCommandLength = 255

var defaultConfig = Config{
	ModKey: "Super",
	Keys: Keys{
		Left:     "Left",
		Right:    "Right",
		Close:    "q",
		Hide:     "h",
		Maximize: "m",
		Menu:     "Tab",
		Terminal: "Return",
		Launcher: "d",
	},
	Terminal: "alacritty",
	Launcher: "dmenu_run",
	Capacity: wm.DefaultCapacity,
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return defaultConfig
}

type Config struct {
	// ModKey is the modifier held for every binding, "Super" or "Alt".
	ModKey   string `yaml:"mod_key" json:"mod_key"`
	Keys     Keys   `yaml:"keys" json:"keys"`
	Terminal string `yaml:"terminal" json:"terminal"`
	Launcher string `yaml:"launcher" json:"launcher"`
	Capacity int    `yaml:"workspace_capacity" json:"workspace_capacity"`
}

// Keys are keysym names, e.g. "Left", "Return" or "q".
type Keys struct {
	Left     string `yaml:"left" json:"left"`
	Right    string `yaml:"right" json:"right"`
	Close    string `yaml:"close" json:"close"`
	Hide     string `yaml:"hide" json:"hide"`
	Maximize string `yaml:"maximize" json:"maximize"`
	Menu     string `yaml:"menu" json:"menu"`
	Terminal string `yaml:"terminal" json:"terminal"`
	Launcher string `yaml:"launcher" json:"launcher"`
}

// normalize replaces invalid and empty values with defaults.
func normalize(cfg Config) Config {
	cfg.ModKey = normalizeModKey(cfg.ModKey)
	cfg.Terminal = normalizeCommand(cfg.Terminal, defaultConfig.Terminal)
	cfg.Launcher = normalizeCommand(cfg.Launcher, defaultConfig.Launcher)
	if cfg.Capacity < 1 {
		cfg.Capacity = defaultConfig.Capacity
	}

	keys := []struct {
		value *string
		def   string
	}{
		{&cfg.Keys.Left, defaultConfig.Keys.Left},
		{&cfg.Keys.Right, defaultConfig.Keys.Right},
		{&cfg.Keys.Close, defaultConfig.Keys.Close},
		{&cfg.Keys.Hide, defaultConfig.Keys.Hide},
		{&cfg.Keys.Maximize, defaultConfig.Keys.Maximize},
		{&cfg.Keys.Menu, defaultConfig.Keys.Menu},
		{&cfg.Keys.Terminal, defaultConfig.Keys.Terminal},
		{&cfg.Keys.Launcher, defaultConfig.Keys.Launcher},
	}
	for _, k := range keys {
		if *k.value == "" {
			*k.value = k.def
		}
	}

	return cfg
}

// normalizeModKey checks for Alt before Super so "Alt+Super" picks Alt.
func normalizeModKey(value string) string {
	switch {
	case strings.Contains(value, "Alt"):
		return "Alt"
	case strings.Contains(value, "Super"):
		return "Super"
	default:
		return defaultConfig.ModKey
	}
}

// normalizeCommand keeps the first whitespace separated token.
func normalizeCommand(value, def string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return def
	}

	cmd := fields[0]
	if len(cmd) > MaxCommandLength {
		cmd = cmd[:MaxCommandLength]
	}
	return cmd
}
