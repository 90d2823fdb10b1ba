package config

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ItsNotGoodName/x-cwm/internal/core"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func NewKeyValue(filePath string) KeyValue {
	return KeyValue{
		filePath: filePath,
	}
}

// KeyValue reads a file of key=value lines.
type KeyValue struct {
	filePath string
}

func (kv KeyValue) Exists() (bool, error) {
	return core.FileExists(kv.filePath)
}

func (kv KeyValue) Read() (Config, error) {
	file, err := os.Open(kv.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig, nil
		}
		return Config{}, err
	}
	defer file.Close()

	return ParseKeyValue(file)
}

// ParseKeyValue reads key=value lines over the defaults. Lines that do not
// parse and unknown keys are skipped.
func ParseKeyValue(r io.Reader) (Config, error) {
	cfg := defaultConfig

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		env, err := godotenv.Unmarshal(line)
		if err != nil {
			slog.Debug("Skipping config line", "package", "config", "line", n, "error", err)
			continue
		}

		for key, value := range env {
			set(&cfg, key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}

	return normalize(cfg), nil
}

func set(cfg *Config, key, value string) {
	switch key {
	case "mod_key":
		// Values naming neither modifier keep the current one.
		if strings.Contains(value, "Alt") || strings.Contains(value, "Super") {
			cfg.ModKey = normalizeModKey(value)
		}
	case "terminal":
		cfg.Terminal = normalizeCommand(value, cfg.Terminal)
	case "launcher":
		cfg.Launcher = normalizeCommand(value, cfg.Launcher)
	case "workspace_capacity":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
			cfg.Capacity = n
		}
	case "key_left":
		setKey(&cfg.Keys.Left, value)
	case "key_right":
		setKey(&cfg.Keys.Right, value)
	case "key_close":
		setKey(&cfg.Keys.Close, value)
	case "key_hide":
		setKey(&cfg.Keys.Hide, value)
	case "key_max":
		setKey(&cfg.Keys.Maximize, value)
	case "key_menu":
		setKey(&cfg.Keys.Menu, value)
	case "key_terminal":
		setKey(&cfg.Keys.Terminal, value)
	case "key_launcher":
		setKey(&cfg.Keys.Launcher, value)
	}
}

func setKey(key *string, value string) {
	if fields := strings.Fields(value); len(fields) > 0 {
		*key = fields[0]
	}
}

func NewYAML(filePath string) YAML {
	return YAML{
		filePath: filePath,
	}
}

type YAML struct {
	filePath string
}

func (y YAML) Exists() (bool, error) {
	return core.FileExists(y.filePath)
}

func (y YAML) Read() (Config, error) {
	file, err := os.Open(y.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig, nil
		}
		return Config{}, err
	}
	defer file.Close()

	cfg := defaultConfig
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return normalize(cfg), nil
}
