package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Benniphx/dzenbar/core/types"
)

// Load reads configuration from XDG or legacy paths and returns a Config.
func Load() types.Config {
	cfg := types.DefaultConfig()

	paths := configPaths()
	if p := os.Getenv("DZENBAR_CONFIG"); p != "" {
		paths = []string{p}
	}
	for _, p := range paths {
		if parseFile(p, &cfg) {
			break
		}
	}

	return cfg
}

func configPaths() []string {
	var paths []string

	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdg = filepath.Join(home, ".config")
		}
	}
	if xdg != "" {
		paths = append(paths, filepath.Join(xdg, "dzenbar", "config.yaml"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".dzenbar.conf"))
	}

	return paths
}

// parseFile applies the settings found in path. YAML files use lower-case
// keys (text_width: 20); anything else is read as KEY=VALUE lines.
func parseFile(path string, cfg *types.Config) bool {
	var (
		values map[string]string
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = readYAML(path)
	default:
		values, err = godotenv.Read(path)
	}
	if err != nil {
		return false
	}

	for key, value := range values {
		apply(cfg, strings.ToUpper(strings.TrimSpace(key)), value)
	}
	return true
}

func readYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(doc))
	for k, v := range doc {
		if v == nil {
			continue
		}
		values[k] = fmt.Sprint(v)
	}
	return values, nil
}

// apply sets one key. Out-of-range or malformed values keep the current setting.
func apply(cfg *types.Config, key, value string) {
	trimmed := strings.TrimSpace(value)

	switch key {
	case "MIN":
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			cfg.Min = f
		}
	case "MAX":
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			cfg.Max = f
		}
	case "LABEL":
		if l := strings.ToLower(trimmed); types.ValidLabel(l) {
			cfg.Label = l
		}
	case "LABEL_ABSOLUTE":
		cfg.LabelAbsolute = parseBool(trimmed)
	case "TEXT_WIDTH":
		if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= 1000 {
			cfg.TextWidth = n
		}
	case "FILL":
		if value != "" {
			cfg.Fill = value
		}
	case "MIDDLE":
		cfg.Middle = value
	case "BACKGROUND":
		if value != "" {
			cfg.Background = value
		}
	case "GRAPHIC_WIDTH":
		if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= 10000 {
			cfg.GraphicWidth = n
		}
	case "GRAPHIC_HEIGHT":
		if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= 1000 {
			cfg.GraphicHeight = n
		}
	case "FG_COLOR":
		cfg.FgColor = trimmed
	case "BG_COLOR":
		cfg.BgColor = trimmed
	case "BORDER_COLOR":
		cfg.BorderColor = trimmed
	case "HOLLOW":
		cfg.Hollow = parseBool(trimmed)
	case "CELL_WIDTH":
		if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= 64 {
			cfg.CellWidth = n
		}
	case "INTERVAL":
		if d, ok := parseInterval(trimmed); ok {
			cfg.Interval = d
		}
	case "LOG_LEVEL":
		if trimmed != "" {
			cfg.LogLevel = strings.ToLower(trimmed)
		}
	case "LOG_FILE":
		cfg.LogFile = trimmed
	}
}

// parseInterval accepts Go durations ("500ms") or whole seconds ("2").
func parseInterval(s string) (time.Duration, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, false
		}
		return time.Duration(n) * time.Second, true
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

func parseBool(s string) bool {
	lower := strings.ToLower(s)
	return lower == "true" || lower == "1" || lower == "yes"
}
