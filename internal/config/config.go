// Package config provides configuration loading for headerscroll.
//
// Values are resolved in order: built-in defaults, HEADERSCROLL_* environment
// variables, the TOML config file, then the environment again so env wins.
// Every value is stored as a string and validated after loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/headerscroll/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "HEADERSCROLL_"
	// EnvConfigPath points at an explicit config file.
	EnvConfigPath = EnvPrefix + "CONFIG_PATH"

	// FileExtTOML is the file extension of the config file.
	FileExtTOML = ".toml"

	// FileModeDir is the permission for directories (rwxr-xr-x).
	FileModeDir os.FileMode = 0755
)

// Configuration keys.
const (
	KeySettleDurationMS = "settle_duration_ms"
	KeyFlingThreshold   = "fling_threshold"
	KeyYOffset          = "y_offset"
	KeyHeaderHeight     = "header_height"
	KeyContentPanes     = "content_panes"
	KeyFrameIntervalMS  = "frame_interval_ms"
	KeyLoggingEnabled   = "logging_enabled"
	KeyLoggingLevel     = "logging_level"
	KeyLoggingMaxFiles  = "logging_max_files"
	KeyDebug            = "debug"
	KeyConfigDir        = "config_dir"
	KeyStateDir         = "state_dir"
)

var (
	config   map[string]string
	defaults map[string]string
	source   string
	mu       sync.RWMutex
)

func init() {
	initValidators()
}

// Load resets and loads the configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)
	source = ""

	setDefaults()
	loadFromEnv()
	loadFromFile()
	loadFromEnv()
	validate()
}

func ensureLoaded() {
	mu.RLock()
	loaded := config != nil
	mu.RUnlock()
	if !loaded {
		Load()
	}
}

func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault(KeyConfigDir, filepath.Join(xdgConfigHome, "headerscroll"))
	setDefault(KeyStateDir, filepath.Join(xdgStateHome, "headerscroll"))
	setDefault(KeySettleDurationMS, "200")
	setDefault(KeyFlingThreshold, "50")
	setDefault(KeyYOffset, "0")
	setDefault(KeyHeaderHeight, "3")
	setDefault(KeyContentPanes, "2")
	setDefault(KeyFrameIntervalMS, "16")
	setDefault(KeyLoggingEnabled, "false")
	setDefault(KeyLoggingLevel, "info")
	setDefault(KeyLoggingMaxFiles, "10")
	setDefault(KeyDebug, "false")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// Path returns the config file that Load would read, or "" if there is none.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	mu.RLock()
	dir := config[KeyConfigDir]
	mu.RUnlock()
	if dir == "" {
		return ""
	}
	p := filepath.Join(dir, "config"+FileExtTOML)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func loadFromFile() {
	configPath := os.Getenv(EnvConfigPath)
	if configPath == "" {
		dir := config[KeyConfigDir]
		if dir == "" {
			return
		}
		configPath = filepath.Join(dir, "config"+FileExtTOML)
		if _, err := os.Stat(configPath); err != nil {
			return
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}
	if strings.ToLower(filepath.Ext(configPath)) != FileExtTOML {
		colors.Warning(fmt.Sprintf("unsupported config file extension: %s", configPath))
		return
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
	source = configPath
}

// coerceValue converts a decoded TOML value to its string form.
func coerceValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case int:
		return strconv.Itoa(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		name, value, ok := strings.Cut(env, "=")
		if !ok || name == EnvConfigPath {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		config[key] = value
	}
}

func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		def := defaults[key]
		normalized, err := validator(key, value, def)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, def))
			config[key] = def
			continue
		}
		config[key] = normalized
	}
}

// Source returns the config file loaded by the last Load, if any.
func Source() string {
	mu.RLock()
	defer mu.RUnlock()
	return source
}

// Get returns a configuration value or defaultValue.
func Get(key, defaultValue string) string {
	ensureLoaded()
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or defaultValue.
func GetInt(key string, defaultValue int) int {
	val := Get(key, "")
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or defaultValue.
func GetBool(key string, defaultValue bool) bool {
	switch normalizeBool(Get(key, "")) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Entry is a resolved configuration key.
type Entry struct {
	Key     string
	Value   string
	Default string
}

// Entries returns every configured key sorted by name.
func Entries() []Entry {
	ensureLoaded()
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: config[k], Default: defaults[k]})
	}
	return out
}

// Set overrides a single key for the current process, applying its validator.
func Set(key, value string) {
	ensureLoaded()
	mu.Lock()
	defer mu.Unlock()
	key = strings.ToLower(key)
	if validator := getValidator(key); validator != nil {
		normalized, err := validator(key, value, defaults[key])
		if err != nil {
			return
		}
		value = normalized
	}
	config[key] = value
}

// MarshalTOML renders the current configuration as a TOML document.
func MarshalTOML() ([]byte, error) {
	typed := make(map[string]any)
	for _, e := range Entries() {
		typed[e.Key] = typedValue(e.Value)
	}
	return toml.Marshal(typed)
}

func typedValue(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}
