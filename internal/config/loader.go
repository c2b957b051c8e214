package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFileName is the standard configuration file name.
	DefaultConfigFileName = "tracker.toml"

	// XDGConfigSubdir is the subdirectory under XDG_CONFIG_HOME for the tracker.
	XDGConfigSubdir = "swg-resource-tracker"
)

// fileHeader is written above the encoded settings of a generated file.
const fileHeader = `# SWG Resource Tracker configuration
#
# storage.backend: json | sqlite
# storage.dir: empty uses the per-user application data directory
# display.theme: standard | dark | rebel | imperial
# logging.file: relative paths live in the storage directory; empty logs to stderr

`

// ErrNotFound is returned by Load when no file exists and no default may be written.
var ErrNotFound = errors.New("no configuration file found")

// LoadError wraps a failure to read or validate a specific config file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration and reports the file it came from.
//
// An explicit path is used as given. Otherwise the first existing file of
// SearchPaths wins. When none exists and createDefault is set, the defaults
// are written to the first search path whose directory can be created; if
// no file can be written the defaults are returned with an empty path.
func Load(explicitPath string, createDefault bool) (*Config, string, error) {
	if explicitPath != "" {
		return loadAt(explicitPath)
	}

	candidates := SearchPaths()
	for _, path := range candidates {
		if isFile(path) {
			return loadAt(path)
		}
	}

	if !createDefault {
		return nil, "", fmt.Errorf("%w; searched: %s", ErrNotFound, strings.Join(candidates, ", "))
	}

	cfg := Default()
	for _, path := range candidates {
		if err := Save(cfg, path); err == nil {
			return cfg, path, nil
		}
	}
	return cfg, "", nil
}

// SearchPaths lists the config locations in order of precedence: the XDG
// config directory, then the working directory.
func SearchPaths() []string {
	var paths []string
	if dir := xdgConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, XDGConfigSubdir, DefaultConfigFileName))
	}
	return append(paths, filepath.Join(".", DefaultConfigFileName))
}

func loadAt(path string) (*Config, string, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, "", &LoadError{Path: path, Err: err}
	}
	return cfg, path, nil
}

// decodeFile overlays a TOML file on the defaults and validates the result.
func decodeFile(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("parsing TOML: %s", perr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as TOML to path, creating its directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(fileHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// xdgConfigDir is $XDG_CONFIG_HOME, falling back to ~/.config.
func xdgConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DataDir returns the directory holding the data file, given the default
// per-user directory to use when storage.dir is empty.
func DataDir(cfg *Config, defaultDir string) string {
	if cfg.Storage.Dir != "" {
		return cfg.Storage.Dir
	}
	return defaultDir
}

// DataFile returns the full path of the data file. The sqlite backend swaps
// the file extension for .db.
func DataFile(cfg *Config, defaultDir string) string {
	file := cfg.Storage.File
	if cfg.Storage.Backend == BackendSQLite {
		file = strings.TrimSuffix(file, filepath.Ext(file)) + ".db"
	}
	return filepath.Join(DataDir(cfg, defaultDir), file)
}

// EnsureLogFile resolves the configured log file against dataDir and creates
// its directory. An empty setting returns "", meaning log to stderr.
func EnsureLogFile(cfg *Config, dataDir string) (string, error) {
	logPath := cfg.Logging.File
	if logPath == "" {
		return "", nil
	}
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(dataDir, logPath)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0750); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}
	return logPath, nil
}
