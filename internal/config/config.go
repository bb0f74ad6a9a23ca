package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// DefaultPath is where run and pick look when --config is not given
	DefaultPath = "data/config/coordinates.json"

	// EnvPrefix namespaces the environment overrides (CLICKLOOP_LOOPS, ...)
	EnvPrefix = "CLICKLOOP"

	defaultLoops             = 3
	defaultWaitBetweenClicks = 1.0
	defaultWaitBetweenLoops  = 2.0
)

// Keys shared by the config file, the environment and the run flags
const (
	KeyLoops             = "loops"
	KeyWaitBetweenClicks = "wait_between_clicks"
	KeyWaitBetweenLoops  = "wait_between_loops"
	KeyCoordinates       = "coordinates"
)

// Config is the click configuration file. Field order is the order written by Save.
type Config struct {
	Loops             int                         `json:"loops" mapstructure:"loops"`
	WaitBetweenClicks float64                     `json:"wait_between_clicks" mapstructure:"wait_between_clicks"`
	WaitBetweenLoops  float64                     `json:"wait_between_loops" mapstructure:"wait_between_loops"`
	Coordinates       []domain.RelativeCoordinate `json:"coordinates" mapstructure:"coordinates"`
}

// Default returns a configuration with no coordinates and the default timings
func Default() *Config {
	return &Config{
		Loops:             defaultLoops,
		WaitBetweenClicks: defaultWaitBetweenClicks,
		WaitBetweenLoops:  defaultWaitBetweenLoops,
		Coordinates:       []domain.RelativeCoordinate{},
	}
}

// ToSequence converts the file form into what the click engine runs
func (c *Config) ToSequence() domain.ClickSequence {
	return domain.ClickSequence{
		Coordinates:       append([]domain.RelativeCoordinate(nil), c.Coordinates...),
		Loops:             c.Loops,
		WaitBetweenClicks: seconds(c.WaitBetweenClicks),
		WaitBetweenLoops:  seconds(c.WaitBetweenLoops),
	}
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var errs error

	if c.Loops < 1 {
		errs = multierr.Append(errs, errors.Wrapf(domain.ErrInvalidLoops, "got %d", c.Loops))
	}
	if c.WaitBetweenClicks < 0 {
		errs = multierr.Append(errs, errors.Errorf("wait_between_clicks must be a non-negative number, got %v", c.WaitBetweenClicks))
	}
	if c.WaitBetweenLoops < 0 {
		errs = multierr.Append(errs, errors.Errorf("wait_between_loops must be a non-negative number, got %v", c.WaitBetweenLoops))
	}

	for i, coord := range c.Coordinates {
		if coord.Monitor < 0 {
			errs = multierr.Append(errs, errors.Errorf("coordinate %d: monitor must be a non-negative integer, got %d", i, coord.Monitor))
		}
		if coord.X < 0 {
			errs = multierr.Append(errs, errors.Errorf("coordinate %d: x must be a non-negative number, got %v", i, coord.X))
		}
		if coord.Y < 0 {
			errs = multierr.Append(errs, errors.Errorf("coordinate %d: y must be a non-negative number, got %v", i, coord.Y))
		}
		if coord.Button != "" && !coord.Button.Valid() {
			errs = multierr.Append(errs, errors.Errorf("coordinate %d: button must be %q or %q, got %q", i, domain.ButtonLeft, domain.ButtonRight, coord.Button))
		}
	}

	return errs
}

// Loader reads configuration files through viper
type Loader struct {
	logger *zap.Logger
	flags  map[string]*pflag.Flag
}

// NewLoader creates a configuration loader
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{
		logger: logger,
		flags:  make(map[string]*pflag.Flag),
	}
}

// BindFlag makes a command-line flag override key when the flag is set
func (l *Loader) BindFlag(key string, flag *pflag.Flag) {
	if flag != nil {
		l.flags[key] = flag
	}
}

// Load reads the file at path for a run. A missing file is a configuration error.
// Precedence is flag, then environment, then file, then defaults.
func (l *Loader) Load(path string) (*Config, error) {
	v := l.newViper()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for key, flag := range l.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "failed to bind flag %s", flag.Name)
		}
	}

	found, err := l.read(v, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.ConfigError{Path: path, Err: errors.New("file not found")}
	}

	return l.decode(v, path)
}

// LoadForUpdate reads the file pick appends to. A missing or empty file yields the
// defaults. Environment and flags are ignored so the saved timings stay as they were.
func (l *Loader) LoadForUpdate(path string) (cfg *Config, existed bool, err error) {
	v := l.newViper()

	found, err := l.read(v, path)
	if err != nil {
		return nil, false, err
	}
	if !found {
		l.logger.Info("No existing configuration, starting from defaults", zap.String("path", path))
		return Default(), false, nil
	}

	cfg, err = l.decode(v, path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func (l *Loader) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(KeyLoops, defaultLoops)
	v.SetDefault(KeyWaitBetweenClicks, defaultWaitBetweenClicks)
	v.SetDefault(KeyWaitBetweenLoops, defaultWaitBetweenLoops)
	v.SetDefault(KeyCoordinates, []interface{}{})
	return v
}

// read loads path into v. found is false when the file is missing or holds only whitespace.
func (l *Loader) read(v *viper.Viper, path string) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &domain.ConfigError{Path: path, Err: errors.Wrap(err, "failed to read file")}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		l.logger.Warn("Configuration file is empty", zap.String("path", path))
		return false, nil
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return false, &domain.ConfigError{Path: path, Err: errors.Wrap(err, "invalid JSON")}
	}

	// Types are checked on the file alone: env and flag overrides arrive as strings
	file := viper.New()
	file.SetConfigType("json")
	if err := file.ReadConfig(bytes.NewReader(data)); err != nil {
		return false, &domain.ConfigError{Path: path, Err: errors.Wrap(err, "invalid JSON")}
	}
	if err := checkShape(file); err != nil {
		return false, &domain.ConfigError{Path: path, Err: err}
	}
	return true, nil
}

func (l *Loader) decode(v *viper.Viper, path string) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &domain.ConfigError{Path: path, Err: errors.Wrap(err, "failed to decode")}
	}
	if cfg.Coordinates == nil {
		cfg.Coordinates = []domain.RelativeCoordinate{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &domain.ConfigError{Path: path, Err: err}
	}

	l.logger.Info("Configuration loaded",
		zap.String("path", path),
		zap.Int("loops", cfg.Loops),
		zap.Float64("waitBetweenClicks", cfg.WaitBetweenClicks),
		zap.Float64("waitBetweenLoops", cfg.WaitBetweenLoops),
		zap.Int("coordinates", len(cfg.Coordinates)))
	return cfg, nil
}

// checkShape validates the raw JSON types of a file before Unmarshal, which would
// otherwise coerce them ("5" to 5, true to 1) or zero-fill missing coordinate fields.
func checkShape(v *viper.Viper) error {
	var errs error

	if v.IsSet(KeyLoops) {
		if err := checkInteger("loops", v.Get(KeyLoops)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, key := range []string{KeyWaitBetweenClicks, KeyWaitBetweenLoops} {
		if v.IsSet(key) {
			if err := checkNumber(key, v.Get(key)); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	if !v.IsSet(KeyCoordinates) {
		return errs
	}
	raw := v.Get(KeyCoordinates)
	list, ok := raw.([]interface{})
	if !ok {
		return multierr.Append(errs, errors.Errorf("coordinates must be a list, got %T", raw))
	}

	for i, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			errs = multierr.Append(errs, errors.Errorf("coordinate %d must be an object", i))
			continue
		}
		for _, field := range []string{"monitor", "x", "y"} {
			if _, present := entry[field]; !present {
				errs = multierr.Append(errs, errors.Errorf("coordinate %d missing '%s' field", i, field))
			}
		}
		if m, present := entry["monitor"]; present {
			if err := checkInteger("monitor", m); err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "coordinate %d", i))
			}
		}
		for _, field := range []string{"x", "y"} {
			if val, present := entry[field]; present {
				if err := checkNumber(field, val); err != nil {
					errs = multierr.Append(errs, errors.Wrapf(err, "coordinate %d", i))
				}
			}
		}
		if b, present := entry["button"]; present {
			if _, isString := b.(string); !isString {
				errs = multierr.Append(errs, errors.Errorf("coordinate %d: button must be a string, got %T", i, b))
			}
		}
	}

	return errs
}

// JSON numbers decode as float64
func checkNumber(name string, val interface{}) error {
	if _, ok := val.(float64); !ok {
		return errors.Errorf("%s must be a number, got %T", name, val)
	}
	return nil
}

func checkInteger(name string, val interface{}) error {
	n, ok := val.(float64)
	if !ok {
		return errors.Errorf("%s must be an integer, got %T", name, val)
	}
	if n != math.Trunc(n) {
		return errors.Errorf("%s must be an integer, got %v", name, n)
	}
	return nil
}

// Save writes cfg to path as 2-space indented JSON, replacing the file atomically
func Save(path string, cfg *Config) error {
	out := *cfg
	if out.Coordinates == nil {
		out.Coordinates = []domain.RelativeCoordinate{}
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode configuration")
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	// Keep the permissions of the file being replaced; CreateTemp uses 0600
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".clickloop-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to set file mode")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write configuration")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write configuration")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
