// Package config loads the optional TOML configuration of the lutools
// commands and sets up logging from it.
package config

import (
	"fmt"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/lumberjack"

	"github.com/lutools/lutmap"
)

const (
	// EnvVar names the environment variable holding an explicit config path.
	EnvVar = "LUTOOLS_CONFIG"

	// DefaultCubeResolution is used when -cube is given without a number.
	DefaultCubeResolution = 25
)

type CubeConfig struct {
	Resolution int `toml:"resolution"`
}

type OutputConfig struct {
	JPEGQuality    int    `toml:"jpeg_quality"`
	PNGCompression string `toml:"png_compression"`
	GIFColors      int    `toml:"gif_colors"`
	GIFDither      bool   `toml:"gif_dither"`
}

type BatchConfig struct {
	Workers int `toml:"workers"`
}

type LogConfig struct {
	Level   string `toml:"level"`
	Logfile string `toml:"file"`
	MaxSize int    `toml:"max_size"`
	MaxAge  int    `toml:"max_age"`
}

// Config is the parsed configuration. The zero value is not useful, start
// from Default.
type Config struct {
	Cube    CubeConfig
	Output  OutputConfig
	Batch   BatchConfig
	Logging LogConfig

	// Path of the file this was loaded from, empty for defaults.
	Path string `toml:"-"`
}

func Default() Config {
	return Config{
		Cube:    CubeConfig{Resolution: DefaultCubeResolution},
		Output:  OutputConfig{JPEGQuality: 90, PNGCompression: "fast", GIFColors: 256, GIFDither: true},
		Logging: LogConfig{Level: "warn", MaxSize: 10, MaxAge: 30},
	}
}

// Location returns the config file to use: $LUTOOLS_CONFIG if set, else
// lutools/lutools.toml in the user config directory if it exists, else "".
func Location() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "lutools", "lutools.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// Load reads the file at path over the defaults. An empty path gives the
// defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	c.Path = path
	if c.Logging.Logfile != "" && !filepath.IsAbs(c.Logging.Logfile) {
		c.Logging.Logfile = filepath.Join(filepath.Dir(path), c.Logging.Logfile)
	}
	return c, c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Cube.Resolution != 0 && c.Cube.Resolution < 2 {
		return fmt.Errorf("cube.resolution must be 0 or at least 2, not %d", c.Cube.Resolution)
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("output.jpeg_quality must be between 1 and 100, not %d", c.Output.JPEGQuality)
	}
	if c.Output.GIFColors < 1 || c.Output.GIFColors > 256 {
		return fmt.Errorf("output.gif_colors must be between 1 and 256, not %d", c.Output.GIFColors)
	}
	if _, err := c.pngLevel(); err != nil {
		return err
	}
	if _, err := c.logLevel(); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative")
	}
	return nil
}

func (c *Config) pngLevel() (png.CompressionLevel, error) {
	switch strings.ToLower(c.Output.PNGCompression) {
	case "", "fast":
		return png.BestSpeed, nil
	case "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "best":
		return png.BestCompression, nil
	}
	return 0, fmt.Errorf("unknown output.png_compression: %q", c.Output.PNGCompression)
}

func (c *Config) logLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return l, fmt.Errorf("unknown logging.level: %q", c.Logging.Level)
	}
	return l, nil
}

// EncodeOptions returns the codec options for writing output images.
func (c *Config) EncodeOptions() []lutmap.EncodeOption {
	level, _ := c.pngLevel()
	var drawer draw.Drawer = draw.Src
	if c.Output.GIFDither {
		drawer = draw.FloydSteinberg
	}
	return []lutmap.EncodeOption{
		lutmap.JPEGQuality(c.Output.JPEGQuality),
		lutmap.PNGCompressionLevel(level),
		lutmap.GIFNumColors(c.Output.GIFColors),
		lutmap.GIFDrawer(drawer),
	}
}

// Workers returns the number of images processed concurrently.
func (c *Config) Workers() int {
	if c.Batch.Workers > 0 {
		return c.Batch.Workers
	}
	return runtime.GOMAXPROCS(0)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetLogger installs a text logger as the lutmap logger. It writes to a
// rotating log file if one is configured and to stderr otherwise. The
// returned closer releases the log file.
func (c *Config) SetLogger(stderr io.Writer) (io.Closer, error) {
	level, err := c.logLevel()
	if err != nil {
		return nil, err
	}
	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if c.Logging.Logfile != "" {
		l := &lumberjack.Logger{
			Filename: c.Logging.Logfile,
			MaxSize:  c.Logging.MaxSize, // megabytes
			MaxAge:   c.Logging.MaxAge,  // days
		}
		out, closer = l, l
	}
	lutmap.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closer, nil
}
