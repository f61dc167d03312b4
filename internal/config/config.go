package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	"github.com/gubarz/literati/internal/literate"
	"github.com/gubarz/literati/internal/render"
)

// Config holds the application configuration
type Config struct {
	Engine         string   `mapstructure:"engine"`
	Engines        []string `mapstructure:"engines"`
	Highlight      bool     `mapstructure:"highlight"`
	HighlightStyle string   `mapstructure:"highlight_style"`
	HardWraps      bool     `mapstructure:"hard_wraps"`
	Unsafe         bool     `mapstructure:"unsafe"`
	Extensions     []string `mapstructure:"extensions"`
	Output         string   `mapstructure:"output"`
	OutDir         string   `mapstructure:"out_dir"`
	PreviewStyle   string   `mapstructure:"preview_style"`
	PreviewWidth   int      `mapstructure:"preview_width"`
	LogLevel       string   `mapstructure:"log_level"`
	LogFormat      string   `mapstructure:"log_format"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	setDefaults()

	viper.SetConfigName("literati")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "literati"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("LITERATI")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// InitFile loads configuration from an explicit file. Unlike Init, a
// missing or malformed file is an error.
func InitFile(path string) error {
	setDefaults()

	viper.SetConfigFile(path)
	viper.SetEnvPrefix("LITERATI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	return viper.Unmarshal(&C)
}

func setDefaults() {
	viper.SetDefault("engine", "")                        // Empty means first available
	viper.SetDefault("engines", render.DefaultPreference) // Probe order for the default engine
	viper.SetDefault("highlight", false)                  // Chroma highlighting (goldmark only)
	viper.SetDefault("highlight_style", "monokai")        // Chroma style name
	viper.SetDefault("hard_wraps", false)                 // Newlines become <br>
	viper.SetDefault("unsafe", false)                     // Pass raw HTML through
	viper.SetDefault("extensions", literate.DefaultExtensions)
	viper.SetDefault("output", "print")
	viper.SetDefault("out_dir", "site")
	viper.SetDefault("preview_style", "dark")
	viper.SetDefault("preview_width", 80)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
}

// GetEngine returns the explicitly configured engine, or "" for automatic
func GetEngine() string {
	return strings.TrimSpace(viper.GetString("engine"))
}

// GetEngines returns the engine preference order
func GetEngines() []string {
	return listValue("engines")
}

// GetHighlight returns whether fenced code is syntax highlighted
func GetHighlight() bool {
	return viper.GetBool("highlight")
}

// GetHighlightStyle returns the chroma style name
func GetHighlightStyle() string {
	return viper.GetString("highlight_style")
}

// GetExtensions returns the literate source file extensions
func GetExtensions() []string {
	return listValue("extensions")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetOutDir returns the build output directory with tilde expansion
func GetOutDir() string {
	return expandTilde(viper.GetString("out_dir"))
}

// GetLogLevel returns the log level name
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetLogFormat returns the log format name
func GetLogFormat() string {
	return viper.GetString("log_format")
}

// RenderOptions collects the HTML rendering options
func RenderOptions() render.Options {
	return render.Options{
		HardWraps:      viper.GetBool("hard_wraps"),
		Unsafe:         viper.GetBool("unsafe"),
		Highlight:      GetHighlight(),
		HighlightStyle: GetHighlightStyle(),
	}
}

// PreviewOptions collects the terminal rendering options
func PreviewOptions() render.Options {
	return render.Options{
		Style: viper.GetString("preview_style"),
		Width: viper.GetInt("preview_width"),
	}
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetHighlightStyle sets the chroma style at runtime
func SetHighlightStyle(style string) {
	viper.Set("highlight_style", style)
	C.HighlightStyle = style
}

// listValue reads a list key. Entries may be separated by commas or
// whitespace, which is how environment variables deliver lists.
func listValue(key string) []string {
	joined := strings.Join(viper.GetStringSlice(key), ",")
	return strings.FieldsFunc(joined, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
