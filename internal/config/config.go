package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"kanadrill-go/internal/kana"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env         string    `mapstructure:"env"`          // current application environment (local, production)
	DatasetPath string    `mapstructure:"dataset_path"` // gojuon JSON file; empty uses the embedded table
	Log         Log       `mapstructure:"log"`          // logging section
	Drill       Drill     `mapstructure:"drill"`        // initial drill settings
	Audio       Audio     `mapstructure:"audio"`        // clip playback section
	Worksheet   Worksheet `mapstructure:"worksheet"`    // worksheet export section
}

// Log configures the zap logger. The terminal belongs to the UI, so logs
// always go to a file.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Drill holds the settings the session starts with.
type Drill struct {
	Direction string `mapstructure:"direction"` // e.g. hiragana-to-romaji
	Range     string `mapstructure:"range"`     // "all" or a row label such as か行
}

// Audio configures clip playback. Playback is disabled unless both are set.
type Audio struct {
	Dir     string `mapstructure:"dir"`     // directory holding <romaji>.wav clips
	Command string `mapstructure:"command"` // player command, e.g. "aplay -q"
}

// Worksheet configures a one-shot export. When Output is set the program
// writes the worksheet and exits instead of starting the drill.
type Worksheet struct {
	Output      string `mapstructure:"output"`
	Count       int    `mapstructure:"count"`
	ShowAnswers bool   `mapstructure:"show_answers"`
	RandomOrder bool   `mapstructure:"random_order"`
}

// ParsedDirection parses the configured drill direction.
func (d Drill) ParsedDirection() (kana.Direction, error) {
	return kana.ParseDirection(d.Direction)
}

// Flags declares the command-line flags understood by Load.
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("kanadrill", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file")
	flags.String("direction", "", "drill direction, e.g. romaji-to-katakana")
	flags.String("range", "", `row range: "all" or a row label such as か行`)
	flags.String("dataset", "", "gojuon dataset JSON file")
	flags.String("worksheet", "", "write a worksheet (.html or .xlsx) and exit")
	flags.Int("count", 0, "number of worksheet questions")
	flags.Bool("answers", false, "print answers next to worksheet questions")
	flags.Bool("ordered", false, "keep table order on the worksheet instead of shuffling")
	return flags
}

// Load reads configuration from config files, the environment and the
// given command-line arguments. Flags take precedence over everything else.
func Load(args []string) (*Config, error) {
	flags := Flags()
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// A missing .env is the common case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	}

	v.SetDefault("env", "local")
	v.SetDefault("dataset_path", "")
	v.SetDefault("log.file", "kanadrill.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("drill.direction", "hiragana-to-romaji")
	v.SetDefault("drill.range", string(kana.RangeAll))
	v.SetDefault("audio.dir", "")
	v.SetDefault("audio.command", "")
	v.SetDefault("worksheet.output", "")
	v.SetDefault("worksheet.count", 20)
	v.SetDefault("worksheet.show_answers", false)
	v.SetDefault("worksheet.random_order", true)

	v.SetEnvPrefix("KANADRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"drill.direction":        "direction",
		"drill.range":            "range",
		"dataset_path":           "dataset",
		"worksheet.output":       "worksheet",
		"worksheet.count":        "count",
		"worksheet.show_answers": "answers",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if ordered, _ := flags.GetBool("ordered"); ordered {
		cfg.Worksheet.RandomOrder = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at use.
func (c *Config) Validate() error {
	if _, err := c.Drill.ParsedDirection(); err != nil {
		return fmt.Errorf("%w: drill.direction: %v", ErrInvalidConfig, err)
	}
	if c.Worksheet.Count <= 0 {
		return fmt.Errorf("%w: worksheet.count must be positive, got %d", ErrInvalidConfig, c.Worksheet.Count)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}
