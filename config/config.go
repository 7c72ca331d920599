package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prasetyowira/starsign/constant"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults the CLI applies to every request
type Config struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	LogoPath    string `yaml:"logo_path"`
	LogoSize    int    `yaml:"logo_size"`
	ModuleSize  int    `yaml:"module_size"`
	Format      string `yaml:"format"`
	OutputFile  string `yaml:"output_file"`
}

// IsProduction reports whether logs should be JSON at info level
func (c Config) IsProduction() bool {
	return c.Environment == constant.EnvProduction
}

// Level parses LogLevel. An empty LogLevel means info in production and
// debug everywhere else.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		if c.IsProduction() {
			return zapcore.InfoLevel, nil
		}
		return zapcore.DebugLevel, nil
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("parsing log level: %w", err)
	}
	return level, nil
}

func defaults() Config {
	return Config{
		Environment: constant.EnvDevelopment,
		LogoSize:    constant.DefaultLogoSize,
		ModuleSize:  constant.DefaultModuleSize,
		Format:      "png",
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// LoadConfig builds the configuration from defaults, then the YAML file at
// path (skipped when path is empty or the file does not exist), then
// STARSIGN_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file: %w", err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg.Environment = getEnv("STARSIGN_ENV", cfg.Environment)
	cfg.LogLevel = getEnv("STARSIGN_LOG_LEVEL", cfg.LogLevel)
	cfg.LogoPath = getEnv("STARSIGN_LOGO_PATH", cfg.LogoPath)
	cfg.Format = getEnv("STARSIGN_FORMAT", cfg.Format)
	cfg.OutputFile = getEnv("STARSIGN_OUTPUT_FILE", cfg.OutputFile)
	cfg.LogoSize = getEnvInt("STARSIGN_LOGO_SIZE", cfg.LogoSize)
	cfg.ModuleSize = getEnvInt("STARSIGN_MODULE_SIZE", cfg.ModuleSize)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return defaultValue
}
