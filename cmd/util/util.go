package util

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const EnvPrefix = "sparsecoll"

var ErrBadLogFormat = errors.New("bad log format")

type Config struct {
	LogLevel  string
	LogFormat string
	Seed      uint64
}

// SetupFlags adds the flags shared by every command.
func SetupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	cmd.PersistentFlags().Uint64("seed", 1, "seed for the shuffle op")
}

// InitConfig loads .env files and lets SPARSECOLL_* variables override flags.
func InitConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

func GetConfig() *Config {
	return &Config{
		LogLevel:  viper.GetString("log-level"),
		LogFormat: viper.GetString("log-format"),
		Seed:      viper.GetUint64("seed"),
	}
}

func NewLogger(conf *Config, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	switch conf.LogFormat {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadLogFormat, conf.LogFormat)
	}
	return logger, nil
}
