package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"wsd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "WSD_LOG_LEVEL")
	viper.BindEnv("database.dsn", "WSD_DATABASE_DSN")
	viper.BindEnv("auth.signingKey", "WSD_SIGNING_KEY")
	viper.BindEnv("analytics.timeseries.url", "WSD_TIMESERIES_URL")
	viper.BindEnv("analytics.warehouse.url", "WSD_WAREHOUSE_URL")
	viper.BindEnv("cache.enabled", "WSD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "WSD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "WriterStudioDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
