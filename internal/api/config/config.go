package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// setDefaults 聚合参数的默认值与原管理后台的口径保持一致
func setDefaults() {
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("platform.timeout", 10)
	viper.SetDefault("platform.property_limit", 100)

	viper.SetDefault("feed.poll_spec", "@every 30s")
	viper.SetDefault("feed.pending_limit", 3)
	viper.SetDefault("feed.new_user_limit", 3)
	viper.SetDefault("feed.new_user_window_hours", 24)
	viper.SetDefault("feed.dismiss_max_entries", 50)
	viper.SetDefault("feed.dismiss_max_age_days", 7)

	viper.SetDefault("kafka.consumer.session_timeout", 10)
	viper.SetDefault("kafka.consumer.heartbeat_interval", 3)
	viper.SetDefault("kafka.consumer.rebalance_timeout", 60)
	viper.SetDefault("kafka.consumer.max_processing_time", 30)
}
