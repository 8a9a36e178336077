package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Platform PlatformConfig `mapstructure:"platform"`
	Feed     FeedConfig     `mapstructure:"feed"`

	Kafka                     KafkaConfig               `mapstructure:"kafka"`
	KafkaNotificationConsumer KafkaNotificationConsumer `mapstructure:"kafka_notification_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogstashConfig 远程日志配置 (可选)
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// PlatformConfig Lyvo 平台后端配置
type PlatformConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// AdminUserID 以 x-user-id 头标识的操作管理员
	AdminUserID   string `mapstructure:"admin_user_id"`
	Timeout       int    `mapstructure:"timeout"`
	PropertyLimit int    `mapstructure:"property_limit"`
}

// FeedConfig 通知聚合参数
type FeedConfig struct {
	PollSpec          string `mapstructure:"poll_spec"`
	PendingLimit      int    `mapstructure:"pending_limit"`
	NewUserLimit      int    `mapstructure:"new_user_limit"`
	NewUserWindowHour int    `mapstructure:"new_user_window_hours"`
	DismissMaxEntries int    `mapstructure:"dismiss_max_entries"`
	DismissMaxAgeDays int    `mapstructure:"dismiss_max_age_days"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaNotificationConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
