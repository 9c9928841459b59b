package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Messaging  MessagingConfig  `mapstructure:"messaging"`
	Pagination PaginationConfig `mapstructure:"pagination"`
}

type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	LoginURL string `mapstructure:"login_url"`
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level          string `mapstructure:"level"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

type StorageConfig struct {
	// Provider is "local" or "s3".
	Provider    string   `mapstructure:"provider"`
	Path        string   `mapstructure:"path"`
	URLPrefix   string   `mapstructure:"url_prefix"`
	MaxFileSize int64    `mapstructure:"max_file_size"`
	S3          S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket   string `mapstructure:"bucket"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

type MessagingConfig struct {
	// Provider is "log", "channel" or "kafka".
	Provider   string      `mapstructure:"provider"`
	BufferSize int         `mapstructure:"buffer_size"`
	Kafka      KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Brokers     []string `mapstructure:"brokers"`
	TopicPrefix string   `mapstructure:"topic_prefix"`
}

type PaginationConfig struct {
	PostsPerPage  int `mapstructure:"posts_per_page"`
	GroupsPerPage int `mapstructure:"groups_per_page"`
}

var GlobalConfig Config

// Init loads config/config.yaml.
func Init() error {
	return load("config")
}

// InitTest loads config/config.test.yaml.
func InitTest() error {
	return load("config.test")
}

// InitFile loads an explicit config file path.
func InitFile(path string) error {
	v := newViper()
	v.SetConfigFile(path)
	return read(v)
}

func load(name string) error {
	// project root, two levels above pkg/config
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(filepath.Dir(filepath.Dir(b)))

	v := newViper()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(basepath, "config"))
	v.AddConfigPath("config")
	return read(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	GlobalConfig = cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.login_url", "/auth/login")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("jwt.expiration", 24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.path", "media")
	v.SetDefault("storage.url_prefix", "/media")
	v.SetDefault("storage.max_file_size", 5*1024*1024)
	v.SetDefault("messaging.provider", "log")
	v.SetDefault("messaging.buffer_size", 256)
	v.SetDefault("messaging.kafka.topic_prefix", "blog")
	v.SetDefault("pagination.posts_per_page", 10)
	v.SetDefault("pagination.groups_per_page", 7)
}
