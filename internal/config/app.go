package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Redis struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (config *Redis) Addr() string {
	return config.Host + ":" + config.Port
}

type ExchangerateAPI struct {
	BaseURL   string `mapstructure:"base_url"`
	AccessKey string `mapstructure:"access_key"`
}

type Auth struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	AccessTokenLifetimeDays  int    `mapstructure:"access_token_lifetime_days"`
	RefreshTokenLifetimeDays int    `mapstructure:"refresh_token_lifetime_days"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Scheduler struct {
	// Zero disables the currency list refresh job.
	RefreshIntervalMinutes int `mapstructure:"refresh_interval_minutes"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	DbServer        DbServer        `mapstructure:"db_server"`
	Redis           Redis           `mapstructure:"redis"`
	ExchangerateAPI ExchangerateAPI `mapstructure:"exchangerate"`
	Auth            Auth            `mapstructure:"auth"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	Scheduler       Scheduler       `mapstructure:"scheduler"`
	Logging         Logging         `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("scheduler.refresh_interval_minutes", 0)
	viper.SetDefault("auth.access_token_lifetime_days", 1)
	viper.SetDefault("auth.refresh_token_lifetime_days", 30)
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// redis env vars
	_ = viper.BindEnv("redis.host", "REDIS_HOST")
	_ = viper.BindEnv("redis.port", "REDIS_PORT")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = viper.BindEnv("redis.db", "REDIS_DB")

	// exchangerate provider env vars
	_ = viper.BindEnv("exchangerate.base_url", "EXCHANGERATE_BASE_URL")
	_ = viper.BindEnv("exchangerate.access_key", "EXCHANGERATE_ACCESS_KEY")

	// auth env vars
	_ = viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = viper.BindEnv("auth.access_token_lifetime_days", "ACCESS_TOKEN_LIFETIME_DAYS")
	_ = viper.BindEnv("auth.refresh_token_lifetime_days", "REFRESH_TOKEN_LIFETIME_DAYS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// scheduler env vars
	_ = viper.BindEnv("scheduler.refresh_interval_minutes", "SCHEDULER_REFRESH_INTERVAL_MINUTES")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
