package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Trivia  TriviaConfig
	Session SessionConfig
	Stats   StatsConfig
	Redis   RedisConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TriviaConfig configures the external trivia provider.
type TriviaConfig struct {
	BaseURL       string `yaml:"base_url"`
	Timeout       time.Duration
	QuestionCount int `yaml:"question_count"`
}

// SessionConfig configures quiz session behavior.
// QuestionTime is the per-question budget in seconds; TickInterval is how
// often the countdown fires (tests set it to 0 to disable the timer).
type SessionConfig struct {
	QuestionTime int `yaml:"question_time"`
	TickInterval time.Duration
}

// StatsConfig configures the user stats store. Backend is either "cookie"
// (browser-held record, the default) or "redis" (shared server-side record).
type StatsConfig struct {
	Backend    string
	CookieName string `yaml:"cookie_name"`
	TTL        time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Env   string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("trivia.base_url", "https://opentdb.com")
	viper.SetDefault("trivia.timeout", 10)
	viper.SetDefault("trivia.question_count", 10)
	viper.SetDefault("session.question_time", 30)
	viper.SetDefault("session.tick_interval", 1)
	viper.SetDefault("stats.backend", "cookie")
	viper.SetDefault("stats.cookie_name", "userStats")
	viper.SetDefault("stats.ttl_days", 30)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Log the config file being used
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Trivia: TriviaConfig{
			BaseURL:       viper.GetString("trivia.base_url"),
			Timeout:       viper.GetDuration("trivia.timeout") * time.Second,
			QuestionCount: viper.GetInt("trivia.question_count"),
		},
		Session: SessionConfig{
			QuestionTime: viper.GetInt("session.question_time"),
			TickInterval: viper.GetDuration("session.tick_interval") * time.Second,
		},
		Stats: StatsConfig{
			Backend:    viper.GetString("stats.backend"),
			CookieName: viper.GetString("stats.cookie_name"),
			TTL:        viper.GetDuration("stats.ttl_days") * 24 * time.Hour,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if baseURL := os.Getenv("TRIVIA_BASE_URL"); baseURL != "" {
		config.Trivia.BaseURL = baseURL
	}
	if backend := os.Getenv("STATS_BACKEND"); backend != "" {
		config.Stats.Backend = backend
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}
