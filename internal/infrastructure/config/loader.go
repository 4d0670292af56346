package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. FD_SERVER_PORT
const EnvPrefix = "FD"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from configs/<FD_ENV>.yaml, then applies
// FD_-prefixed environment overrides and validates the result
func LoadConfig() (*Config, error) {
	// a missing .env is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.Session.Redis.Enabled = config.Session.Store == "redis"

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the struct rules of every section
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.rateLimit.requestsPerSecond", 5)
	v.SetDefault("server.rateLimit.burst", 10)
	v.SetDefault("server.rateLimit.idleTimeout", 10) // minutes

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", 30)             // minutes
	v.SetDefault("session.cleanupInterval", 10) // minutes
	v.SetDefault("session.cookieName", "fd_session")
	v.SetDefault("session.secureCookie", false)
	v.SetDefault("session.redis.addr", "")
	v.SetDefault("session.redis.username", "")
	v.SetDefault("session.redis.password", "")
	v.SetDefault("session.redis.db", 0)
	v.SetDefault("session.redis.useTLS", false)
	v.SetDefault("session.redis.keyPrefix", "fraud-screening:session:")
	v.SetDefault("session.redis.poolSize", 10)
	v.SetDefault("session.redis.dialTimeout", 3) // seconds

	v.SetDefault("inference.modelPath", "artifacts/lgb_model.txt")
	v.SetDefault("inference.threshold", 0.5)
	v.SetDefault("inference.encoderSource", "file")
	v.SetDefault("inference.encoderPath", "artifacts/label_encoder.yaml")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
}

// getEnvironment determines the environment from FD_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short secret variable names onto their keys
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"FD_DB_HOST":        "database.host",
		"FD_DB_PORT":        "database.port",
		"FD_DB_USERNAME":    "database.username",
		"FD_DB_PASSWORD":    "database.password",
		"FD_DB_NAME":        "database.database",
		"FD_DB_SSL_MODE":    "database.sslMode",
		"FD_REDIS_ADDR":     "session.redis.addr",
		"FD_REDIS_PASSWORD": "session.redis.password",
		"FD_MODEL_PATH":     "inference.modelPath",
		"FD_ENCODER_PATH":   "inference.encoderPath",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Session.Redis.DialTimeout = time.Duration(config.Session.Redis.DialTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	// minutes
	config.Server.RateLimit.IdleTimeout = time.Duration(config.Server.RateLimit.IdleTimeout) * time.Minute
	config.Session.TTL = time.Duration(config.Session.TTL) * time.Minute
	config.Session.CleanupInterval = time.Duration(config.Session.CleanupInterval) * time.Minute
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
}
