package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment" validate:"oneof=development production test"`
	Server      ServerConfig    `mapstructure:"server"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Session     SessionConfig   `mapstructure:"session"`
	Inference   InferenceConfig `mapstructure:"inference"`
	Database    DatabaseConfig  `mapstructure:"database"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string          `mapstructure:"host"`
	Port              int             `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout       time.Duration   `mapstructure:"readTimeout" validate:"gt=0"`     // seconds
	WriteTimeout      time.Duration   `mapstructure:"writeTimeout" validate:"gt=0"`    // seconds
	IdleTimeout       time.Duration   `mapstructure:"idleTimeout"`                     // seconds
	ReadHeaderTimeout time.Duration   `mapstructure:"readHeaderTimeout"`               // seconds
	ShutdownTimeout   time.Duration   `mapstructure:"shutdownTimeout" validate:"gt=0"` // seconds
	RateLimit         RateLimitConfig `mapstructure:"rateLimit"`
}

// RateLimitConfig throttles submissions per client IP; 0 disables it
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requestsPerSecond" validate:"gte=0"`
	Burst             int           `mapstructure:"burst" validate:"gte=0"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"` // minutes
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// SessionConfig contains challenge session settings
type SessionConfig struct {
	Store           string        `mapstructure:"store" validate:"oneof=memory redis"`
	TTL             time.Duration `mapstructure:"ttl" validate:"gt=0"` // minutes
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"`     // minutes
	CookieName      string        `mapstructure:"cookieName" validate:"required"`
	SecureCookie    bool          `mapstructure:"secureCookie"`
	Redis           RedisConfig   `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings, used when session.store is redis
type RedisConfig struct {
	Addr        string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db" validate:"gte=0"`
	UseTLS      bool          `mapstructure:"useTLS"`
	KeyPrefix   string        `mapstructure:"keyPrefix"`
	PoolSize    int           `mapstructure:"poolSize"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
	Enabled     bool          `mapstructure:"-"`
}

// InferenceConfig locates the model artifacts
type InferenceConfig struct {
	ModelPath     string  `mapstructure:"modelPath" validate:"required"`
	Threshold     float64 `mapstructure:"threshold" validate:"gt=0,lt=1"`
	EncoderSource string  `mapstructure:"encoderSource" validate:"oneof=file database"`
	EncoderPath   string  `mapstructure:"encoderPath" validate:"required_if=EncoderSource file"`
}

// DatabaseConfig contains database connection settings, used when inference.encoderSource is database
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// UsesDatabase reports whether the encoder vocabulary is read from the database
func (c *Config) UsesDatabase() bool {
	return c.Inference.EncoderSource == "database"
}
