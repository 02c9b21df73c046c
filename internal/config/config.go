package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Cache    CacheConfig    `yaml:"cache"`
	Broker   BrokerConfig   `yaml:"broker"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"          env-default:"issuetracker"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"24h"`
	SignInEnabled   bool          `yaml:"signin_enabled"     env:"AUTH_SIGNIN_ENABLED"      env-default:"false"`
	SignInSecret    string        `yaml:"signin_secret"      env:"AUTH_SIGNIN_SECRET"`
	SignInRateLimit int           `yaml:"signin_rate_limit"  env:"AUTH_SIGNIN_RATE_LIMIT"   env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CacheConfig holds settings for the rendered-view cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"true"`
	Size    int           `yaml:"size"    env:"CACHE_SIZE"    env-default:"512"`
	TTL     time.Duration `yaml:"ttl"     env:"CACHE_TTL"     env-default:"30s"`
}

// BrokerConfig holds the AMQP settings used to fan out view invalidations
// between server instances. An empty URL disables the broker.
type BrokerConfig struct {
	URL      string `yaml:"url"      env:"BROKER_URL"`
	Exchange string `yaml:"exchange" env:"BROKER_EXCHANGE" env-default:"issuetracker.views"`
}

// Enabled reports whether a broker URL is configured.
func (c BrokerConfig) Enabled() bool { return c.URL != "" }

// TracingConfig holds OpenTelemetry exporter settings. An empty endpoint disables export.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"     env:"TRACING_ENDPOINT"`
	ServiceName string  `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"issuetracker"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO" env-default:"1.0"`
}

// Enabled reports whether an exporter endpoint is configured.
func (c TracingConfig) Enabled() bool { return c.Endpoint != "" }
