package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Parts       PartsConfig       `yaml:"parts"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Audit       AuditConfig       `yaml:"audit"`
	Users       UsersConfig       `yaml:"users"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"Content-Disposition,X-Request-Id"`
}

// RateLimitConfig limits mutating requests per client address.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"           env:"RATE_LIMIT_ENABLED"           env-default:"true"`
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"1m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"67108864"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"partsdb"`
}

// AuthConfig holds token verification settings. Tokens are either HS256
// tokens signed with JWTSecret or RS256 tokens from the JWKS at JWKSURL.
type AuthConfig struct {
	JWTSecret           string        `yaml:"jwt_secret"            env:"AUTH_JWT_SECRET"`
	JWTIssuer           string        `yaml:"jwt_issuer"            env:"AUTH_JWT_ISSUER"            env-default:"partsdb"`
	AccessTokenTTL      time.Duration `yaml:"access_token_ttl"      env:"AUTH_ACCESS_TOKEN_TTL"      env-default:"12h"`
	JWKSURL             string        `yaml:"jwks_url"              env:"AUTH_JWKS_URL"`
	JWKSIssuer          string        `yaml:"jwks_issuer"           env:"AUTH_JWKS_ISSUER"`
	JWKSRefreshInterval time.Duration `yaml:"jwks_refresh_interval" env:"AUTH_JWKS_REFRESH_INTERVAL" env-default:"1h"`
	UsersGroup          string        `yaml:"users_group"           env:"AUTH_USERS_GROUP"           env-default:"users"`
	AdminsGroup         string        `yaml:"admins_group"          env:"AUTH_ADMINS_GROUP"          env-default:"administrators"`
}

// PartsConfig holds part lifecycle rules.
type PartsConfig struct {
	LabPrefix          string        `yaml:"lab_prefix"           env:"PARTS_LAB_PREFIX"           env-default:"YC"`
	DeleteWindow       time.Duration `yaml:"delete_window"        env:"PARTS_DELETE_WINDOW"        env-default:"168h"`
	LegacyDeleteGuard  bool          `yaml:"legacy_delete_guard"  env:"PARTS_LEGACY_DELETE_GUARD"  env-default:"false"`
	MaxAttachmentBytes int64         `yaml:"max_attachment_bytes" env:"PARTS_MAX_ATTACHMENT_BYTES" env-default:"16777216"`
	MaxPageSize        int           `yaml:"max_page_size"        env:"PARTS_MAX_PAGE_SIZE"        env-default:"1000"`
}

// AttachmentsConfig selects where attachment bytes live.
// Empty S3 credentials fall back to the default AWS chain.
type AttachmentsConfig struct {
	Driver          string `yaml:"driver"            env:"ATTACHMENTS_DRIVER"              env-default:"postgres"`
	Compress        bool   `yaml:"compress"          env:"ATTACHMENTS_COMPRESS"            env-default:"false"`
	Bucket          string `yaml:"bucket"            env:"ATTACHMENTS_S3_BUCKET"`
	Region          string `yaml:"region"            env:"ATTACHMENTS_S3_REGION"           env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint"          env:"ATTACHMENTS_S3_ENDPOINT"`
	PathStyle       bool   `yaml:"path_style"        env:"ATTACHMENTS_S3_PATH_STYLE"       env-default:"false"`
	Prefix          string `yaml:"prefix"            env:"ATTACHMENTS_S3_PREFIX"           env-default:"attachments/"`
	AccessKeyID     string `yaml:"access_key_id"     env:"ATTACHMENTS_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"ATTACHMENTS_S3_SECRET_ACCESS_KEY"`
}

// AuditConfig holds audit sink settings.
type AuditConfig struct {
	BufferSize   int           `yaml:"buffer_size"   env:"AUDIT_BUFFER_SIZE"   env-default:"256"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"AUDIT_WRITE_TIMEOUT" env-default:"5s"`
}

// UsersConfig holds user directory cache settings.
type UsersConfig struct {
	CacheSize int           `yaml:"cache_size" env:"USERS_CACHE_SIZE" env-default:"1024"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"USERS_CACHE_TTL"  env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

const (
	AttachmentDriverPostgres = "postgres"
	AttachmentDriverS3       = "s3"
)
