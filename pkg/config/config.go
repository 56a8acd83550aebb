package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Record store drivers.
const (
	RecordDriverJSON     = "json"
	RecordDriverPostgres = "postgres"
)

// Asset store drivers.
const (
	AssetDriverLocal = "local"
	AssetDriverMinIO = "minio"
)

type Config struct {
	Env  string
	Port int

	Records  RecordsConfig
	Assets   AssetsConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Admin    AdminConfig
	Cache    CacheConfig
	Log      LogConfig
}

// RecordsConfig selects and tunes the record store backend.
type RecordsConfig struct {
	Driver  string
	DataDir string
}

// AssetsConfig selects the binary asset backend.
type AssetsConfig struct {
	Driver    string
	StaticDir string
	MaxUpload int64
	MinIO     MinIOConfig
}

// MinIOConfig carries remote object store credentials.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig signs admin sessions and their embedded tokens.
type SessionConfig struct {
	Secret      string
	CookieName  string
	TokenExpiry time.Duration
}

// AdminConfig holds the single operator credential, supplied externally.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// CacheConfig tunes the optional public page cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Records = RecordsConfig{
		Driver:  v.GetString("RECORD_DRIVER"),
		DataDir: v.GetString("DATA_DIR"),
	}

	cfg.Assets = AssetsConfig{
		Driver:    v.GetString("ASSET_DRIVER"),
		StaticDir: v.GetString("STATIC_DIR"),
		MaxUpload: v.GetInt64("MAX_UPLOAD_BYTES"),
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Session = SessionConfig{
		Secret:      v.GetString("SESSION_SECRET"),
		CookieName:  v.GetString("SESSION_COOKIE_NAME"),
		TokenExpiry: parseDuration(v.GetString("SESSION_TOKEN_EXPIRY"), 24*time.Hour),
	}

	cfg.Admin = AdminConfig{
		Username:     v.GetString("ADMIN_USERNAME"),
		PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if cfg.Admin.Username == "" || cfg.Admin.PasswordHash == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD_HASH are required")
	}
	switch cfg.Records.Driver {
	case RecordDriverJSON, RecordDriverPostgres:
	default:
		return errors.New("RECORD_DRIVER must be json or postgres")
	}
	switch cfg.Assets.Driver {
	case AssetDriverLocal, AssetDriverMinIO:
	default:
		return errors.New("ASSET_DRIVER must be local or minio")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("RECORD_DRIVER", RecordDriverJSON)
	v.SetDefault("DATA_DIR", "data")

	v.SetDefault("ASSET_DRIVER", AssetDriverLocal)
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("MAX_UPLOAD_BYTES", 16*1024*1024)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "aesi_web")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("SESSION_COOKIE_NAME", "aesi_session")
	v.SetDefault("SESSION_TOKEN_EXPIRY", "24h")

	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
