package configs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

type Config struct {
	Port string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	JWTSecret string

	// local | supabase | minio
	StorageDriver   string
	UploadDir       string
	PublicBaseURL   string
	SupabaseURL     string
	SupabaseKey     string
	SupabaseBucket  string
	MaxUploadSizeMB int

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioBucket     string
	MinioUseSSL     bool
	MinioPublicBase string

	RateLimitMax       int
	UploadRateLimitMax int

	CorsOrigins string

	LogLevel string
}

var (
	JWTSecret string
	App       *Config
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		} else {
			log.Println(".env file loaded")
		}
	} else {
		log.Println("running in Railway, using system environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:               v.GetString("PORT"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSLMODE"),
		DBAutoMigrate:      v.GetBool("DB_AUTO_MIGRATE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		StorageDriver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
		UploadDir:          v.GetString("UPLOAD_DIR"),
		PublicBaseURL:      strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		SupabaseURL:        strings.TrimRight(v.GetString("SUPABASE_PROJECT_URL"), "/"),
		SupabaseKey:        v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseBucket:     v.GetString("SUPABASE_BUCKET"),
		MaxUploadSizeMB:    v.GetInt("MAX_UPLOAD_SIZE_MB"),
		MinioEndpoint:      v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:     v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:     v.GetString("MINIO_SECRET_KEY"),
		MinioBucket:        v.GetString("MINIO_BUCKET"),
		MinioUseSSL:        v.GetBool("MINIO_USE_SSL"),
		MinioPublicBase:    strings.TrimRight(v.GetString("MINIO_PUBLIC_BASE"), "/"),
		RateLimitMax:       v.GetInt("RATE_LIMIT_MAX"),
		UploadRateLimitMax: v.GetInt("UPLOAD_RATE_LIMIT_MAX"),
		CorsOrigins:        v.GetString("CORS_ALLOW_ORIGINS"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}

	InitLogger(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is not set!")
	} else {
		log.Println("JWT_SECRET loaded.")
	}

	JWTSecret = cfg.JWTSecret
	App = cfg
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "4000")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("UPLOAD_DIR", "public/uploads")
	v.SetDefault("SUPABASE_BUCKET", "image")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 5)
	v.SetDefault("MINIO_BUCKET", "images")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("UPLOAD_RATE_LIMIT_MAX", 10)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// DSN builds the postgres connection string. statement_timeout matches the
// per-request timeout of middlewares.RequestContext.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=mutualaid&options=-c%%20statement_timeout%%3D5000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// =======================
// LOGGER
// =======================
func InitLogger(level string) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := log.WithFields(log.Fields{
		"file":    utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
	})

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		entry.WithError(err).Error(sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		entry.Warn("[SLOW SQL] " + sql)
	case l.LogLevel >= gormLogger.Info:
		entry.Debug(sql)
	}
}
