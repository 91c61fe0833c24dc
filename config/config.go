package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-site-service/internal/model"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Site     SiteConfig
}

// ConsumeInvalidations reports whether this replica should join the Kafka
// consumer group. Without a cache there is nothing to invalidate.
func (c *Config) ConsumeInvalidations() bool {
	return c.Kafka.Enabled && c.Redis.Enabled
}

type ServerConfig struct {
	AppEnv         string
	GRPCPort       string
	MigrateOnStart bool
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	CacheTTL  time.Duration
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	// GroupID must differ per replica so every replica sees every event.
	GroupID string
}

// SiteConfig carries deployment-wide settings defaults. A nil field means
// the variable was not set, so the content preset decides instead.
type SiteConfig struct {
	BusinessName       *string
	Tagline            *string
	BusinessType       *string
	HeroHeading        *string
	HeroCTALink        *string
	PrimaryColor       *string
	AccentColor        *string
	FontFamily         *string
	DarkMode           *bool
	Phone              *string
	Email              *string
	Address            *string
	ServiceArea        *string
	ServiceRadiusMiles *int
	BookingProvider    *string
	SocialLinks        map[string]string
}

// Partial converts the site defaults into the base layer used when
// resolving every tenant's settings.
func (s SiteConfig) Partial() model.PartialSettings {
	return model.PartialSettings{
		BusinessName:       s.BusinessName,
		Tagline:            s.Tagline,
		BusinessType:       s.BusinessType,
		HeroHeading:        s.HeroHeading,
		HeroCTALink:        s.HeroCTALink,
		PrimaryColor:       s.PrimaryColor,
		AccentColor:        s.AccentColor,
		FontFamily:         s.FontFamily,
		DarkMode:           s.DarkMode,
		Phone:              s.Phone,
		Email:              s.Email,
		Address:            s.Address,
		ServiceArea:        s.ServiceArea,
		ServiceRadiusMiles: s.ServiceRadiusMiles,
		BookingProvider:    s.BookingProvider,
		SocialLinks:        s.SocialLinks,
	}
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:         getEnv("APP_ENV", "dev"),
			GRPCPort:       getEnv("GRPC_PORT", ":8086"),
			MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_site"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Enabled:   getEnvBool("REDIS_ENABLED", true),
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "site:settings:"),
			CacheTTL:  getEnvDuration("REDIS_CACHE_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", true),
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_SETTINGS", "site.settings.events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "site-settings-"+hostname()),
		},
		Site: SiteConfig{
			BusinessName:       lookupEnv("SITE_BUSINESS_NAME"),
			Tagline:            lookupEnv("SITE_TAGLINE"),
			BusinessType:       lookupEnv("SITE_BUSINESS_TYPE"),
			HeroHeading:        lookupEnv("SITE_HERO_HEADING"),
			HeroCTALink:        lookupEnv("SITE_HERO_CTA_LINK"),
			PrimaryColor:       lookupEnv("SITE_PRIMARY_COLOR"),
			AccentColor:        lookupEnv("SITE_ACCENT_COLOR"),
			FontFamily:         lookupEnv("SITE_FONT_FAMILY"),
			DarkMode:           lookupEnvBool("SITE_DARK_MODE"),
			Phone:              lookupEnv("SITE_PHONE"),
			Email:              lookupEnv("SITE_EMAIL"),
			Address:            lookupEnv("SITE_ADDRESS"),
			ServiceArea:        lookupEnv("SITE_SERVICE_AREA"),
			ServiceRadiusMiles: lookupEnvInt("SITE_SERVICE_RADIUS_MILES"),
			BookingProvider:    lookupEnv("SITE_BOOKING_PROVIDER"),
			SocialLinks:        getEnvMap("SITE_SOCIAL_LINKS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}

// getEnvMap parses "name=value,name=value". Entries without '=' are skipped.
func getEnvMap(key string) map[string]string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	out := map[string]string{}
	for _, pair := range strings.Split(value, ",") {
		k, v, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(k) == "" {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

func lookupEnv(key string) *string {
	if value, ok := os.LookupEnv(key); ok {
		return &value
	}
	return nil
}

func lookupEnvInt(key string) *int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return &i
		}
	}
	return nil
}

func lookupEnvBool(key string) *bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return &b
		}
	}
	return nil
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "local"
	}
	return h
}
