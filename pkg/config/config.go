package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "shelfstock"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Replenishment ReplenishmentConfig
	Abc           AbcConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHELFSTOCK_APP_ENV" required:"true"`
	Port         string `envconfig:"SHELFSTOCK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHELFSTOCK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHELFSTOCK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SHELFSTOCK_DB_DSN"`

	Host     string `envconfig:"SHELFSTOCK_DB_HOST"`
	Port     int    `envconfig:"SHELFSTOCK_DB_PORT" default:"5432"`
	User     string `envconfig:"SHELFSTOCK_DB_USER"`
	Password string `envconfig:"SHELFSTOCK_DB_PASSWORD"`
	Name     string `envconfig:"SHELFSTOCK_DB_NAME"`
	SSLMode  string `envconfig:"SHELFSTOCK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHELFSTOCK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHELFSTOCK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHELFSTOCK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHELFSTOCK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either SHELFSTOCK_DB_DSN or host/user/name settings are required")
	}
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	query := dsn.Query()
	query.Set("sslmode", d.SSLMode)
	dsn.RawQuery = query.Encode()
	d.DSN = dsn.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"SHELFSTOCK_REDIS_URL"`
	Address      string        `envconfig:"SHELFSTOCK_REDIS_ADDR"`
	Password     string        `envconfig:"SHELFSTOCK_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHELFSTOCK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHELFSTOCK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHELFSTOCK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHELFSTOCK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHELFSTOCK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHELFSTOCK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHELFSTOCK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHELFSTOCK_JWT_ISSUER" default:"shelfstock"`
	ExpirationMinutes int    `envconfig:"SHELFSTOCK_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHELFSTOCK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHELFSTOCK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHELFSTOCK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHELFSTOCK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHELFSTOCK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"SHELFSTOCK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"SHELFSTOCK_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"SHELFSTOCK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHELFSTOCK_FEATURE_AUTO_MIGRATE" default:"false"`
}

// ReplenishmentConfig surfaces every constant of the planning formulas so
// deployments can tune them without a rebuild.
type ReplenishmentConfig struct {
	WindowDays        int     `envconfig:"SHELFSTOCK_REPLENISH_WINDOW_DAYS" default:"30"`
	SafetyStockDays   int     `envconfig:"SHELFSTOCK_REPLENISH_SAFETY_STOCK_DAYS" default:"2"`
	LeadTimeDays      int     `envconfig:"SHELFSTOCK_REPLENISH_LEAD_TIME_DAYS" default:"7"`
	RoundingUnit      int     `envconfig:"SHELFSTOCK_REPLENISH_ROUNDING_UNIT" default:"10"`
	BasicRoundingUnit int     `envconfig:"SHELFSTOCK_REPLENISH_BASIC_ROUNDING_UNIT" default:"5"`
	LowStockThreshold int     `envconfig:"SHELFSTOCK_REPLENISH_LOW_STOCK_THRESHOLD" default:"5"`
	DefaultMinStock   int     `envconfig:"SHELFSTOCK_REPLENISH_DEFAULT_MIN_STOCK" default:"10"`
	DefaultMaxStock   int     `envconfig:"SHELFSTOCK_REPLENISH_DEFAULT_MAX_STOCK" default:"100"`
	WeekdayMultiplier float64 `envconfig:"SHELFSTOCK_REPLENISH_WEEKDAY_MULTIPLIER" default:"0.8"`
	WeekendMultiplier float64 `envconfig:"SHELFSTOCK_REPLENISH_WEEKEND_MULTIPLIER" default:"1.4"`
	MinSeasonality    float64 `envconfig:"SHELFSTOCK_REPLENISH_MIN_SEASONALITY" default:"0.1"`
}

type AbcConfig struct {
	DefaultWindowDays  int     `envconfig:"SHELFSTOCK_ABC_DEFAULT_WINDOW_DAYS" default:"90"`
	CategoryAThreshold float64 `envconfig:"SHELFSTOCK_ABC_CATEGORY_A_THRESHOLD" default:"80"`
	CategoryBThreshold float64 `envconfig:"SHELFSTOCK_ABC_CATEGORY_B_THRESHOLD" default:"95"`
}
