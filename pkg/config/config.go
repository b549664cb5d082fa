package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Cart          CartConfig
	Sheets        SheetsConfig
	Automation    AutomationConfig
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
	Env          string `envconfig:"BUILDSETU_APP_ENV" required:"true"`
	Port         string `envconfig:"BUILDSETU_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BUILDSETU_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BUILDSETU_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BUILDSETU_DB_DSN"`
	Driver string `envconfig:"BUILDSETU_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BUILDSETU_DB_HOST"`
	LegacyPort     int    `envconfig:"BUILDSETU_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BUILDSETU_DB_USER"`
	LegacyPassword string `envconfig:"BUILDSETU_DB_PASSWORD"`
	LegacyName     string `envconfig:"BUILDSETU_DB_NAME"`
	LegacySSLMode  string `envconfig:"BUILDSETU_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BUILDSETU_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BUILDSETU_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BUILDSETU_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BUILDSETU_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BUILDSETU_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BUILDSETU_REDIS_ADDR"`
	Password     string        `envconfig:"BUILDSETU_REDIS_PASSWORD"`
	DB           int           `envconfig:"BUILDSETU_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BUILDSETU_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BUILDSETU_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BUILDSETU_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BUILDSETU_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BUILDSETU_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"BUILDSETU_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BUILDSETU_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"BUILDSETU_JWT_EXPIRATION_MINUTES" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BUILDSETU_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BUILDSETU_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BUILDSETU_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BUILDSETU_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BUILDSETU_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"BUILDSETU_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"BUILDSETU_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"BUILDSETU_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"BUILDSETU_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"BUILDSETU_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"BUILDSETU_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BUILDSETU_AUTO_MIGRATE" default:"false"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"BUILDSETU_CART_TTL" default:"720h"`
}

type SheetsConfig struct {
	SpreadsheetID   string `envconfig:"BUILDSETU_SHEETS_SPREADSHEET_ID"`
	Range           string `envconfig:"BUILDSETU_SHEETS_RANGE" default:"Sheet1!A:E"`
	CredentialsJSON string `envconfig:"BUILDSETU_SHEETS_CREDENTIALS_JSON"`
}

type AutomationConfig struct {
	ScriptURL string        `envconfig:"BUILDSETU_AUTOMATION_SCRIPT_URL"`
	Timeout   time.Duration `envconfig:"BUILDSETU_AUTOMATION_TIMEOUT" default:"15s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
