package config

import (
	"fmt"
	"os"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, etc.)
// -----------------------------------------------------------------------------

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Session  SessionConfig
	Admin    AdminConfig
	Kafka    KafkaConfig
	Calendar CalendarConfig
	Support  SupportConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER"`
	Password   string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone   string `envconfig:"DB_TIMEZONE" default:"Europe/Moscow"`
	MaxConns   int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"data/bookings.db"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type SessionConfig struct {
	Secret     string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"72h"`
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"booking_session"`
	Domain     string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite   string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

// Admin endpoints are disabled while PasswordHash is empty.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:""`
}

// Events go to the log when Brokers is empty.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:""`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"bookings"`
	BatchTimeout time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"50ms"`
	MaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"3"`
	// Upper bound for handing one event to the writer.
	PublishTimeout time.Duration `envconfig:"KAFKA_PUBLISH_TIMEOUT" default:"2s"`
}

type CalendarConfig struct {
	File   string   `envconfig:"CALENDAR_FILE" default:""`
	Months []string `ignored:"true"`
}

type SupportConfig struct {
	Contact string `envconfig:"SUPPORT_CONTACT" default:"Ask the front desk"`
	Hours   string `envconfig:"SUPPORT_HOURS" default:"07:00-23:00"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.User == "" || c.Password == "" || c.DBName == "" {
			return fmt.Errorf("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// A missing .env is fine; the process environment wins over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}

	months, err := LoadCalendarMonths(cfg.Calendar.File)
	if err != nil {
		return Config{}, err
	}
	cfg.Calendar.Months = months

	return cfg, nil
}

type calendarFile struct {
	Months []string `toml:"months"`
}

// LoadCalendarMonths reads month labels from a TOML file such as
//
//	months = ["Сентябрь 2026", "Октябрь 2026"]
//
// and falls back to the built-in list when path is empty.
func LoadCalendarMonths(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), booking.DefaultMonths...), nil
	}

	var f calendarFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to read calendar file %s: %w", path, err)
	}
	if len(f.Months) == 0 {
		return nil, fmt.Errorf("calendar file %s lists no months", path)
	}
	return f.Months, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   time.Second,
		},
		DB: DBConfig{
			Driver:     DriverSQLite,
			Host:       "localhost",
			Port:       "15433",
			User:       "test",
			Password:   "test",
			DBName:     "test_db",
			SSLMode:    "disable",
			TimeZone:   "Europe/Moscow",
			MaxConns:   5,
			SQLitePath: ":memory:",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		Session: SessionConfig{
			Secret:     "test-secret",
			TTL:        time.Hour,
			CookieName: "booking_session",
			SameSite:   "Lax",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Kafka: KafkaConfig{
			Topic:          "bookings",
			PublishTimeout: time.Second,
		},
		Calendar: CalendarConfig{
			Months: append([]string(nil), booking.DefaultMonths...),
		},
		Support: SupportConfig{
			Contact: "Ask the front desk",
			Hours:   "07:00-23:00",
		},
	}
}
