package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	Dispatch     DispatchConfig
	Seed         SeedConfig
	Tracking     TrackingConfig
	Reports      ReportsConfig
	RabbitMQ     RabbitMQConfig
	Notification NotificationConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	// InternalAPIKey guards scheduler-only endpoints
	InternalAPIKey string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
	BcryptCost int
}

// DispatchConfig holds the ride lifecycle policy knobs.
type DispatchConfig struct {
	PMApprovalThresholdKm float64
	MaxLiveRidesPerUser   int
	BookingWindowDays     int
	TimeZone              string
	RideCodeLength        int
	RideCodeMaxAttempts   int
}

// Location returns the dispatch time zone, falling back to UTC when the
// configured name cannot be loaded.
func (d DispatchConfig) Location() *time.Location {
	if d.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(d.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SeedConfig points at the bootstrap seed file
type SeedConfig struct {
	Enabled bool
	File    string
}

// TrackingConfig configures the upstream GPS monitor
type TrackingConfig struct {
	URL          string
	APIKey       string
	Timeout      time.Duration
	CacheTTL     time.Duration
	DefaultSpeed float64 // km/h, used when the vehicle reports no speed
}

// ReportsConfig configures the reporting endpoints
type ReportsConfig struct {
	// DashboardTTL caches dashboard stats in redis; zero disables the cache
	DashboardTTL time.Duration
}

// RabbitMQConfig configures the delivery job broker
type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string
}

// NotificationConfig configures the ride event worker
type NotificationConfig struct {
	ConsumerName string
	MaxDeliver   int
	AckWait      time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
