package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"storefront/internal/jobs"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	SMTPHost               string
	SMTPPort               int
	SMTPUsername           string
	SMTPPassword           string
	SMTPFrom               string
	JWTSecret              string
	JWTTTL                 time.Duration
	RegistrationCodeTTL    time.Duration
	OverdueSchedule        string
}

// ConfigFromEnv reads the configuration through getenv, falling back to
// defaults for everything but the database credentials and JWT secret.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	smtpPort, portErr := strconv.Atoi(get("SMTP_PORT", "587"))
	if portErr != nil {
		portErr = fmt.Errorf("SMTP_PORT: %w", portErr)
	}
	jwtTTL, jwtErr := time.ParseDuration(get("JWT_TTL", "24h"))
	if jwtErr != nil {
		jwtErr = fmt.Errorf("JWT_TTL: %w", jwtErr)
	}
	codeTTL, codeErr := time.ParseDuration(get("REGISTRATION_CODE_TTL", "10m"))
	if codeErr != nil {
		codeErr = fmt.Errorf("REGISTRATION_CODE_TTL: %w", codeErr)
	}

	config := Config{
		HTTPPort:               get("HTTP_PORT", "8080"),
		DBHost:                 get("DB_HOST", "localhost"),
		DBPort:                 get("DB_PORT", "5432"),
		DBUser:                 get("DB_USER", ""),
		DBPassword:             get("DB_PASSWORD", ""),
		DBName:                 get("DB_NAME", ""),
		DBSslMode:              get("DB_SSLMODE", "disable"),
		KafkaHost:              get("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		SMTPHost:               get("SMTP_HOST", ""),
		SMTPPort:               smtpPort,
		SMTPUsername:           get("SMTP_USERNAME", ""),
		SMTPPassword:           get("SMTP_PASSWORD", ""),
		SMTPFrom:               get("SMTP_FROM", "TrendWear <no-reply@trendwear.local>"),
		JWTSecret:              get("JWT_SECRET", ""),
		JWTTTL:                 jwtTTL,
		RegistrationCodeTTL:    codeTTL,
		OverdueSchedule:        get("OVERDUE_SCHEDULE", jobs.DefaultOverdueSchedule),
	}

	var missing []string
	for key, value := range map[string]string{
		"DB_USER":    config.DBUser,
		"DB_NAME":    config.DBName,
		"JWT_SECRET": config.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	var missingErr error
	if len(missing) > 0 {
		slices.Sort(missing)
		missingErr = fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	if err := errors.Join(missingErr, portErr, jwtErr, codeErr); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN is the PostgreSQL connection URL for both gorm and migrations.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// KafkaBrokers splits the comma separated KAFKA_HOST list.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
