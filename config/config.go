package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// TenantKeys is the closed set of tenant identifiers known at deploy time.
// Tenant environment variable names are derived from these keys at startup
// only; request input is never used to build a variable name.
var TenantKeys = []string{
	"whgc-seminars",
	"kgri-pic-center",
	"aff-events",
	"pic-courses",
}

// TenantLabels maps tenant keys to display names for the admin login screen.
var TenantLabels = map[string]string{
	"whgc-seminars":   "WHGC Seminars",
	"kgri-pic-center": "KGRI PIC Center",
	"aff-events":      "AFF Events",
	"pic-courses":     "PIC Courses",
}

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Email    EmailConfig
	Calendar CalendarConfig
	Tenants  map[string]TenantEnv
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated (e.g. http://localhost:3000,http://localhost:3001)
}

// RedisConfig holds Redis connection settings. An empty Addr disables Redis
// and the server falls back to in-process lockout tracking.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AdminConfig holds the session signing secret and the global admin password.
// Tenant-scoped passwords live in TenantEnv.
type AdminConfig struct {
	JWTSecret   string
	Password    string
	ExpireHours int
}

// EmailConfig holds the global outbound mail defaults shared by all tenants.
type EmailConfig struct {
	FromAddress  string
	FromName     string
	ContactEmail string
}

// CalendarConfig holds calendar provider settings. Offset and TimeZone must
// describe the same zone; seminar times are entered as wall-clock time in it.
type CalendarConfig struct {
	CalendarID string
	TimeZone   string
	Offset     string
}

// TenantEnv is the raw per-tenant environment bundle. Fields may be empty;
// a tenant without a master spreadsheet id is treated as not configured.
type TenantEnv struct {
	MasterSpreadsheetID string
	DriveFolderID       string
	AdminPassword       string
	MailFromName        string
	MailFromEmail       string
	MailContactEmail    string
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SEC", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SEC", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	jwtExpire, _ := strconv.Atoi(getEnv("ADMIN_JWT_EXPIRE_HOURS", "24"))

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Admin: AdminConfig{
			JWTSecret:   getEnv("ADMIN_JWT_SECRET", ""),
			Password:    getEnv("ADMIN_PASSWORD", ""),
			ExpireHours: jwtExpire,
		},
		Email: EmailConfig{
			FromAddress:  getEnv("MAIL_FROM_EMAIL", "onboarding@resend.dev"),
			FromName:     getEnv("MAIL_FROM_NAME", "Alliance Forum Foundation [no-reply]"),
			ContactEmail: getEnv("MAIL_CONTACT_EMAIL", "info@whgcforum.org"),
		},
		Calendar: CalendarConfig{
			CalendarID: getEnv("GOOGLE_CALENDAR_ID", "primary"),
			TimeZone:   getEnv("CALENDAR_TIMEZONE", "Asia/Tokyo"),
			Offset:     getEnv("CALENDAR_UTC_OFFSET", "+09:00"),
		},
		Tenants: loadTenants(),
	}
	return cfg, nil
}

func loadTenants() map[string]TenantEnv {
	tenants := make(map[string]TenantEnv, len(TenantKeys))
	for _, key := range TenantKeys {
		prefix := "TENANT_" + envName(key) + "_"
		tenants[key] = TenantEnv{
			MasterSpreadsheetID: os.Getenv(prefix + "MASTER_SPREADSHEET_ID"),
			DriveFolderID:       os.Getenv(prefix + "DRIVE_FOLDER_ID"),
			AdminPassword:       os.Getenv(prefix + "ADMIN_PASSWORD"),
			MailFromName:        os.Getenv(prefix + "MAIL_FROM_NAME"),
			MailFromEmail:       os.Getenv(prefix + "MAIL_FROM_EMAIL"),
			MailContactEmail:    os.Getenv(prefix + "MAIL_CONTACT_EMAIL"),
		}
	}
	return tenants
}

// envName converts a tenant key to its environment variable segment
// (e.g. "whgc-seminars" -> "WHGC_SEMINARS").
func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
