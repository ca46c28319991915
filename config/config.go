package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	MAIN_ROUTES   string
	APP_PORT      string
	JWTSecret     string
	JWTExpiration int

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite string

	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPPassword string

	allowedOrigins map[string]bool
)

// LoadConfig membaca file .env dan menginisialisasi variabel konfigurasi
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Server Configuration
	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/api")
	APP_PORT = getEnv("APP_PORT", "9000")

	// Session Configuration
	JWTSecret = getEnv("SESSION_SECRET", "inventory-management-secret-key")
	JWTExpiration = getEnvAsInt("SESSION_EXPIRATION", 86400)

	// Database Configuration
	DBDriver = getEnv("DB_DRIVER", "mysql")
	DBHost = getEnv("DB_HOST", "localhost")
	DBPort = getEnv("DB_PORT", "3306")
	DBUser = getEnv("DB_USER", "root")
	DBPassword = getEnv("DB_PASSWORD", "")
	DBName = getEnv("DB_NAME", "inventory_system")

	// Cookie Configuration
	CookieSecure = getEnvAsBool("COOKIE_SECURE", false)
	CookieHTTPOnly = getEnvAsBool("COOKIE_HTTPONLY", true)
	CookieSameSite = getEnv("COOKIE_SAMESITE", "Lax")

	// SMTP Configuration (optional, request notification mails)
	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 587)
	SMTPSender = getEnv("SMTP_SENDER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")

	loadAllowedOrigins()
}

// getEnv membaca environment variable dengan nilai default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt membaca environment variable sebagai integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool membaca environment variable sebagai boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// loadAllowedOrigins memuat daftar origin yang diizinkan dari environment variable
func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		allowedOrigins = map[string]bool{
			"http://127.0.0.1:3000": true,
			"http://localhost:3000": true,
		}
		return
	}

	origins := strings.Split(originsStr, ",")
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight request
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}

func GetSessionCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     "session_token",
		Value:    token,
		Expires:  time.Now().Add(time.Duration(JWTExpiration) * time.Second),
		HTTPOnly: CookieHTTPOnly,
		SameSite: CookieSameSite,
		Path:     "/",
		Secure:   CookieSecure,
	}
}
