package chatNotification

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverFCM  = "fcm"
	DriverExpo = "expo"
)

type Config struct {
	ProjectID       string
	DatabaseURL     string
	CredentialsFile string
	PushDriver      string
}

// LoadConfig reads the bootstrap configuration from the environment,
// honoring a local .env file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	driver := strings.ToLower(getEnvOrDefault("PUSH_DRIVER", DriverFCM))
	switch driver {
	case DriverFCM, DriverExpo:
	default:
		return nil, fmt.Errorf("invalid PUSH_DRIVER value %q", driver)
	}

	return &Config{
		ProjectID:       getEnvOrDefault("FIREBASE_PROJECT_ID", "chat-app-dev"),
		DatabaseURL:     getEnvOrDefault("FIREBASE_DATABASE_URL", "https://chat-app-dev.firebaseio.com"),
		CredentialsFile: strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_FILE")),
		PushDriver:      driver,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
