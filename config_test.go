package chatNotification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("FIREBASE_DATABASE_URL", "")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
	t.Setenv("PUSH_DRIVER", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "chat-app-dev", config.ProjectID)
	assert.Equal(t, "https://chat-app-dev.firebaseio.com", config.DatabaseURL)
	assert.Empty(t, config.CredentialsFile)
	assert.Equal(t, DriverFCM, config.PushDriver)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "chat-app-prod")
	t.Setenv("FIREBASE_DATABASE_URL", "https://chat-app-prod.firebaseio.com")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/secrets/sa.json")
	t.Setenv("PUSH_DRIVER", "Expo")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "chat-app-prod", config.ProjectID)
	assert.Equal(t, "https://chat-app-prod.firebaseio.com", config.DatabaseURL)
	assert.Equal(t, "/secrets/sa.json", config.CredentialsFile)
	assert.Equal(t, DriverExpo, config.PushDriver)
}

func TestLoadConfigInvalidDriver(t *testing.T) {
	t.Setenv("PUSH_DRIVER", "smoke-signals")

	_, err := LoadConfig()
	require.Error(t, err)
}
