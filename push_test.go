package chatNotification

import (
	"context"
	"testing"

	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCMMessage(t *testing.T) {
	payload := PushPayload{
		Title: "New message from Alice",
		Body:  "hi",
		Sound: "default",
		Data:  map[string]string{"chatId": "u1_u2", "senderId": "u1"},
	}

	msg := fcmMessage("tok123", payload)

	assert.Equal(t, "tok123", msg.Token)
	require.NotNil(t, msg.Notification)
	assert.Equal(t, "New message from Alice", msg.Notification.Title)
	assert.Equal(t, "hi", msg.Notification.Body)
	assert.Equal(t, "default", msg.Android.Notification.Sound)
	assert.Equal(t, "default", msg.APNS.Payload.Aps.Sound)
	assert.Equal(t, payload.Data, msg.Data)
}

func TestExpoMessage(t *testing.T) {
	token := expo.ExponentPushToken("ExponentPushToken[abc]")
	payload := PushPayload{
		Title: "New message from Alice",
		Body:  "hi",
		Sound: "default",
		Data:  map[string]string{"chatId": "u1_u2", "senderId": "u1"},
	}

	msg := expoMessage(token, payload)

	assert.Equal(t, []expo.ExponentPushToken{token}, msg.To)
	assert.Equal(t, "New message from Alice", msg.Title)
	assert.Equal(t, "hi", msg.Body)
	assert.Equal(t, "default", msg.Sound)
	assert.Equal(t, expo.DefaultPriority, msg.Priority)
	assert.Equal(t, payload.Data, msg.Data)
}

func TestExpoSenderRejectsInvalidToken(t *testing.T) {
	sender := NewExpoSender(expo.NewPushClient(nil))

	err := sender.Send(context.Background(), "not-an-expo-token", PushPayload{Title: "t", Body: "b"})
	require.Error(t, err)
}

func TestSenderTokenSelection(t *testing.T) {
	profile := &UserProfile{FCMToken: "fcm-tok", ExpoToken: "ExponentPushToken[abc]"}

	fcm := &fcmSender{}
	assert.Equal(t, "fcm-tok", fcm.Token(profile))

	expoDriver := NewExpoSender(expo.NewPushClient(nil))
	assert.Equal(t, "ExponentPushToken[abc]", expoDriver.Token(profile))

	assert.Empty(t, fcm.Token(&UserProfile{}))
}
