package chatNotification

import (
	"strings"
	"time"
)

type UpdateMask struct {
	FieldPaths []string `json:"fieldPaths"`
}

type FirestoreEvent struct {
	OldValue   FirestoreValue `json:"oldValue"`
	Value      FirestoreValue `json:"value"`
	UpdateMask UpdateMask     `json:"updateMask"`
}

type FirestoreValue struct {
	CreateTime time.Time   `json:"createTime"`
	Fields     ChatMessage `json:"fields"`
	Name       string      `json:"name"`
	UpdateTime time.Time   `json:"updateTime"`
}

type StringValue struct {
	Value string `json:"stringValue"`
}

type ChatMessage struct {
	SenderID StringValue `json:"senderId"`
	Message  StringValue `json:"message"`
}

// Chat is the two-party chat document. Participants must hold exactly two
// distinct user ids.
type Chat struct {
	Participants []string `firestore:"participants"`
}

type UserProfile struct {
	Name      string `firestore:"name"`
	FCMToken  string `firestore:"fcmToken"`
	ExpoToken string `firestore:"expoToken"`
}

type NotificationData struct {
	ChatID    string `firestore:"chatId"`
	SenderID  string `firestore:"senderId"`
	MessageID string `firestore:"messageId"`
}

// Notification is the in-app record appended to the recipient's log.
// Timestamp is assigned by the server on write.
type Notification struct {
	Title     string           `firestore:"title"`
	Body      string           `firestore:"body"`
	Timestamp time.Time        `firestore:"timestamp,serverTimestamp"`
	Type      string           `firestore:"type"`
	Data      NotificationData `firestore:"data"`
}

type PushPayload struct {
	Title string
	Body  string
	Sound string
	Data  map[string]string
}

// chatPath extracts the chatId and messageId path parameters from the fully
// qualified document name of a "chats/{chatId}/messages/{messageId}" event.
func chatPath(name string) (chatID, messageID string, ok bool) {
	const marker = "/documents/"

	i := strings.Index(name, marker)
	if i < 0 {
		return "", "", false
	}

	parts := strings.Split(name[i+len(marker):], "/")
	if len(parts) != 4 || parts[0] != "chats" || parts[2] != "messages" {
		return "", "", false
	}
	if parts[1] == "" || parts[3] == "" {
		return "", "", false
	}

	return parts[1], parts[3], true
}
