package chatNotification

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const (
	notificationType   = "chat"
	titlePrefix        = "New message from "
	fallbackSenderName = "Someone"
	defaultSound       = "default"
)

var dispatcher *Dispatcher

func init() {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{log.FieldKeyMsg: "message"},
	})
	log.SetLevel(log.InfoLevel)

	config, err := LoadConfig()
	if err != nil {
		log.Errorf("loading config: %s", err)
		return
	}

	ctx := context.Background()

	firebaseConfig := &firebase.Config{
		ProjectID:   config.ProjectID,
		DatabaseURL: config.DatabaseURL,
	}

	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	firebaseApp, err := firebase.NewApp(ctx, firebaseConfig, opts...)
	if err != nil {
		log.Errorf("initializing firebase app: %s", err)
		return
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Errorf("initializing firestore client: %s", err)
		return
	}

	var sender Sender
	switch config.PushDriver {
	case DriverExpo:
		sender = NewExpoSender(expo.NewPushClient(nil))
	default:
		sender, err = NewFCMSender(ctx, firebaseApp)
		if err != nil {
			log.Errorf("initializing messaging client: %s", err)
			return
		}
	}

	dispatcher = NewDispatcher(NewFirestoreStore(firestoreClient), sender)
}

// Dispatcher reacts to a chat message creation event: derive the recipient,
// push a notification to their device, and record it in their in-app
// notification log.
type Dispatcher struct {
	store Store
	push  Sender
}

func NewDispatcher(store Store, push Sender) *Dispatcher {
	return &Dispatcher{store: store, push: push}
}

// SendChatNotification is the entrypoint registered on creation of
// "chats/{chatId}/messages/{messageId}" documents.
func SendChatNotification(ctx context.Context, fsEvent FirestoreEvent) error {
	if dispatcher == nil {
		return errors.New("dispatcher is not initialized")
	}

	return dispatcher.Dispatch(ctx, fsEvent)
}

func (d *Dispatcher) Dispatch(ctx context.Context, fsEvent FirestoreEvent) error {
	chatID, messageID, ok := chatPath(fsEvent.Value.Name)
	if !ok {
		log.Infof("event %s is not a chat message document", fsEvent.Value.Name)
		return nil
	}

	chatMessage := fsEvent.Value.Fields
	senderID := chatMessage.SenderID.Value

	// The chat document's participants list is authoritative; chats created
	// before participants were stored fall back to the composite chat id.
	chat, err := d.store.Chat(ctx, chatID)
	if err != nil {
		return fmt.Errorf("fetching chat %s: %w", chatID, err)
	}

	var recipientID string
	if chat != nil {
		recipientID, ok = recipientFromParticipants(chat.Participants, senderID)
	} else {
		recipientID, ok = recipientFromChatID(chatID, senderID)
	}
	if !ok {
		log.Infof("could not determine recipient id for chat %s", chatID)
		return nil
	}

	recipient, err := d.store.UserProfile(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("fetching recipient %s: %w", recipientID, err)
	}
	if recipient == nil {
		log.Infof("recipient document %s does not exist", recipientID)
		return nil
	}

	token := d.push.Token(recipient)
	if token == "" {
		log.Infof("recipient %s does not have a push token", recipientID)
		return nil
	}

	sender, err := d.store.UserProfile(ctx, senderID)
	if err != nil {
		return fmt.Errorf("fetching sender %s: %w", senderID, err)
	}
	if sender == nil {
		log.Infof("sender document %s does not exist", senderID)
		return nil
	}

	senderName := sender.Name
	if senderName == "" {
		senderName = fallbackSenderName
	}

	payload := PushPayload{
		Title: titlePrefix + senderName,
		Body:  chatMessage.Message.Value,
		Sound: defaultSound,
		Data: map[string]string{
			"chatId":   chatID,
			"senderId": senderID,
		},
	}

	// A failed push must never block the in-app record below.
	log.Infof("sending notification to token: %s", token)
	if err := d.push.Send(ctx, token, payload); err != nil {
		log.Errorf("sending notification: %s", err)
	} else {
		log.Info("notification sent successfully")
	}

	notification := Notification{
		Title: payload.Title,
		Body:  payload.Body,
		Type:  notificationType,
		Data: NotificationData{
			ChatID:    chatID,
			SenderID:  senderID,
			MessageID: messageID,
		},
	}

	err = d.store.CreateNotification(ctx, recipientID, messageID, notification)
	if errors.Is(err, ErrNotificationExists) {
		log.Infof("notification record for message %s already exists", messageID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("storing notification for %s: %w", recipientID, err)
	}

	return nil
}
