package chatNotification

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	userCollection         = "users"
	chatCollection         = "chats"
	notificationCollection = "notifications"
)

// ErrNotificationExists reports that the notification record for a message
// was already written by an earlier delivery of the same event.
var ErrNotificationExists = errors.New("notification record already exists")

// Store is the slice of the document database this handler touches. Reads
// return a nil record with a nil error when the document does not exist.
type Store interface {
	Chat(ctx context.Context, chatID string) (*Chat, error)
	UserProfile(ctx context.Context, userID string) (*UserProfile, error)
	CreateNotification(ctx context.Context, recipientID, messageID string, notification Notification) error
}

type firestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) Chat(ctx context.Context, chatID string) (*Chat, error) {
	docSnap, err := s.client.Collection(chatCollection).Doc(chatID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var chat Chat
	if err := docSnap.DataTo(&chat); err != nil {
		return nil, err
	}

	return &chat, nil
}

func (s *firestoreStore) UserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	docSnap, err := s.client.Collection(userCollection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := docSnap.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// CreateNotification keys the record by the triggering message id so a
// redelivered event cannot append a duplicate.
func (s *firestoreStore) CreateNotification(ctx context.Context, recipientID, messageID string, notification Notification) error {
	_, err := s.client.Collection(userCollection).Doc(recipientID).
		Collection(notificationCollection).Doc(messageID).
		Create(ctx, notification)
	if status.Code(err) == codes.AlreadyExists {
		return ErrNotificationExists
	}

	return err
}
