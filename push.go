package chatNotification

import (
	"context"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
)

// Sender delivers one push payload to one device token. Token reports the
// delivery token this channel understands for a profile, empty when the
// user never registered one.
type Sender interface {
	Token(profile *UserProfile) string
	Send(ctx context.Context, token string, payload PushPayload) error
}

type fcmSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, app *firebase.App) (Sender, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Token(profile *UserProfile) string {
	return profile.FCMToken
}

func (s *fcmSender) Send(ctx context.Context, token string, payload PushPayload) error {
	_, err := s.client.Send(ctx, fcmMessage(token, payload))
	return err
}

func fcmMessage(token string, payload PushPayload) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Sound: payload.Sound},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: payload.Sound},
			},
		},
		Data: payload.Data,
	}
}

type expoSender struct {
	client *expo.PushClient
}

func NewExpoSender(client *expo.PushClient) Sender {
	return &expoSender{client: client}
}

func (s *expoSender) Token(profile *UserProfile) string {
	return profile.ExpoToken
}

func (s *expoSender) Send(ctx context.Context, token string, payload PushPayload) error {
	expoToken, err := expo.NewExponentPushToken(token)
	if err != nil {
		return err
	}

	response, err := s.client.Publish(expoMessage(expoToken, payload))
	if err != nil {
		return err
	}

	return response.ValidateResponse()
}

func expoMessage(token expo.ExponentPushToken, payload PushPayload) *expo.PushMessage {
	return &expo.PushMessage{
		To:       []expo.ExponentPushToken{token},
		Title:    payload.Title,
		Body:     payload.Body,
		Sound:    payload.Sound,
		Priority: expo.DefaultPriority,
		Data:     payload.Data,
	}
}
