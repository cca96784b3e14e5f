// Package push sends driver app notifications through Firebase Cloud Messaging.
package push

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrNoToken is returned for drivers without a registered device.
var ErrNoToken = errors.New("driver has no push token")

// Message is a driver notification.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

type messagingClient interface {
	Send(ctx context.Context, m *messaging.Message) (string, error)
}

// Sender delivers Message to a device token.
type Sender struct {
	client messagingClient
}

// NewSender initialises the Firebase app. Without a credentials file the
// application default credentials are used.
func NewSender(ctx context.Context, projectID, credentialsFile string) (*Sender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Messaging: %w", err)
	}
	return &Sender{client: client}, nil
}

// Send pushes m with high Android priority.
func (s *Sender) Send(ctx context.Context, token string, m Message) (string, error) {
	if token == "" {
		return "", ErrNoToken
	}
	id, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Data:  m.Data,
		Notification: &messaging.Notification{
			Title: m.Title,
			Body:  m.Body,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	})
	if err != nil {
		if messaging.IsUnregistered(err) {
			return "", fmt.Errorf("push token unregistered: %w", err)
		}
		return "", fmt.Errorf("fcm send: %w", err)
	}
	return id, nil
}
