package dispatch

import (
	"context"
	"fmt"

	"nearbite/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// fcmDispatcher implements DeliveryDispatcher for the push channel using
// Firebase Cloud Messaging. SendRequest.To carries the device token.
type fcmDispatcher struct {
	client *messaging.Client
}

// NewFCMDispatcher creates a new FCM dispatcher instance
func NewFCMDispatcher(ctx context.Context, credentialsPath string) (service.DeliveryDispatcher, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmDispatcher{
		client: client,
	}, nil
}

// Dispatch sends a push notification to the visitor's device token
func (d *fcmDispatcher) Dispatch(ctx context.Context, req *service.SendRequest) (*service.SendResult, error) {
	message := &messaging.Message{
		Token: req.To,
		Notification: &messaging.Notification{
			Title: req.Subject,
			Body:  req.Body,
		},
		Data: map[string]string{
			"location_id": req.LocationID.String(),
		},
	}

	messageID, err := d.client.Send(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send notification: %w", err)
	}

	return &service.SendResult{ProviderMessageID: messageID}, nil
}
