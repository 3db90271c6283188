package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// InitFirebase initializes the Firebase Admin SDK
func InitFirebase(credPath string) (*firebase.App, error) {
	opt := option.WithCredentialsFile(credPath)
	return firebase.NewApp(context.Background(), nil, opt)
}

// AuthClient returns the Firebase auth client used for ID token verification
func AuthClient(app *firebase.App) (*auth.Client, error) {
	return app.Auth(context.Background())
}

// MessagingClient returns the FCM client used for push delivery
func MessagingClient(app *firebase.App) (*messaging.Client, error) {
	return app.Messaging(context.Background())
}
