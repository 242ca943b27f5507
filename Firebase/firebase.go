package Firebase

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Init sets up the Firebase app and hands back the auth and Firestore
// clients. Missing or broken cloud credentials return nil clients instead
// of an error: the server keeps running on the local database alone.
func Init(ctx context.Context, projectID, credsFile string) (*auth.Client, *firestore.Client) {
	if projectID == "" && credsFile == "" {
		log.Println("No Firebase project configured, running on local database only")
		return nil, nil
	}

	var opts []option.ClientOption
	if credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		log.Printf("Error initializing Firebase app: %v", err)
		return nil, nil
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Printf("Error getting Auth client: %v", err)
		authClient = nil
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Printf("Error getting Firestore client: %v", err)
		fsClient = nil
	}

	log.Println("Firebase initialized successfully")
	return authClient, fsClient
}
