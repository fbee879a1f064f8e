// Package constants defines shared configuration constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

const (
	// PushProviderWebPush selects the Web Push (VAPID) sender.
	PushProviderWebPush = "webpush"
	// PushProviderFirebase selects the Firebase Cloud Messaging sender.
	PushProviderFirebase = "firebase"
)
