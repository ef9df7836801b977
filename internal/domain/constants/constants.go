// Package constants defines shared provider and environment names.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push emulation publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// PushProviderExpo selects the Expo push gateway.
	PushProviderExpo = "expo"
	// PushProviderFCM selects the Firebase Cloud Messaging gateway.
	PushProviderFCM = "fcm"
)
