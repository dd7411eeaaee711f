// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal delivers jobs to a local worker over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle delivers jobs through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// HeaderCleanupRequest marks a POST as a stale-subscription sweep.
	HeaderCleanupRequest = "X-Cleanup-Request"
)
