// Package constants holds shared configuration constants.
package constants

const (
	// PubSubProviderLocal selects the HTTP loopback publisher used in development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
	// PubSubProviderNoop selects the discard publisher used in tests.
	PubSubProviderNoop = "noop"

	// IngestModeInline evaluates position updates in the request path.
	IngestModeInline = "inline"
	// IngestModeQueue publishes position updates to Pub/Sub for async evaluation.
	IngestModeQueue = "queue"

	// DispatchProviderHTTP selects the generic HTTP delivery gateway.
	DispatchProviderHTTP = "http"
	// DispatchProviderFCM selects Firebase Cloud Messaging.
	DispatchProviderFCM = "fcm"
	// DispatchProviderNoop selects the discard dispatcher used in tests.
	DispatchProviderNoop = "noop"

	// EnvDevelop is the environment name for local development.
	EnvDevelop = "develop"
)
