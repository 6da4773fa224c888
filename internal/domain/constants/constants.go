// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	// PubSubProviderLocal publishes events over HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Environment names used in configuration.
const (
	// EnvDevelop is the local development environment.
	EnvDevelop = "develop"
	// EnvProduction is the production environment.
	EnvProduction = "production"
)
