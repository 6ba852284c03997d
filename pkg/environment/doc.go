// Package environment names the deployment environment the service runs in
// and carries it through request contexts.
//
// Parse accepts the long names and the usual short aliases ("prod",
// "stage", "dev"). Middleware stores the environment in every request
// context and LoggerExtractor adds it to log records.
package environment
