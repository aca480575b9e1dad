package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Environment variables
	StageEnvVar    = "STAGE"
	PortEnvVar     = "PORT"
	LogLevelEnvVar = "LOG_LEVEL"
)
