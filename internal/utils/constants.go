package utils

const (
	// ConfigFileName is the name of the application configuration file.
	ConfigFileName = "docgen.yml"
	// GlobalConfigDirectoryName is the directory under the user home that holds global configuration.
	GlobalConfigDirectoryName = ".docgen"
	// LogFileName is the name of the application log file.
	LogFileName = "docgen.log"
)

const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "unable to initialize logger: %w"
	// ApplicationExecutionFailedMessage reports a fatal application error.
	ApplicationExecutionFailedMessage = "docgen execution failed"
)

// EmptyString represents a reusable empty string constant.
const EmptyString = ""
