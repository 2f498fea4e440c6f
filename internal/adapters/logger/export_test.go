package logger

// Exported for tests.
var (
	CollectErrorMessages = collectErrorMessages
	FormatErrorChain     = formatErrorChain
)
