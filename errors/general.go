package errors

const (
	UnknownErrorCode         = 100_001
	InvalidSettingsErrorCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// InvalidSettingsError indicates the catalog was configured with unusable values
var InvalidSettingsError = new(InvalidSettingsErrorCode, "InvalidSettings", "invalid settings: %s")
