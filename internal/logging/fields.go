package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering (e.g. manifest_missing).
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to do about a warning or error.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldRunID identifies a single CLI invocation.
	FieldRunID = "run_id"
	// FieldRoot is the configured root a log line refers to.
	FieldRoot = "root"
	// FieldPath is a file path a log line refers to.
	FieldPath = "path"
	// FieldAppName is a launcher-assigned game identifier.
	FieldAppName = "app_name"
	// FieldTitle is a display or canonical game title.
	FieldTitle = "title"
	// FieldRunner is the Heroic runner a game is launched through.
	FieldRunner = "runner"
)
