package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // safe to show to the user
	Fields    map[string]string // per-field validation errors (optional)
	Redirect  string            // where the UI should go next (optional)
	Err       error             // internal cause, logged only
}
