package coordinator

// EventKind discriminates coordinator events.
type EventKind string

const (
	// EventNavigate is emitted when the user selects a result; Path carries
	// the chosen target.
	EventNavigate EventKind = "navigate"
	// EventAuthRequired is emitted when AI mode is requested without an
	// authenticated session.
	EventAuthRequired EventKind = "auth_required"
	// EventSearchFailed is emitted when an AI request fails; the dialog
	// falls back to the local fuzzy results.
	EventSearchFailed EventKind = "search_failed"
)

// Event is a notification from the coordinator to its host UI.
type Event struct {
	Kind EventKind
	Path string
	Err  error
}
