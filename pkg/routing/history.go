package routing

import "fmt"

// History selects how client-side navigation encodes the route in the URL.
type History string

const (
	// HistoryHash keeps the route in the URL fragment ("/#/group/42").
	HistoryHash History = "hash"

	// HistoryWeb uses the path directly ("/group/42").
	HistoryWeb History = "web"
)

// Validate reports whether h is a known history mode.
func (h History) Validate() error {
	switch h {
	case HistoryHash, HistoryWeb:
		return nil
	default:
		return fmt.Errorf("%w: %s (must be hash or web)", ErrInvalidHistory, h)
	}
}

// Link returns the browser-facing URL for an application path.
func (h History) Link(path string) string {
	if h == HistoryHash {
		return "/#" + path
	}
	return path
}
