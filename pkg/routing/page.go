package routing

// Page identifies a logical view selected by the router.
type Page string

const (
	Home         Page = "Home"
	Order        Page = "Order"
	Stats        Page = "Stats"
	Settlement   Page = "Settlement"
	Instructions Page = "Instructions"
)

func (p Page) String() string {
	return string(p)
}

// Params holds named segments captured from a request path.
// Values are passed through as-is; the router never validates them.
type Params map[string]string

// Get returns the captured value for name, or "" when absent.
func (p Params) Get(name string) string {
	if p == nil {
		return ""
	}
	return p[name]
}
