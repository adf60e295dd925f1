// Package routing maps request paths to logical pages using path templates.
//
// A template is a sequence of "/"-separated segments. Literal segments must
// match exactly; ":name" segments match any single non-empty segment and
// capture its unescaped value under name. Routes are tried in declaration
// order and the first structural match wins.
package routing

import (
	"fmt"
	"net/url"
	"strings"
)

// Route binds a path template to a logical page.
type Route struct {
	Pattern string `json:"pattern"`
	Page    Page   `json:"page"`
}

// Match is the result of resolving a path against a Table.
type Match struct {
	Route  Route
	Params Params
}

type segment struct {
	value string
	param bool
}

// Table is an ordered, immutable set of routes.
type Table struct {
	routes   []Route
	compiled [][]segment
	byPage   map[Page]int
}

// NewTable validates and compiles the given routes, preserving their order.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes:   make([]Route, 0, len(routes)),
		compiled: make([][]segment, 0, len(routes)),
		byPage:   make(map[Page]int, len(routes)),
	}

	patterns := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		segs, err := compile(r.Pattern)
		if err != nil {
			return nil, err
		}
		if _, ok := patterns[r.Pattern]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePattern, r.Pattern)
		}
		if _, ok := t.byPage[r.Page]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePage, r.Page)
		}

		patterns[r.Pattern] = struct{}{}
		t.byPage[r.Page] = len(t.routes)
		t.routes = append(t.routes, r)
		t.compiled = append(t.compiled, segs)
	}

	return t, nil
}

// Routes returns a copy of the declared routes in order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Has reports whether page is bound to a route.
func (t *Table) Has(page Page) bool {
	_, ok := t.byPage[page]
	return ok
}

// Match resolves path to the first route whose template matches it.
//
// path is in escaped form, as returned by Href or url.URL.EscapedPath, so an
// encoded "/" stays inside its segment. It must begin with a single "/"; one
// trailing "/" is ignored and the empty path is the root. The second result is
// false when no route matches.
func (t *Table) Match(path string) (Match, bool) {
	parts, ok := split(path)
	if !ok {
		return Match{}, false
	}

	for i, segs := range t.compiled {
		params, ok := matchSegments(segs, parts)
		if !ok {
			continue
		}
		return Match{Route: t.routes[i], Params: params}, true
	}

	return Match{}, false
}

// Href builds the path for page by substituting params into its template.
func (t *Table) Href(page Page, params Params) (string, error) {
	i, ok := t.byPage[page]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	segs := t.compiled[i]
	if len(segs) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		if !s.param {
			b.WriteString(s.value)
			continue
		}
		v := params.Get(s.value)
		if v == "" {
			return "", fmt.Errorf("%w: %s requires %s", ErrMissingParam, page, s.value)
		}
		b.WriteString(url.PathEscape(v))
	}

	return b.String(), nil
}

func compile(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}

	parts, ok := split(pattern)
	if !ok {
		return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
	}
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if name == "" {
				return nil, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
			}
			segs = append(segs, segment{value: name, param: true})
			continue
		}
		segs = append(segs, segment{value: p})
	}

	return segs, nil
}

func split(path string) ([]string, bool) {
	if path == "" || path == "/" {
		return nil, true
	}

	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return nil, false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return nil, false
	}
	return strings.Split(rest, "/"), true
}

func matchSegments(segs []segment, parts []string) (Params, bool) {
	if len(segs) != len(parts) {
		return nil, false
	}

	var params Params
	for i, s := range segs {
		part, err := url.PathUnescape(parts[i])
		if err != nil {
			return nil, false
		}
		if !s.param {
			if part != s.value {
				return nil, false
			}
			continue
		}
		if part == "" {
			return nil, false
		}
		if params == nil {
			params = make(Params, len(segs))
		}
		params[s.value] = part
	}

	if params == nil {
		params = Params{}
	}
	return params, true
}
