package routing

import "fmt"

const (
	// VariantFull declares all five pages. It is the canonical table.
	VariantFull = "full"

	// VariantMinimal omits the settlement and instructions pages.
	VariantMinimal = "minimal"
)

var fullRoutes = []Route{
	{Pattern: "/", Page: Home},
	{Pattern: "/group/:groupId", Page: Order},
	{Pattern: "/group/:groupId/stats", Page: Stats},
	{Pattern: "/group/:groupId/settlement", Page: Settlement},
	{Pattern: "/instructions", Page: Instructions},
}

// Full returns the canonical five-route table.
func Full() *Table {
	return mustTable(fullRoutes...)
}

// Minimal returns the reduced table with home, order, and stats only.
func Minimal() *Table {
	return mustTable(fullRoutes[:3]...)
}

// Variant returns the table registered under name. An empty name selects Full.
func Variant(name string) (*Table, error) {
	switch name {
	case "", VariantFull:
		return Full(), nil
	case VariantMinimal:
		return Minimal(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
}

func mustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}
