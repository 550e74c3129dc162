package titles

// Query asks a Finder for one canonical title.
type Query struct {
	// Names are candidate display names, tried in order.
	Names []string
	// Normalized allows matching through Normalize when no exact match exists.
	Normalized bool
}

// Finder resolves candidate names to a single canonical title. It reports
// false when there is no confident match, including when a normalized name
// is shared by more than one canonical title.
type Finder interface {
	FindOne(query Query) (string, bool)
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(Query) (string, bool)

// FindOne calls f.
func (f FinderFunc) FindOne(query Query) (string, bool) { return f(query) }
