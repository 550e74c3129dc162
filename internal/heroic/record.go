package heroic

// Record is one game entry as a Heroic manifest declares it.
type Record struct {
	// AppName is the store's opaque identifier, not a human-readable title.
	AppName    string
	Title      string
	Platform   string
	InstallDir string
}

// TitleIndex maps app names to display titles. Later duplicates win.
//
// The scanner always looks titles up through an index instead of reading
// Record.Title directly: GOG installs carry no titles and are indexed from
// the separate library manifest.
type TitleIndex map[string]string

// IndexRecords builds a TitleIndex from records that carry their own titles.
func IndexRecords(records []Record) TitleIndex {
	index := make(TitleIndex, len(records))
	for _, record := range records {
		index[record.AppName] = record.Title
	}
	return index
}

// Lookup returns the display title for appName.
func (idx TitleIndex) Lookup(appName string) (string, bool) {
	title, ok := idx[appName]
	return title, ok
}
