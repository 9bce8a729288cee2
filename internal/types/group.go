package types

type GroupFile struct {
	Path    string
	Content string
	Exists  bool
}

// Entry is a named package assignment located inside a group file. Start and
// End are byte offsets into the scanned content, End exclusive.
type Entry struct {
	Name         string
	Start        int
	End          int
	Dependencies string
	Repo         string
	Version      string
}
