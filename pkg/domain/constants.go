package domain

// DefaultStartNodeID is the canonical entry node, used at boot and on every restart.
const DefaultStartNodeID = "A01"

// Table identifies one of the two externally authored resources.
type Table string

const (
	TableNodes   Table = "NODES"
	TableChoices Table = "CHOICES"
)

// FileName returns the fixed relative path of the table for the given extension.
// An empty extension defaults to ".json".
func (t Table) FileName(ext string) string {
	if ext == "" {
		ext = ".json"
	}
	return string(t) + ext
}

// Tables lists the resources required before indexing can proceed.
func Tables() []Table {
	return []Table{TableNodes, TableChoices}
}
