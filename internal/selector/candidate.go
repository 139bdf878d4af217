package selector

// Candidate is one selectable entry: a display label and the
// underlying value the caller acts on. Secondary optionally carries
// extra context shown next to the label (e.g. a cluster's location).
// The selector itself attaches no meaning to any of the fields.
type Candidate struct {
	Label     string
	Value     string
	Secondary string
}

// SelectionKind tags the outcome of one selector invocation.
type SelectionKind int

const (
	// SelectionChosen means the user confirmed a candidate.
	SelectionChosen SelectionKind = iota
	// SelectionCancelled means the user backed out of the prompt.
	SelectionCancelled
	// SelectionEmpty means there was nothing to choose from; no
	// interactive prompt was shown.
	SelectionEmpty
)

// SelectionResult is produced exactly once per selector invocation.
// Candidate is only meaningful when Kind is SelectionChosen.
type SelectionResult struct {
	Kind      SelectionKind
	Candidate Candidate
}
