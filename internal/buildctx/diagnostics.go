package buildctx

// Kind classifies a recoverable build diagnostic. Fatal conditions are
// ordinary Go errors and never pass through the sink.
type Kind string

const (
	ParseFailure         Kind = "parse_failure"
	UnresolvedDependency Kind = "unresolved_dependency"
	DuplicateDefinition  Kind = "duplicate_definition"
	CircularDependency   Kind = "circular_dependency"
	MissingBootstrap     Kind = "missing_bootstrap"
)

// Diagnostic is one recorded, recoverable build problem.
type Diagnostic struct {
	Kind    Kind
	Message string
}

// Sink accumulates diagnostics for one build pass. It is written by one
// stage at a time and read only after the pipeline finishes, so it needs
// no locking.
type Sink struct {
	entries []Diagnostic
}

// Add appends one diagnostic.
func (s *Sink) Add(kind Kind, msg string) {
	s.entries = append(s.entries, Diagnostic{Kind: kind, Message: msg})
}

// All returns a copy of the recorded diagnostics in insertion order.
func (s *Sink) All() []Diagnostic {
	out := make([]Diagnostic, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count returns the number of diagnostics of the given kind.
func (s *Sink) Count(kind Kind) int {
	n := 0
	for _, d := range s.entries {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
