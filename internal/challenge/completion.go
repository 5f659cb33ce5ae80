package challenge

// CompletionSet tracks which challenges the user has finished this session.
// It is append-only and lives only as long as the process: progress is a UI
// concern, so the caller owns it, not the evaluator.
type CompletionSet struct {
	done map[string]struct{}
}

// NewCompletionSet returns an empty set.
func NewCompletionSet() *CompletionSet {
	return &CompletionSet{done: make(map[string]struct{})}
}

// Add marks a challenge as completed.
func (cs *CompletionSet) Add(id string) {
	cs.done[id] = struct{}{}
}

// Contains reports whether the challenge has been completed.
func (cs *CompletionSet) Contains(id string) bool {
	_, ok := cs.done[id]
	return ok
}

// Len returns how many challenges have been completed.
func (cs *CompletionSet) Len() int {
	return len(cs.done)
}
