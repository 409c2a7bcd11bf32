// Package borrow implements the ownership and borrow analysis of the home
// compiler: a per-binding state machine (Tracker) driven by a recursive
// walk over the AST (Checker). The pass proves that every value has one
// owner at each program point, that shared and mutable borrows never alias
// unsafely, and that moved-from bindings are never read again.
//
// All mutable state lives in one Checker value; independent programs can be
// checked concurrently by giving each its own Checker.
package borrow

import (
	"home/internal/source"
)

// TypeTag is the coarse type of a binding. The real type checker is a
// separate, unbuilt pass; every binding is tagged TagInt for now and no
// rule consults the tag yet.
type TypeTag uint8

const (
	TagInt TypeTag = iota
)

// BindingState is the exclusive ownership state of one binding.
type BindingState uint8

const (
	// StateUnassigned: declared without an initializer, no value yet.
	StateUnassigned BindingState = iota
	// StateOwned: holds a value, no live borrows.
	StateOwned
	// StateMoved: the value was transferred; further reads are errors.
	StateMoved
	// StateShared: one or more live read-only borrows (Binding.SharedCount).
	StateShared
	// StateMutBorrowed: exactly one live writable borrow.
	StateMutBorrowed
)

func (s BindingState) String() string {
	switch s {
	case StateUnassigned:
		return "unassigned"
	case StateOwned:
		return "owned"
	case StateMoved:
		return "moved"
	case StateShared:
		return "shared-borrowed"
	case StateMutBorrowed:
		return "mutably-borrowed"
	}
	return "invalid"
}

// Binding is one tracked declaration. SharedCount is meaningful only in
// StateShared; MovedAt only in StateMoved; BorrowedAt holds the most
// recent borrow site while any borrow is live.
type Binding struct {
	Name        string
	Type        TypeTag
	State       BindingState
	SharedCount uint32
	DeclaredAt  source.Span
	MovedAt     source.Span
	BorrowedAt  source.Span
}

// BorrowKind differentiates shared vs mutable borrows.
type BorrowKind uint8

const (
	BorrowShared BorrowKind = iota
	BorrowMut
)

// IssueKind enumerates why a tracker operation was rejected.
type IssueKind uint8

const (
	IssueNone IssueKind = iota
	IssueUseAfterMove
	IssueReadWhileMutBorrowed
	IssueMultipleMutBorrows
	IssueBorrowWhileMutBorrowed
	IssueMutBorrowWhileShared
	IssueCannotMoveBorrowed
	IssueRedeclaration
)

// Issue describes a rejected operation. Prior points at the conflicting
// earlier operation (move site, live borrow, or previous declaration) so
// diagnostics can show both ends of the conflict.
type Issue struct {
	Kind  IssueKind
	Prior source.Span
}

func (i Issue) Some() bool { return i.Kind != IssueNone }

func ok() Issue { return Issue{} }

type borrowRecord struct {
	binding *Binding
	kind    BorrowKind
}

// Scope is one lexical block: the bindings declared directly inside it and
// the borrows opened while it was the innermost scope.
type Scope struct {
	bindings map[string]*Binding
	borrows  []borrowRecord
}

// Tracker enforces the binding state machine. It knows nothing about AST
// shapes; the Checker translates syntax into these primitives.
type Tracker struct {
	scopes []*Scope
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// PushScope enters a new innermost lexical scope.
func (t *Tracker) PushScope() {
	t.scopes = append(t.scopes, &Scope{bindings: make(map[string]*Binding)})
}

// PopScope releases every borrow opened in the innermost scope and drops
// its bindings. Borrow release is lexical: this is the single point where
// SharedCount decrements and mutable borrows expire.
func (t *Tracker) PopScope() {
	if len(t.scopes) == 0 {
		return
	}
	top := t.scopes[len(t.scopes)-1]
	t.scopes = t.scopes[:len(t.scopes)-1]
	t.releaseBorrows(top)
}

// Depth returns the number of live scopes.
func (t *Tracker) Depth() int {
	return len(t.scopes)
}

func (t *Tracker) releaseBorrows(s *Scope) {
	for i := len(s.borrows) - 1; i >= 0; i-- {
		rec := s.borrows[i]
		b := rec.binding
		switch rec.kind {
		case BorrowShared:
			// The guard keeps a stale record (owner reassigned meanwhile)
			// from corrupting a fresh state.
			if b.State == StateShared {
				b.SharedCount--
				if b.SharedCount == 0 {
					b.State = StateOwned
				}
			}
		case BorrowMut:
			if b.State == StateMutBorrowed {
				b.State = StateOwned
			}
		}
	}
	s.borrows = nil
}

func (t *Tracker) current() *Scope {
	if len(t.scopes) == 0 {
		return nil
	}
	return t.scopes[len(t.scopes)-1]
}

// Lookup resolves name through the scope chain, innermost first.
func (t *Tracker) Lookup(name string) *Binding {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if b, found := t.scopes[i].bindings[name]; found {
			return b
		}
	}
	return nil
}

// Define creates a binding in the current scope. Shadowing an outer scope's
// binding is fine; redefining within the same scope is rejected.
func (t *Tracker) Define(name string, typ TypeTag, initialized bool, declSpan source.Span) Issue {
	scope := t.current()
	if scope == nil {
		return ok()
	}
	if prev, exists := scope.bindings[name]; exists {
		return Issue{Kind: IssueRedeclaration, Prior: prev.DeclaredAt}
	}
	state := StateUnassigned
	if initialized {
		state = StateOwned
	}
	scope.bindings[name] = &Binding{
		Name:       name,
		Type:       typ,
		State:      state,
		DeclaredAt: declSpan,
	}
	return ok()
}

// CheckUse validates a read of name. Reads are fine for owned and
// shared-borrowed bindings, rejected for moved and mutably borrowed ones.
// Unknown names are ignored: resolution errors belong to a different pass,
// and this one under-reports rather than guesses.
func (t *Tracker) CheckUse(name string) Issue {
	b := t.Lookup(name)
	if b == nil {
		return ok()
	}
	switch b.State {
	case StateMoved:
		return Issue{Kind: IssueUseAfterMove, Prior: b.MovedAt}
	case StateMutBorrowed:
		return Issue{Kind: IssueReadWhileMutBorrowed, Prior: b.BorrowedAt}
	default:
		return ok()
	}
}

// MarkMoved transitions Owned -> Moved. Moving a borrowed binding is
// rejected; moving an already-moved binding is a no-op (the read that
// produced the value was already flagged by CheckUse).
func (t *Tracker) MarkMoved(name string, moveSpan source.Span) Issue {
	b := t.Lookup(name)
	if b == nil {
		return ok()
	}
	switch b.State {
	case StateShared, StateMutBorrowed:
		return Issue{Kind: IssueCannotMoveBorrowed, Prior: b.BorrowedAt}
	case StateMoved:
		return ok()
	default:
		b.State = StateMoved
		b.MovedAt = moveSpan
		return ok()
	}
}

// Borrow opens a shared borrow of name in the current scope.
func (t *Tracker) Borrow(name string, loc source.Span) Issue {
	b := t.Lookup(name)
	if b == nil {
		return ok()
	}
	switch b.State {
	case StateMoved:
		return Issue{Kind: IssueUseAfterMove, Prior: b.MovedAt}
	case StateMutBorrowed:
		return Issue{Kind: IssueBorrowWhileMutBorrowed, Prior: b.BorrowedAt}
	}
	b.State = StateShared
	b.SharedCount++
	b.BorrowedAt = loc
	t.recordBorrow(b, BorrowShared)
	return ok()
}

// BorrowMut opens the exclusive borrow of name in the current scope.
func (t *Tracker) BorrowMut(name string, loc source.Span) Issue {
	b := t.Lookup(name)
	if b == nil {
		return ok()
	}
	switch b.State {
	case StateMoved:
		return Issue{Kind: IssueUseAfterMove, Prior: b.MovedAt}
	case StateMutBorrowed:
		return Issue{Kind: IssueMultipleMutBorrows, Prior: b.BorrowedAt}
	case StateShared:
		return Issue{Kind: IssueMutBorrowWhileShared, Prior: b.BorrowedAt}
	}
	b.State = StateMutBorrowed
	b.BorrowedAt = loc
	t.recordBorrow(b, BorrowMut)
	return ok()
}

// Reassign gives name a fresh value after a successful assignment: a moved
// or unassigned slot becomes owned again, and live shared borrows of the
// old value end here (the owner was reassigned). Callers must CheckUse
// first; a mutably borrowed slot never reaches this point.
func (t *Tracker) Reassign(name string) {
	b := t.Lookup(name)
	if b == nil {
		return
	}
	switch b.State {
	case StateMoved, StateUnassigned:
		b.State = StateOwned
		b.MovedAt = source.Span{}
	case StateShared:
		b.State = StateOwned
		b.SharedCount = 0
	}
}

func (t *Tracker) recordBorrow(b *Binding, kind BorrowKind) {
	if scope := t.current(); scope != nil {
		scope.borrows = append(scope.borrows, borrowRecord{binding: b, kind: kind})
	}
}
