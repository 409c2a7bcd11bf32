package borrow

import (
	"testing"

	"home/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func newScopedTracker() *Tracker {
	t := NewTracker()
	t.PushScope()
	return t
}

func TestDefineAndUse(t *testing.T) {
	tr := newScopedTracker()

	if issue := tr.Define("x", TagInt, true, sp(0, 1)); issue.Some() {
		t.Fatalf("Define = %v", issue)
	}
	if issue := tr.CheckUse("x"); issue.Some() {
		t.Fatalf("CheckUse = %v", issue)
	}
	if got := tr.Lookup("x").State; got != StateOwned {
		t.Fatalf("state = %v", got)
	}
}

func TestDefineWithoutInitializerIsUnassigned(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, false, sp(0, 1))

	if got := tr.Lookup("x").State; got != StateUnassigned {
		t.Fatalf("state = %v, want unassigned", got)
	}
	tr.Reassign("x")
	if got := tr.Lookup("x").State; got != StateOwned {
		t.Fatalf("state after Reassign = %v, want owned", got)
	}
}

func TestRedeclarationSameScope(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	issue := tr.Define("x", TagInt, true, sp(5, 6))
	if issue.Kind != IssueRedeclaration {
		t.Fatalf("issue = %v, want IssueRedeclaration", issue.Kind)
	}
	if issue.Prior != sp(0, 1) {
		t.Errorf("prior = %v, want the first declaration", issue.Prior)
	}
}

func TestUseAfterMove(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	if issue := tr.MarkMoved("x", sp(10, 11)); issue.Some() {
		t.Fatalf("MarkMoved = %v", issue)
	}
	// Every later read fails at the use site, however far from the move.
	for i := 0; i < 3; i++ {
		issue := tr.CheckUse("x")
		if issue.Kind != IssueUseAfterMove {
			t.Fatalf("CheckUse #%d = %v, want IssueUseAfterMove", i, issue.Kind)
		}
		if issue.Prior != sp(10, 11) {
			t.Errorf("prior = %v, want the move site", issue.Prior)
		}
	}
}

func TestSharedBorrowsAreUnlimited(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	const n = 5
	for i := uint32(0); i < n; i++ {
		if issue := tr.Borrow("x", sp(i, i+1)); issue.Some() {
			t.Fatalf("Borrow #%d = %v", i, issue.Kind)
		}
	}
	b := tr.Lookup("x")
	if b.State != StateShared || b.SharedCount != n {
		t.Fatalf("state = %v count = %d, want shared-borrowed %d", b.State, b.SharedCount, n)
	}
	// Reads through the owner stay legal under shared borrows.
	if issue := tr.CheckUse("x"); issue.Some() {
		t.Errorf("CheckUse under shared borrows = %v", issue.Kind)
	}
}

func TestMutableExclusivity(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	if issue := tr.BorrowMut("x", sp(2, 3)); issue.Some() {
		t.Fatalf("first BorrowMut = %v", issue.Kind)
	}
	if issue := tr.BorrowMut("x", sp(4, 5)); issue.Kind != IssueMultipleMutBorrows {
		t.Fatalf("second BorrowMut = %v, want IssueMultipleMutBorrows", issue.Kind)
	}
	if issue := tr.Borrow("x", sp(6, 7)); issue.Kind != IssueBorrowWhileMutBorrowed {
		t.Fatalf("Borrow after BorrowMut = %v, want IssueBorrowWhileMutBorrowed", issue.Kind)
	}
	if issue := tr.CheckUse("x"); issue.Kind != IssueReadWhileMutBorrowed {
		t.Fatalf("CheckUse under mut borrow = %v, want IssueReadWhileMutBorrowed", issue.Kind)
	}
}

func TestMutBorrowAfterSharedRejected(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	tr.Borrow("x", sp(2, 3))
	issue := tr.BorrowMut("x", sp(4, 5))
	if issue.Kind != IssueMutBorrowWhileShared {
		t.Fatalf("BorrowMut after Borrow = %v, want IssueMutBorrowWhileShared", issue.Kind)
	}
}

func TestMoveBorrowedRejected(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))
	tr.Define("y", TagInt, true, sp(2, 3))

	tr.Borrow("x", sp(4, 5))
	if issue := tr.MarkMoved("x", sp(6, 7)); issue.Kind != IssueCannotMoveBorrowed {
		t.Fatalf("move of shared-borrowed = %v, want IssueCannotMoveBorrowed", issue.Kind)
	}

	tr.BorrowMut("y", sp(8, 9))
	if issue := tr.MarkMoved("y", sp(10, 11)); issue.Kind != IssueCannotMoveBorrowed {
		t.Fatalf("move of mut-borrowed = %v, want IssueCannotMoveBorrowed", issue.Kind)
	}
}

func TestBorrowOfMovedRejected(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))
	tr.MarkMoved("x", sp(2, 3))

	if issue := tr.Borrow("x", sp(4, 5)); issue.Kind != IssueUseAfterMove {
		t.Fatalf("Borrow of moved = %v, want IssueUseAfterMove", issue.Kind)
	}
	if issue := tr.BorrowMut("x", sp(6, 7)); issue.Kind != IssueUseAfterMove {
		t.Fatalf("BorrowMut of moved = %v, want IssueUseAfterMove", issue.Kind)
	}
}

func TestScopeExitReleasesBorrows(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	tr.PushScope()
	tr.Borrow("x", sp(2, 3))
	tr.Borrow("x", sp(4, 5))
	tr.PopScope()

	b := tr.Lookup("x")
	if b.State != StateOwned || b.SharedCount != 0 {
		t.Fatalf("state after scope exit = %v count=%d, want owned", b.State, b.SharedCount)
	}
	// A fresh exclusive borrow in the outer scope now succeeds.
	if issue := tr.BorrowMut("x", sp(6, 7)); issue.Some() {
		t.Fatalf("BorrowMut after release = %v", issue.Kind)
	}
}

func TestScopeExitReleasesMutBorrow(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	tr.PushScope()
	tr.BorrowMut("x", sp(2, 3))
	tr.PopScope()

	if got := tr.Lookup("x").State; got != StateOwned {
		t.Fatalf("state = %v, want owned", got)
	}
}

func TestScopeExitOnlyReleasesItsOwnBorrows(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))

	tr.Borrow("x", sp(2, 3)) // outer borrow

	tr.PushScope()
	tr.Borrow("x", sp(4, 5)) // inner borrow
	tr.PopScope()

	b := tr.Lookup("x")
	if b.State != StateShared || b.SharedCount != 1 {
		t.Fatalf("state = %v count=%d, want shared count 1", b.State, b.SharedCount)
	}
}

func TestShadowingLeavesOuterBindingAlone(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))
	tr.MarkMoved("x", sp(2, 3))

	tr.PushScope()
	if issue := tr.Define("x", TagInt, true, sp(4, 5)); issue.Some() {
		t.Fatalf("shadowing Define = %v", issue.Kind)
	}
	// The inner binding is fresh and usable.
	if issue := tr.CheckUse("x"); issue.Some() {
		t.Fatalf("CheckUse of shadow = %v", issue.Kind)
	}
	tr.PopScope()

	// The outer binding's state is untouched by the shadow's lifetime.
	if issue := tr.CheckUse("x"); issue.Kind != IssueUseAfterMove {
		t.Fatalf("outer CheckUse = %v, want IssueUseAfterMove", issue.Kind)
	}
}

func TestReassignRestoresMovedBinding(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))
	tr.MarkMoved("x", sp(2, 3))
	tr.Reassign("x")

	if issue := tr.CheckUse("x"); issue.Some() {
		t.Fatalf("CheckUse after reassign = %v", issue.Kind)
	}
}

func TestReassignEndsSharedBorrows(t *testing.T) {
	tr := newScopedTracker()
	tr.Define("x", TagInt, true, sp(0, 1))
	tr.Borrow("x", sp(2, 3))
	tr.Reassign("x")

	b := tr.Lookup("x")
	if b.State != StateOwned {
		t.Fatalf("state = %v, want owned", b.State)
	}
	// The stale borrow record must not corrupt the fresh state when its
	// scope finally exits.
	tr.PopScope()
}

func TestUnknownNamesAreIgnored(t *testing.T) {
	tr := newScopedTracker()

	if issue := tr.CheckUse("ghost"); issue.Some() {
		t.Errorf("CheckUse = %v", issue.Kind)
	}
	if issue := tr.Borrow("ghost", sp(0, 1)); issue.Some() {
		t.Errorf("Borrow = %v", issue.Kind)
	}
	if issue := tr.MarkMoved("ghost", sp(0, 1)); issue.Some() {
		t.Errorf("MarkMoved = %v", issue.Kind)
	}
}
