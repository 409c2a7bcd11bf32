package diag

import (
	"testing"

	"home/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddAndLimit(t *testing.T) {
	b := NewBag(2)

	if !b.Add(NewError(BrwUseAfterMove, span(0, 0, 1), "first")) {
		t.Fatal("first Add rejected")
	}
	if !b.Add(NewError(BrwUseAfterMove, span(0, 2, 3), "second")) {
		t.Fatal("second Add rejected")
	}
	if b.Add(NewError(BrwUseAfterMove, span(0, 4, 5), "third")) {
		t.Fatal("third Add should hit the limit")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevInfo, BrwInfo, span(0, 0, 1), "info"))
	b.Add(New(SevWarning, BrwInfo, span(0, 0, 1), "warn"))

	if b.HasErrors() {
		t.Error("HasErrors true without errors")
	}
	if !b.HasWarnings() {
		t.Error("HasWarnings false with a warning")
	}

	b.Add(NewError(BrwUseAfterMove, span(0, 0, 1), "boom"))
	if !b.HasErrors() {
		t.Error("HasErrors false after adding an error")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(BrwUseAfterMove, span(1, 5, 6), "b"))
	b.Add(NewError(BrwReturnBorrowedValue, span(0, 9, 10), "a2"))
	b.Add(NewError(BrwUseAfterMove, span(0, 3, 4), "a1"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "a1" || items[1].Message != "a2" || items[2].Message != "b" {
		t.Errorf("unexpected order: %q %q %q", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(BrwUseAfterMove, span(0, 0, 1), "a"))

	b := NewBag(1)
	b.Add(NewError(BrwUseAfterMove, span(0, 2, 3), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len = %d after merge, want 2", a.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})

	d := NewError(BrwUseAfterMove, span(0, 0, 1), "use of moved value 'x'")
	r.Report(d)
	r.Report(d)
	r.Report(NewError(BrwUseAfterMove, span(0, 0, 1), "different message"))

	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:            "LEX1001",
		SynUnexpectedToken:        "SYN2001",
		BrwUseAfterMove:           "BRW3001",
		BrwReturnBorrowedValue:    "BRW3005",
		IOReadFailed:              "IO4001",
		UnknownCode:               "E0000",
		BrwMultipleMutableBorrows: "BRW3002",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestLookupID(t *testing.T) {
	code, ok := LookupID("BRW3001")
	if !ok || code != BrwUseAfterMove {
		t.Fatalf("LookupID(BRW3001) = %v, %v", code, ok)
	}
	if _, ok := LookupID("BRW9999"); ok {
		t.Fatal("LookupID should fail for unknown id")
	}
}
