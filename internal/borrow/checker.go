package borrow

import (
	"fmt"

	"home/internal/ast"
	"home/internal/diag"
	"home/internal/source"
)

// Checker walks a program in evaluation order and drives the Tracker.
// Violations are recorded and the walk continues, so one run reports as
// many independent problems as possible. The checker never mutates the AST
// and keeps no state across programs.
type Checker struct {
	tracker  *Tracker
	reporter diag.Reporter
	bag      *diag.Bag
}

// NewChecker creates a checker that accumulates at most maxDiagnostics.
// maxDiagnostics <= 0 means unbounded.
func NewChecker(maxDiagnostics int) *Checker {
	bag := diag.NewBag(maxDiagnostics)
	return &Checker{
		tracker:  NewTracker(),
		reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		bag:      bag,
	}
}

// Check walks the whole program. It may be called once per Checker.
func (c *Checker) Check(prog *ast.Program) {
	if prog == nil {
		return
	}
	c.tracker.PushScope()
	for _, stmt := range prog.Stmts {
		c.checkStmt(stmt)
	}
	c.tracker.PopScope()
	c.bag.Sort()
}

// Errors returns the recorded diagnostics in deterministic order.
func (c *Checker) Errors() []diag.Diagnostic {
	return c.bag.Items()
}

// HasErrors reports whether any violation was recorded; the driver must
// not continue the pipeline while this is true.
func (c *Checker) HasErrors() bool {
	return c.bag.HasErrors()
}

// Bag exposes the underlying bag for merging into a run-wide collection.
func (c *Checker) Bag() *diag.Bag {
	return c.bag
}

func (c *Checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		c.checkLet(s)
	case *ast.FnStmt:
		c.checkFn(s)
	case *ast.ReturnStmt:
		c.checkReturn(s)
	case *ast.IfStmt:
		c.checkExpr(s.Cond)
		c.checkBlock(s.Then)
		if s.Else != nil {
			c.checkStmt(s.Else)
		}
	case *ast.WhileStmt:
		c.checkExpr(s.Cond)
		c.checkBlock(s.Body)
	case *ast.ForStmt:
		// The header gets its own scope so the init binding dies with
		// the loop.
		c.tracker.PushScope()
		if s.Init != nil {
			c.checkStmt(s.Init)
		}
		c.checkExpr(s.Cond)
		c.checkBlock(s.Body)
		c.checkExpr(s.Post)
		c.tracker.PopScope()
	case *ast.BlockStmt:
		c.checkBlock(s)
	case *ast.ExprStmt:
		c.checkExpr(s.X)
	case nil:
		// Recovery may leave holes in the tree; skip them.
	default:
		// Unknown statement forms are ignored rather than guessed at.
	}
}

// checkLet walks the initializer against the outer bindings first: the new
// name is not visible inside its own initializer.
func (c *Checker) checkLet(s *ast.LetStmt) {
	if s.Init != nil {
		c.checkExpr(s.Init)
		if src, moves := movedIdent(s.Init); moves {
			issue := c.tracker.MarkMoved(src.Name, src.Sp)
			c.reportIssue(src.Name, src.Sp, issue)
		}
	}
	issue := c.tracker.Define(s.Name, TagInt, s.Init != nil, s.NameSpan)
	c.reportIssue(s.Name, s.NameSpan, issue)
}

// checkFn puts parameters and body statements in one scope; the scope is
// popped (releasing its borrows) no matter how the body exits.
func (c *Checker) checkFn(s *ast.FnStmt) {
	c.tracker.PushScope()
	defer c.tracker.PopScope()

	for _, param := range s.Params {
		issue := c.tracker.Define(param.Name, TagInt, true, param.Sp)
		c.reportIssue(param.Name, param.Sp, issue)
	}
	if s.Body != nil {
		for _, stmt := range s.Body.Stmts {
			c.checkStmt(stmt)
		}
	}
}

// checkReturn rejects returning a borrow of a local outright: without a
// lifetime system the analysis cannot prove the referent outlives the
// caller, so `return &x` is unsound by default.
func (c *Checker) checkReturn(s *ast.ReturnStmt) {
	if s.Value == nil {
		return
	}
	c.checkExpr(s.Value)

	unary, isUnary := s.Value.(*ast.UnaryExpr)
	if !isUnary || (unary.Op != ast.OpRef && unary.Op != ast.OpRefMut) {
		return
	}
	ident, isIdent := unary.X.(*ast.IdentExpr)
	if !isIdent {
		return
	}
	d := diag.NewError(diag.BrwReturnBorrowedValue, s.Value.Span(),
		fmt.Sprintf("cannot return a borrow of local value '%s'", ident.Name)).
		WithFix("return the owned value instead",
			diag.FixEdit{Span: source.Span{File: unary.Sp.File, Start: unary.Sp.Start, End: ident.Sp.Start}})
	c.reporter.Report(d)
}

func (c *Checker) checkBlock(b *ast.BlockStmt) {
	if b == nil {
		return
	}
	c.tracker.PushScope()
	for _, stmt := range b.Stmts {
		c.checkStmt(stmt)
	}
	c.tracker.PopScope()
}

func (c *Checker) checkExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.IdentExpr:
		issue := c.tracker.CheckUse(e.Name)
		c.reportIssue(e.Name, e.Sp, issue)
	case *ast.IntLitExpr, *ast.StringLitExpr, *ast.BoolLitExpr:
		// Literals own nothing.
	case *ast.BinaryExpr:
		c.checkExpr(e.Left)
		c.checkExpr(e.Right)
	case *ast.UnaryExpr:
		c.checkUnary(e)
	case *ast.AssignExpr:
		c.checkAssign(e)
	case *ast.CallExpr:
		c.checkExpr(e.Callee)
		// Arguments are walked as plain uses: passing an identifier to a
		// call does not move it, only direct assignment sources do. The
		// asymmetry is the documented move heuristic, not an oversight.
		for _, arg := range e.Args {
			c.checkExpr(arg)
		}
	case *ast.MemberExpr:
		c.checkExpr(e.Object)
	case *ast.IndexExpr:
		c.checkExpr(e.Object)
		c.checkExpr(e.Index)
	case *ast.GroupExpr:
		c.checkExpr(e.X)
	case nil:
		// Recovery holes.
	default:
		// Unknown expression forms are ignored rather than guessed at.
	}
}

// checkUnary: `&x` and `&mut x` on a bare identifier are the only forms
// that create borrows. Everything else, including a borrow of a compound
// expression, walks its operand as an ordinary use.
func (c *Checker) checkUnary(e *ast.UnaryExpr) {
	if e.Op == ast.OpRef || e.Op == ast.OpRefMut {
		if ident, isIdent := e.X.(*ast.IdentExpr); isIdent {
			var issue Issue
			if e.Op == ast.OpRef {
				issue = c.tracker.Borrow(ident.Name, e.Sp)
			} else {
				issue = c.tracker.BorrowMut(ident.Name, e.Sp)
			}
			c.reportIssue(ident.Name, e.Sp, issue)
			return
		}
	}
	c.checkExpr(e.X)
}

// checkAssign walks the value first (right-to-left data dependency), then
// validates the target slot, then applies the move heuristic to the source.
func (c *Checker) checkAssign(e *ast.AssignExpr) {
	c.checkExpr(e.Value)

	target, simple := e.Target.(*ast.IdentExpr)
	if !simple {
		c.checkExpr(e.Target)
		return
	}

	issue := c.tracker.CheckUse(target.Name)
	c.reportIssue(target.Name, target.Sp, issue)

	if src, moves := movedIdent(e.Value); moves {
		moveIssue := c.tracker.MarkMoved(src.Name, src.Sp)
		c.reportIssue(src.Name, src.Sp, moveIssue)
	}

	if !issue.Some() {
		c.tracker.Reassign(target.Name)
	}
}

// movedIdent applies the move heuristic: only a bare identifier names a
// source binding to mark moved. Calls produce moved values too, but there
// is no binding behind them to transition; literals and operators copy.
func movedIdent(value ast.Expr) (*ast.IdentExpr, bool) {
	if ident, isIdent := value.(*ast.IdentExpr); isIdent {
		return ident, true
	}
	return nil, false
}

func (c *Checker) reportIssue(name string, span source.Span, issue Issue) {
	if !issue.Some() {
		return
	}

	var d diag.Diagnostic
	switch issue.Kind {
	case IssueUseAfterMove:
		d = diag.NewError(diag.BrwUseAfterMove, span,
			fmt.Sprintf("use of moved value '%s'", name)).
			WithNote(issue.Prior, "value moved here").
			WithFix("clone the value instead of moving it",
				diag.FixEdit{
					Span:    source.Span{File: issue.Prior.File, Start: issue.Prior.End, End: issue.Prior.End},
					NewText: ".clone()",
				})
	case IssueReadWhileMutBorrowed:
		d = diag.NewError(diag.BrwBorrowWhileMutBorrowed, span,
			fmt.Sprintf("cannot use '%s' while it is mutably borrowed", name)).
			WithNote(issue.Prior, "mutable borrow here")
	case IssueMultipleMutBorrows:
		d = diag.NewError(diag.BrwMultipleMutableBorrows, span,
			fmt.Sprintf("cannot mutably borrow '%s' more than once at a time", name)).
			WithNote(issue.Prior, "first mutable borrow here")
	case IssueBorrowWhileMutBorrowed:
		d = diag.NewError(diag.BrwBorrowWhileMutBorrowed, span,
			fmt.Sprintf("cannot borrow '%s' while it is mutably borrowed", name)).
			WithNote(issue.Prior, "mutable borrow here")
	case IssueMutBorrowWhileShared:
		d = diag.NewError(diag.BrwMutBorrowWhileBorrowed, span,
			fmt.Sprintf("cannot mutably borrow '%s' while it is borrowed", name)).
			WithNote(issue.Prior, "shared borrow here")
	case IssueCannotMoveBorrowed:
		d = diag.NewError(diag.BrwCannotMoveBorrowed, span,
			fmt.Sprintf("cannot move '%s' while it is borrowed", name)).
			WithNote(issue.Prior, "borrow here")
	case IssueRedeclaration:
		d = diag.NewError(diag.BrwRedeclaration, span,
			fmt.Sprintf("'%s' is already defined in this scope", name)).
			WithNote(issue.Prior, "previous definition here")
	default:
		return
	}
	c.reporter.Report(d)
}
