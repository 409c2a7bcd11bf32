package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"home/internal/diag"
)

var explainCmd = &cobra.Command{
	Use:   "explain [code]",
	Short: "Explain a diagnostic code",
	Long: `Explain prints the extended description of a diagnostic code such as
BRW3001. Without an argument it lists every documented code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

var (
	explainTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	explainCodeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	explainBodyStyle  = lipgloss.NewStyle().PaddingLeft(2)
	explainDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		ids := make([]string, 0, len(explanations))
		for id := range explanations {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			code, _ := diag.LookupID(id)
			fmt.Fprintf(out, "%s  %s\n", explainCodeStyle.Render(id), code.Title())
		}
		fmt.Fprintln(out, explainDimStyle.Render("\nrun `home explain <code>` for details"))
		return nil
	}

	id := strings.ToUpper(strings.TrimSpace(args[0]))
	code, ok := diag.LookupID(id)
	if !ok {
		return fmt.Errorf("unknown diagnostic code: %s", args[0])
	}
	body, ok := explanations[id]
	if !ok {
		fmt.Fprintf(out, "%s: %s\n", explainCodeStyle.Render(id), code.Title())
		fmt.Fprintln(out, explainDimStyle.Render("no extended description for this code yet"))
		return nil
	}

	fmt.Fprintln(out, explainTitleStyle.Render(fmt.Sprintf("%s: %s", id, code.Title())))
	fmt.Fprintln(out)
	fmt.Fprintln(out, explainBodyStyle.Render(strings.TrimSpace(body)))
	return nil
}

var explanations = map[string]string{
	"BRW3001": `A value was read or moved after ownership had already been transferred
away from its binding.

Assigning a bare identifier to another binding, or passing it where a
value is consumed, moves it:

    let a = make_thing();
    let b = a;      // ownership moves to b
    let c = a;      // error: a no longer owns a value

Reassign the binding to give it a fresh value, or borrow instead of
moving when the original should stay usable.`,

	"BRW3002": `A binding was mutably borrowed while an earlier mutable borrow was
still alive. At most one mutable borrow may exist at a time:

    let mut x = 1;
    let a = &mut x;
    let b = &mut x; // error: x is already mutably borrowed

Mutable borrows end when the scope that created them closes.`,

	"BRW3003": `A shared borrow was taken while the binding was mutably borrowed.
A mutable borrow is exclusive: until it ends, no other borrow (and no
read) of the binding is allowed.

    let mut x = 1;
    let m = &mut x;
    let r = &x;     // error: x is mutably borrowed`,

	"BRW3004": `A mutable borrow was taken while shared borrows were still alive.
Readers and a writer cannot overlap:

    let mut x = 1;
    let r = &x;
    let m = &mut x; // error: x is borrowed

Wait for the shared borrows' scope to close, or narrow their scope
with an inner block.`,

	"BRW3005": `A function returned a reference to one of its own local bindings.
The binding is destroyed when the function returns, so the reference
would dangle:

    fn broken() {
        let local = 1;
        return &local;  // error: local dies here
    }

Return the value itself and let ownership move to the caller.`,

	"BRW3006": `A move was attempted while the binding was borrowed. The borrow
still points at the value, so ownership cannot leave:

    let a = 1;
    let r = &a;
    let b = a;      // error: a is borrowed

End the borrow first, or copy the value instead.`,

	"BRW3007": `Two bindings with the same name were declared in the same scope.
Shadowing is only allowed in a nested scope:

    let x = 1;
    let x = 2;      // error: redeclaration
    {
        let x = 3;  // fine: inner scope shadows
    }`,

	"LEX1001": `The lexer hit a byte that does not start any token. Non-ASCII
punctuation pasted from documents is the usual culprit.`,

	"LEX1002": `A string literal was still open when the line or file ended.
Close it with a matching double quote.`,

	"LEX1003": `A numeric literal was malformed, e.g. trailing letters stuck to
the digits.`,

	"SYN2002": `A statement was missing its terminating semicolon. Every let,
return, and expression statement ends with one.`,
}
