package stack

import (
	"fmt"
	"slices"
	"strings"

	"github.com/calebh/stackbuddy/internal/gh"
)

// NoteFormat selects how a stack adjacency note is rendered
type NoteFormat string

const (
	// FormatDouble lists the previous and next PRs, like a doubly linked list
	FormatDouble NoteFormat = "double"

	// FormatList lists every PR in the stack, base to head
	FormatList NoteFormat = "list"

	// FormatTable shows the previous and next PRs as a two-column table
	FormatTable NoteFormat = "table"
)

// ParseNoteFormat validates a format flag value
func ParseNoteFormat(s string) (NoteFormat, error) {
	switch NoteFormat(s) {
	case FormatDouble, FormatList, FormatTable:
		return NoteFormat(s), nil
	}
	return "", fmt.Errorf("unknown note format %q (expected double, list, or table)", s)
}

// NoteBlock renders the adjacency note for the given branch's PR, based on
// the branch's position within the current stack.
func (c *Client) NoteBlock(branch string, format NoteFormat) (string, error) {
	stack, err := c.CurrentStack()
	if err != nil {
		return "", err
	}
	return c.noteForBranch(stack, branch, format)
}

// noteForBranch renders the note for one branch of an already-resolved stack.
// The stack is head-first: "previous" is the neighbor toward the trunk (the
// PR this one stacks on top of) and "next" is the neighbor toward the head.
// The branch nearest the trunk has no previous PR.
func (c *Client) noteForBranch(stack []string, branch string, format NoteFormat) (string, error) {
	index := slices.Index(stack, branch)
	if index < 0 {
		return "", fmt.Errorf("branch %q: %w", branch, ErrBranchNotInStack)
	}

	if format == FormatList {
		return c.noteList(stack, branch)
	}

	var prevPR, nextPR *gh.PR
	if index+1 < len(stack) {
		pr, err := c.gh.PRForBranch(stack[index+1])
		if err != nil {
			return "", err
		}
		prevPR = pr
	}
	if index > 0 {
		pr, err := c.gh.PRForBranch(stack[index-1])
		if err != nil {
			return "", err
		}
		nextPR = pr
	}

	if format == FormatTable {
		return noteTable(prevPR, nextPR), nil
	}
	return noteDouble(prevPR, nextPR), nil
}

// noteDouble renders a callout naming the neighboring PRs. With no neighbors
// it falls back to a sentence rather than an empty callout.
func noteDouble(prevPR, nextPR *gh.PR) string {
	var sb strings.Builder
	sb.WriteString("> [!Note]")
	if prevPR != nil {
		fmt.Fprintf(&sb, "\n> - Previous PR: #%d", prevPR.Number)
	}
	if nextPR != nil {
		fmt.Fprintf(&sb, "\n> - Next PR: #%d", nextPR.Number)
	}
	if prevPR == nil && nextPR == nil {
		sb.WriteString("\n> This is currently the only PR in the stack")
	}
	return sb.String()
}

// noteList renders every PR in the stack base-to-head, marking the focal
// branch's own entry. Branches without a PR are omitted.
func (c *Client) noteList(stack []string, branch string) (string, error) {
	var sb strings.Builder
	sb.WriteString("> [!Note]\n> PRs in the stack:")

	for i := len(stack) - 1; i >= 0; i-- {
		pr, err := c.gh.PRForBranch(stack[i])
		if err != nil {
			return "", err
		}
		if pr == nil {
			continue
		}
		fmt.Fprintf(&sb, "\n> - #%d", pr.Number)
		if stack[i] == branch {
			sb.WriteString(" (this)")
		}
	}
	return sb.String(), nil
}

// noteTable renders the neighbors as a fixed two-column markdown table,
// spelling out missing sides as the literal token None.
func noteTable(prevPR, nextPR *gh.PR) string {
	prev := "None"
	if prevPR != nil {
		prev = fmt.Sprintf("#%d", prevPR.Number)
	}
	next := "None"
	if nextPR != nil {
		next = fmt.Sprintf("#%d", nextPR.Number)
	}

	var sb strings.Builder
	sb.WriteString("| Previous PR | Next PR |\n")
	sb.WriteString("|-------------|---------|\n")
	fmt.Fprintf(&sb, "| %s | %s |", prev, next)
	return sb.String()
}
