package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
)

// StackEntry is one branch of a resolved stack prepared for display,
// base-first, with its PR info when one exists.
type StackEntry struct {
	Branch   string
	PRNumber int
	State    string
	Current  bool
}

// RenderStackTree renders a stack as a nested tree rooted at the trunk.
// Entries are base-first. Example output:
//
//	main
//	╰─ feature-a #40
//	   ╰─ feature-b #41
//	      ╰─ feature-c ◀
func RenderStackTree(trunk string, entries []StackEntry) string {
	if len(entries) == 0 {
		return TreeRootStyle.Render(trunk) + "\n" + Dim("  (no stacked branches)")
	}

	// Build from the head inward so each branch nests under its parent
	node := tree.Root(formatEntryForTree(entries[len(entries)-1]))
	for i := len(entries) - 2; i >= 0; i-- {
		parent := tree.Root(formatEntryForTree(entries[i]))
		parent.Child(node)
		node = parent
	}

	t := tree.Root(TreeRootStyle.Render(trunk))
	t.Child(node)
	t.Enumerator(roundedEnumerator).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(treeIndenter)

	return t.String()
}

// formatEntryForTree builds a one-line label like "feature-b #41 ◀"
func formatEntryForTree(entry StackEntry) string {
	line := Bold(entry.Branch)
	if entry.PRNumber > 0 {
		line += " " + Highlight(fmt.Sprintf("#%d", entry.PRNumber))
		if entry.State != "" {
			line += " " + StateStyle(entry.State).Render(entry.State)
		}
	} else {
		line += " " + Dim("[no PR]")
	}
	if entry.Current {
		line += " " + CurrentMarkerStyle.Render("◀")
	}
	return line
}

// RenderStackTable renders a stack as a bordered table, base-first
func RenderStackTable(entries []StackEntry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderRow(false).
		BorderColumn(true).
		Width(min(GetTerminalWidth(), 72)).
		StyleFunc(stackTableStyleFunc).
		Headers("Branch", "PR", "State")

	for _, entry := range entries {
		branch := entry.Branch
		if entry.Current {
			branch += " ◀"
		}
		pr, state := "-", "-"
		if entry.PRNumber > 0 {
			pr = fmt.Sprintf("#%d", entry.PRNumber)
			state = entry.State
		}
		t.Row(branch, pr, state)
	}
	return t.String()
}

func stackTableStyleFunc(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return TableHeaderStyle
	}
	return TableCellStyle
}

// roundedEnumerator draws ╰─ for the last child and ├─ otherwise
func roundedEnumerator(children tree.Children, i int) string {
	if children.Length() == 0 {
		return ""
	}
	if i == children.Length()-1 {
		return "╰─ "
	}
	return "├─ "
}

// treeIndenter continues the vertical line for non-last children
func treeIndenter(children tree.Children, i int) string {
	if children.Length() == 0 {
		return ""
	}
	if i == children.Length()-1 {
		return "   "
	}
	return "│  "
}
