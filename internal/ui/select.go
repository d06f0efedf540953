package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"
)

func init() {
	// Force lipgloss to initialize and detect the terminal before the fuzzy
	// finder starts, so ANSI escape sequences don't leak into its input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectBranch presents a fuzzy finder over the stack's branches.
// Returns the selected branch name, or "" if the user cancelled.
func SelectBranch(entries []StackEntry) (string, error) {
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return entries[i].Branch
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return formatBranchPreview(entries[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", err
	}

	return entries[idx].Branch, nil
}

// formatBranchPreview renders the preview pane for one branch
func formatBranchPreview(entry StackEntry) string {
	preview := "Branch: " + entry.Branch + "\n"
	if entry.PRNumber > 0 {
		preview += fmt.Sprintf("PR:     #%d (%s)\n", entry.PRNumber, entry.State)
	} else {
		preview += "PR:     none\n"
	}
	if entry.Current {
		preview += "\nCurrently checked out"
	}
	return preview
}
