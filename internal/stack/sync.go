package stack

import (
	"fmt"

	"github.com/calebh/stackbuddy/internal/ui"
)

// SyncNotes merges an adjacency note into the PR description of every branch
// in the stack, head-first. One branch failing does not stop the others: the
// failure is reported inline and the walk continues, returning an error at
// the end so the invocation still exits non-zero. Branches without a PR are
// skipped with a progress line. In dry-run mode the rendered note is printed
// instead of written.
func (c *Client) SyncNotes(stack []string, format NoteFormat, dryRun bool) error {
	failed := 0
	for _, branch := range stack {
		if err := c.syncNote(stack, branch, format, dryRun); err != nil {
			ui.Errorf("%s: %v", branch, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to update notes for %d of %d branches", failed, len(stack))
	}
	return nil
}

// syncNote updates a single branch's PR description
func (c *Client) syncNote(stack []string, branch string, format NoteFormat, dryRun bool) error {
	pr, err := c.gh.PRForBranch(branch)
	if err != nil {
		return err
	}
	if pr == nil {
		ui.Infof("%s: no PR, skipping", branch)
		return nil
	}

	note, err := c.noteForBranch(stack, branch, format)
	if err != nil {
		return err
	}

	if dryRun {
		ui.Infof("%s: would update PR #%d with:", branch, pr.Number)
		ui.Println(note)
		return nil
	}

	body, err := c.gh.PRBody(branch)
	if err != nil {
		return err
	}

	merged := MergeNote(body, note)
	if merged == body {
		ui.Infof("%s: PR #%d already up to date", branch, pr.Number)
		return nil
	}

	if err := c.gh.UpdatePRBody(branch, merged); err != nil {
		return fmt.Errorf("failed to update note on PR #%d: %w", pr.Number, err)
	}
	ui.Successf("%s: updated PR #%d", branch, pr.Number)
	return nil
}
