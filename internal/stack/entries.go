package stack

import (
	"github.com/calebh/stackbuddy/internal/ui"
)

// DisplayEntries prepares a head-first stack for rendering: base-first order
// with each branch's PR info attached. One review lookup per branch, issued
// sequentially.
func (c *Client) DisplayEntries(stack []string, current string) ([]ui.StackEntry, error) {
	entries := make([]ui.StackEntry, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		branch := stack[i]
		entry := ui.StackEntry{
			Branch:  branch,
			Current: branch == current,
		}

		pr, err := c.gh.PRForBranch(branch)
		if err != nil {
			return nil, err
		}
		if pr != nil {
			entry.PRNumber = pr.Number
			entry.State = pr.State
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
