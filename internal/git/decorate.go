package git

import (
	"fmt"
	"strings"
)

// DecoratedCommit is one entry of a branch's decorated first-parent history:
// a commit hash plus the ref labels pointing at it, in the order git reports
// them. Labels are raw, so they may carry a "HEAD -> " prefix, a "tag: "
// prefix, or a remote name. Interpreting them is the caller's concern.
type DecoratedCommit struct {
	Hash string
	Refs []string
}

// refSeparator is the field separator requested via --format=%H%x00%D.
const refSeparator = "\x00"

// DecoratedLog returns up to limit entries of the branch's first-parent
// history, simplified to decoration-relevant commits and starting one commit
// behind the branch tip (the tip's own decoration is the branch itself, which
// is never useful for finding its parent).
func (c *Client) DecoratedLog(branch string, limit int) ([]DecoratedCommit, error) {
	output, err := c.run(
		"log",
		"--first-parent",
		"--simplify-by-decoration",
		"--skip=1",
		"-n", fmt.Sprintf("%d", limit),
		"--format=%H%x00%D",
		branch,
		"--",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read decorated history of %s: %w", branch, err)
	}

	var commits []DecoratedCommit
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		commits = append(commits, parseDecoratedLine(line))
	}
	return commits, nil
}

// parseDecoratedLine splits one "%H%x00%D" record into a DecoratedCommit
func parseDecoratedLine(line string) DecoratedCommit {
	hash, decoration, _ := strings.Cut(line, refSeparator)
	commit := DecoratedCommit{Hash: hash}
	if decoration == "" {
		return commit
	}
	commit.Refs = strings.Split(decoration, ", ")
	return commit
}
