package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecoratedLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want DecoratedCommit
	}{
		{
			name: "undecorated commit",
			line: "a1b2c3\x00",
			want: DecoratedCommit{Hash: "a1b2c3"},
		},
		{
			name: "single branch",
			line: "a1b2c3\x00feature-a",
			want: DecoratedCommit{Hash: "a1b2c3", Refs: []string{"feature-a"}},
		},
		{
			name: "head pointer with remote and tag",
			line: "a1b2c3\x00HEAD -> feature-a, origin/feature-a, tag: v1.0",
			want: DecoratedCommit{
				Hash: "a1b2c3",
				Refs: []string{"HEAD -> feature-a", "origin/feature-a", "tag: v1.0"},
			},
		},
		{
			name: "multiple branches keep declaration order",
			line: "a1b2c3\x00feature-a, feature-b",
			want: DecoratedCommit{Hash: "a1b2c3", Refs: []string{"feature-a", "feature-b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDecoratedLine(tt.line))
		})
	}
}
