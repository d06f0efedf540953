package stack

import "strings"

// The sentinel markers delimit the tool-managed region inside a PR body.
// They are a stable contract: a future run must recognize the region written
// by any past run, so these strings must never change.
const (
	noteOpenMarker  = "<!-- stackbuddy:begin -->"
	noteCloseMarker = "<!-- stackbuddy:end -->"
)

// MergeNote inserts or replaces the delimited note region inside a PR body,
// leaving all surrounding text untouched. When both markers are present in
// order, only the text strictly between them is replaced. A body with
// missing, duplicated-in-reverse, or out-of-order markers is treated as
// having no existing note, and a fresh delimited block is prepended ahead of
// the unmodified body. Merging the same note twice yields the same body as
// merging it once.
func MergeNote(body string, note string) string {
	begin := strings.Index(body, noteOpenMarker)
	end := strings.Index(body, noteCloseMarker)

	if begin >= 0 && end > begin {
		return body[:begin+len(noteOpenMarker)] + "\n" + note + "\n" + body[end:]
	}

	return noteOpenMarker + "\n" + note + "\n" + noteCloseMarker + "\n\n" + body
}
