package stack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeNoteFreshBody(t *testing.T) {
	body := "Fixes the frobnicator.\n\nSee also #12."
	note := "> [!Note]\n> - Previous PR: #41"

	merged := MergeNote(body, note)

	assert.True(t, strings.HasPrefix(merged, noteOpenMarker+"\n"+note+"\n"+noteCloseMarker))
	assert.True(t, strings.HasSuffix(merged, body), "original body must survive as an exact suffix")
}

func TestMergeNoteReplacesExistingRegion(t *testing.T) {
	body := "intro text\n" +
		noteOpenMarker + "\nold note\n" + noteCloseMarker + "\n" +
		"outro text"

	merged := MergeNote(body, "new note")

	assert.Equal(t, "intro text\n"+
		noteOpenMarker+"\nnew note\n"+noteCloseMarker+"\n"+
		"outro text", merged)
}

func TestMergeNoteIdempotence(t *testing.T) {
	note1 := "> [!Note]\n> - Previous PR: #41"
	note2 := "> [!Note]\n> - Next PR: #42"

	bodies := []string{
		"",
		"plain body with no markers",
		"already merged:\n" + noteOpenMarker + "\nstale\n" + noteCloseMarker + "\ntail",
		"only an open marker " + noteOpenMarker + " and nothing else",
		"only a close marker " + noteCloseMarker + " and nothing else",
		"out of order " + noteCloseMarker + " before " + noteOpenMarker,
	}

	for _, body := range bodies {
		once := MergeNote(body, note2)
		twice := MergeNote(MergeNote(body, note1), note2)
		assert.Equal(t, once, twice, "body: %q", body)

		assert.Equal(t, once, MergeNote(once, note2), "re-merging the same note must be a no-op")
	}
}

func TestMergeNoteMalformedMarkersTreatedAsAbsent(t *testing.T) {
	body := "tail " + noteCloseMarker + " then " + noteOpenMarker
	note := "fresh"

	merged := MergeNote(body, note)

	// The whole original body, stray markers included, survives as a suffix
	assert.True(t, strings.HasSuffix(merged, body))
	assert.True(t, strings.HasPrefix(merged, noteOpenMarker+"\n"+note+"\n"+noteCloseMarker))
}
