package export

import (
	"io"
	"strings"

	"github.com/rshade/aichronos/internal/timeline"
)

// EncodeText writes the canvas rows as plain text with trailing blanks
// removed.
func EncodeText(w io.Writer, canvas *timeline.Canvas) error {
	var b strings.Builder
	for _, line := range canvas.Lines() {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
