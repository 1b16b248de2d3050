package tty

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks the user to approve an export on the local terminal, the
// trusted display of the simulated device. The prompt blocks until a
// decision is typed.
type Confirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConfirmer returns a Confirmer prompting on stdin/stdout.
func NewConfirmer() *Confirmer {
	return NewConfirmerWithIO(os.Stdin, os.Stdout)
}

// NewConfirmerWithIO returns a Confirmer prompting on the given
// reader/writer pair.
func NewConfirmerWithIO(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// ConfirmPubkeyExport implements the ConfirmationSurface interface. Only an
// explicit "y" or "yes" approves the export, anything else (end of input
// included) denies it.
func (c *Confirmer) ConfirmPubkeyExport(
	pathText string, unsafe bool, pubkey string,
) bool {
	if unsafe {
		fmt.Fprintln(c.writer, "WARNING: the derivation path is non-standard")
	}
	fmt.Fprintf(c.writer, "path:   %s\n", pathText)
	fmt.Fprintf(c.writer, "pubkey: %s\n", pubkey)
	fmt.Fprint(c.writer, "approve export? [y/N] ")

	line, err := c.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
