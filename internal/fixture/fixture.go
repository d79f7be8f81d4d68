// Package fixture writes and checks the word34567.txt test fixture.
package fixture

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wordfixture/internal/wordlist"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// DefaultPath is where the fixture lives relative to the support directory.
const DefaultPath = "../test/fixture/word34567.txt"

// filePerm is the mode for a new fixture before the umask, as with fopen.
const filePerm = 0666

// ErrMismatch is returned by Verify when the file on disk differs from the
// generated content.
var ErrMismatch = errors.New("fixture does not match generated word list")

// Writer renders the word list as a fixture file.
type Writer struct {
	logger *zap.Logger
}

// New creates a Writer. A nil logger disables logging.
func New(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// Render writes every word followed by a newline, in index order.
func (w *Writer) Render(out io.Writer) error {
	bw := bufio.NewWriter(out)
	for i := 0; i < wordlist.Count; i++ {
		bw.WriteString(wordlist.MustAt(i))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Bytes returns the rendered fixture.
func (w *Writer) Bytes() []byte {
	var buf bytes.Buffer
	_ = w.Render(&buf) // bytes.Buffer writes do not fail
	return buf.Bytes()
}

// Write generates the fixture at path, truncating any existing file.
//
// The file is opened in place, so a symlinked path writes through to its
// target and an existing file keeps its mode. Nothing is written when the
// file cannot be opened.
func (w *Writer) Write(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	w.logger.Debug("Writing fixture", zap.String("path", path))

	if err := w.Render(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w.logger.Info("Fixture written", zap.String("path", path), zap.Int("words", wordlist.Count))
	return nil
}

// Verify compares the fixture at path with freshly generated content.
func (w *Writer) Verify(path string) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	want := w.Bytes()
	if bytes.Equal(got, want) {
		w.logger.Debug("Fixture up to date", zap.String("path", path))
		return nil
	}

	diff := cmp.Diff(splitLines(want), splitLines(got))
	w.logger.Warn("Fixture out of date", zap.String("path", path), zap.Int("size", len(got)))
	return fmt.Errorf("%w: %s (-want +got):\n%s", ErrMismatch, path, diff)
}

// splitLines keeps the trailing empty element so a missing or extra final
// newline shows up in the diff.
func splitLines(b []byte) []string {
	return strings.Split(string(b), "\n")
}
