// Package wordlist decodes the fwup nickname word list from its packed form.
//
// Words are stored five to a row with lengths 3, 4, 5, 6 and 7, so every row is
// 25 bytes wide and the position of any word can be computed without a search.
package wordlist

import (
	"errors"
	"fmt"
)

const (
	// Count is the number of words in the list.
	Count = 256

	// WordsPerRow is the number of words in each row of the packed buffer.
	WordsPerRow = 5

	// RowWidth is the byte width of a full row (3+4+5+6+7).
	RowWidth = 25

	// MinWordLen and MaxWordLen bound the length of every word.
	MinWordLen = 3
	MaxWordLen = MinWordLen + WordsPerRow - 1
)

// Rows is the number of rows in the packed buffer, counting the partial last row.
const Rows = (Count + WordsPerRow - 1) / WordsPerRow

// Word list errors.
var (
	// ErrIndexOutOfRange is returned when a word index is outside [0, Count).
	ErrIndexOutOfRange = errors.New("word index out of range")

	// ErrRowOutOfRange is returned when a row index is outside [0, Rows).
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrLayout is returned when the packed buffer breaks the row layout.
	ErrLayout = errors.New("packed word layout is inconsistent")
)

// Word is a view into the packed buffer.
type Word struct {
	Offset int
	Len    int
}

// String returns the characters the view covers.
func (w Word) String() string {
	return packed[w.Offset : w.Offset+w.Len]
}

// Locate returns the position of word i in the packed buffer.
//
// The offset of column m within a row is the sum of the lengths before it,
// 3+4+...+(m+2), which reduces to m*(m+5)/2.
func Locate(i int) (Word, error) {
	if i < 0 || i >= Count {
		return Word{}, fmt.Errorf("%w: %d (want 0..%d)", ErrIndexOutOfRange, i, Count-1)
	}
	m := i % WordsPerRow
	return Word{
		Offset: (i/WordsPerRow)*RowWidth + m*(m+5)/2,
		Len:    m + MinWordLen,
	}, nil
}

// At returns word i.
func At(i int) (string, error) {
	w, err := Locate(i)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

// MustAt is like At but panics if i is out of range.
func MustAt(i int) string {
	w, err := Locate(i)
	if err != nil {
		panic(err)
	}
	return w.String()
}

// Words returns every word in index order.
func Words() []string {
	out := make([]string, Count)
	for i := range out {
		out[i] = MustAt(i)
	}
	return out
}

// Row returns the raw bytes of row r. The last row is shorter than RowWidth
// when Count is not a multiple of WordsPerRow.
func Row(r int) (string, error) {
	if r < 0 || r >= Rows {
		return "", fmt.Errorf("%w: %d (want 0..%d)", ErrRowOutOfRange, r, Rows-1)
	}
	start := r * RowWidth
	end := min(start+RowWidth, len(packed))
	return packed[start:end], nil
}

// Validate checks the packed buffer against the row layout.
func Validate() error {
	last, err := Locate(Count - 1)
	if err != nil {
		return err
	}
	if want := last.Offset + last.Len; len(packed) != want {
		return fmt.Errorf("%w: buffer is %d bytes, last word ends at %d", ErrLayout, len(packed), want)
	}
	for i := 0; i < Count; i++ {
		word := MustAt(i)
		for _, c := range []byte(word) {
			if c < 'a' || c > 'z' {
				return fmt.Errorf("%w: word %d (%q) is not lowercase ASCII", ErrLayout, i, word)
			}
		}
	}
	return nil
}
