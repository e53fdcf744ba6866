package booking

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in the currency's minor unit.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// MaxNoteLength is counted in characters, not bytes.
const MaxNoteLength = 1000

type Note struct {
	value string
}

func NewNote(value string) Note {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		value = truncateRunes(value, MaxNoteLength)
	}
	return Note{value: value}
}

func truncateRunes(s string, n int) string {
	end := 0
	for i := 0; i < n && end < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[:end]
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
