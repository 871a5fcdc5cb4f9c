package strict

// Text is a plain string that satisfies fmt.Stringer. Narrowing to a
// string-like value wraps bare strings in Text.
type Text string

// String returns the text unchanged.
func (t Text) String() string {
	return string(t)
}
