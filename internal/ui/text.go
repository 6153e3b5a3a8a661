package ui

// clip shortens s to at most n characters, marking the cut with "..".
// Characters are runes, so multi-byte seeds are never split.
func clip(s string, n int) string {
	if n <= 2 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-2]) + ".."
}
