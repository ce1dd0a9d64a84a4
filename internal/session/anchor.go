package session

// Selection describes the document selection as seen from the cursor.
// Start is the end opposite the cursor; Length is the selected character count.
type Selection struct {
	Start  int
	Length int
}

// ResolveStartOffset picks the offset the next search starts from.
//
// Without a selection the anchor is the cursor. With one, a previously
// recorded anchor is kept while the selection still ends at
// prev+Length; otherwise the anchor is the earlier of the cursor and the
// selection start, so typing more of a query re-matches from the current
// match instead of skipping past it.
//
// sel and prev are optional.
func ResolveStartOffset(cursor int, sel *Selection, prev *int) int {
	if sel == nil {
		return cursor
	}
	end := max(cursor, sel.Start)
	if prev != nil && end == *prev+sel.Length {
		return *prev
	}
	return min(cursor, sel.Start)
}
