package schedule

// All entries sharing a title are one course: editing or deleting a
// course acts on the whole group. Two distinct courses cannot share a
// title.

// GroupByTitle returns every entry whose title equals title, in store
// order. Used to seed the editor's multi-row buffer and to compute the
// target set for "delete all similar".
func GroupByTitle(entries []Entry, title string) []Entry {
	var group []Entry
	for _, e := range entries {
		if e.Title == title {
			group = append(group, e)
		}
	}
	return group
}

// PositionsByTitle returns the store positions of every entry whose
// title equals title, ascending.
func PositionsByTitle(entries []Entry, title string) []int {
	var positions []int
	for i, e := range entries {
		if e.Title == title {
			positions = append(positions, i)
		}
	}
	return positions
}
