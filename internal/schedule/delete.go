package schedule

// DeleteOne removes exactly the entry at pos. Reports whether an entry
// was removed.
func DeleteOne(s *Store, pos int) bool {
	if pos < 0 || pos >= s.Len() {
		return false
	}
	s.RemoveAt(pos)
	return true
}

// DeleteAllSimilar resolves the entry at pos to its title and removes
// every entry sharing that title. Positions are removed highest first
// so the earlier indices stay valid while removing. Returns the number
// of entries removed.
func DeleteAllSimilar(s *Store, pos int) int {
	target, ok := s.At(pos)
	if !ok {
		return 0
	}
	positions := PositionsByTitle(s.All(), target.Title)
	for i := len(positions) - 1; i >= 0; i-- {
		s.RemoveAt(positions[i])
	}
	return len(positions)
}
