package game

import "wordheist/internal/domain"

// NextHint returns the first word neither found nor already revealed, scanning
// buckets from the shortest length up, each in stored order. The mystery word
// takes part in the scan.
func NextHint(p *domain.Puzzle, prog *domain.Progress) (string, bool) {
	for _, length := range p.ValidWords.Lengths() {
		for _, w := range p.ValidWords[length] {
			if prog == nil || (!prog.HasFound(w) && !prog.HasRevealed(w)) {
				return w, true
			}
		}
	}
	return "", false
}
