package fuzzy

// maxPatternLen is the longest pattern a single bit-parallel pass handles.
// Longer patterns are split into chunks of this size.
const maxPatternLen = 64

// pattern is a compiled Bitap (Wu-Manber shift-and) pattern.
type pattern struct {
	runes []rune
	masks map[rune]uint64
}

func compile(runes []rune) pattern {
	masks := make(map[rune]uint64, len(runes))
	for i, r := range runes {
		masks[r] |= 1 << uint(i)
	}
	return pattern{runes: runes, masks: masks}
}

// compileChunks compiles p, split into chunks of at most maxPatternLen runes.
func compileChunks(p []rune) []pattern {
	var chunks []pattern
	for len(p) > maxPatternLen {
		chunks = append(chunks, compile(p[:maxPatternLen]))
		p = p[maxPatternLen:]
	}
	if len(p) > 0 {
		chunks = append(chunks, compile(p))
	}
	return chunks
}

// minErrors returns the smallest edit distance (insertions, deletions and
// substitutions) between the pattern and any substring of text, provided it
// does not exceed maxErrors.
func (p pattern) minErrors(text []rune, maxErrors int) (int, bool) {
	m := len(p.runes)
	if m == 0 {
		return 0, true
	}
	// m errors would match any text.
	if maxErrors >= m {
		maxErrors = m - 1
	}
	if maxErrors < 0 {
		return 0, false
	}

	// r[d] bit j is set when pattern[0..j] matches a suffix of the text
	// read so far with at most d errors.
	r := make([]uint64, maxErrors+1)
	for d := range r {
		r[d] = (1 << uint(d)) - 1
	}
	found := uint64(1) << uint(m-1)
	best := -1

	for _, c := range text {
		mask := p.masks[c]
		prev := r[0]
		r[0] = ((r[0] << 1) | 1) & mask
		for d := 1; d <= maxErrors; d++ {
			old := r[d]
			r[d] = (((old << 1) | 1) & mask) | // match
				((prev << 1) | 1) | // substitution
				prev | // insertion
				((r[d-1] << 1) | 1) // deletion
			prev = old
		}

		for d := 0; d <= maxErrors; d++ {
			if r[d]&found != 0 {
				best = d
				break
			}
		}
		if best == 0 {
			return 0, true
		}
		if best > 0 {
			// Only a strictly better match is interesting from here on.
			maxErrors = best - 1
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}
