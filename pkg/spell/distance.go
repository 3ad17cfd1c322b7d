package spell

// Distance computes the Damerau–Levenshtein edit distance between a and b:
// insertions, deletions, substitutions and adjacent transpositions all
// cost 1. This is the strict distance used by Correct.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if t := prev2[j-2] + 1; t < curr[j] {
					curr[j] = t // adjacent transposition
				}
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

// WeightedDistance is the secondary, discounted edit distance: a
// substitution between keyboard-adjacent or phonetically similar
// characters costs 0.5 instead of 1. It backs typo-likelihood queries and
// suggestion lists only; Correct always uses the strict Distance.
func WeightedDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return float64(lb)
	}
	if lb == 0 {
		return float64(la)
	}

	prev2 := make([]float64, lb+1)
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= la; i++ {
		curr[0] = float64(i)
		for j := 1; j <= lb; j++ {
			var cost float64
			switch {
			case a[i-1] == b[j-1]:
				cost = 0
			case similarChars(a[i-1], b[j-1]):
				cost = 0.5
			default:
				cost = 1
			}
			curr[j] = minFloat(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if t := prev2[j-2] + 1; t < curr[j] {
					curr[j] = t
				}
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

// keyboardNeighbors maps each key to the keys physically adjacent on a
// QWERTY layout.
var keyboardNeighbors = map[byte]string{
	'q': "wa", 'w': "qeas", 'e': "wrds", 'r': "etdf", 't': "ryfg",
	'y': "tugh", 'u': "yihj", 'i': "uojk", 'o': "ipkl", 'p': "ol",
	'a': "qwsz", 's': "awedzx", 'd': "serfxc", 'f': "drtgcv",
	'g': "ftyhvb", 'h': "gyujbn", 'j': "huiknm", 'k': "jiolm",
	'l': "kop", 'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb",
	'b': "vghn", 'n': "bhjm", 'm': "njk",
}

// phoneticGroups are characters commonly swapped for sounding alike.
var phoneticGroups = []string{"ckq", "sz", "fv", "dt", "mn", "bp", "gj", "iy"}

func similarChars(x, y byte) bool {
	if neighbors, ok := keyboardNeighbors[x]; ok {
		for i := 0; i < len(neighbors); i++ {
			if neighbors[i] == y {
				return true
			}
		}
	}
	for _, group := range phoneticGroups {
		inX, inY := false, false
		for i := 0; i < len(group); i++ {
			if group[i] == x {
				inX = true
			}
			if group[i] == y {
				inY = true
			}
		}
		if inX && inY {
			return true
		}
	}
	return false
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func minFloat(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
