package tablediff

// editOp is one step of an edit script between two sequences.
type editOp int

const (
	opMatch editOp = iota
	opDelete
	opInsert
)

// edit pairs an operation with the source and/or target index it touches.
// src is valid for opMatch and opDelete, tgt for opMatch and opInsert.
type edit struct {
	op  editOp
	src int
	tgt int
}

// editScript computes a minimal edit script between a source sequence of
// length m and a target sequence of length n under the given equality
// predicate, via dynamic-programming longest common subsequence. Deletions
// are emitted before insertions at the same position, so a changed element
// always appears as a delete immediately followed by an insert.
func editScript(m, n int, eq func(i, j int) bool) []edit {
	// lcs[i][j] = length of the LCS of source[i:] and target[j:].
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if eq(i, j) {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	script := make([]edit, 0, m+n)
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case eq(i, j):
			script = append(script, edit{op: opMatch, src: i, tgt: j})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			script = append(script, edit{op: opDelete, src: i})
			i++
		default:
			script = append(script, edit{op: opInsert, tgt: j})
			j++
		}
	}
	for ; i < m; i++ {
		script = append(script, edit{op: opDelete, src: i})
	}
	for ; j < n; j++ {
		script = append(script, edit{op: opInsert, tgt: j})
	}
	return script
}
