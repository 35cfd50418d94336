package dategroup

import "tableflip.dev/daylist/pkg/listmodel"

type editOp int

const (
	editKeep editOp = iota
	editDelete
	editInsert
)

// edit is one step of a script turning the old key sequence into the new
// one. Keep uses both indexes, delete only Old, insert only New.
type edit struct {
	Op  editOp
	Old int
	New int
}

// diffKeys returns a shortest edit script from a to b. The shared prefix
// and suffix are matched directly; only the region between them is searched.
func diffKeys(a, b []string) []edit {
	n, m := len(a), len(b)
	pre := 0
	for pre < n && pre < m && a[pre] == b[pre] {
		pre++
	}
	suf := 0
	for suf < n-pre && suf < m-pre && a[n-1-suf] == b[m-1-suf] {
		suf++
	}

	script := make([]edit, 0, max(n, m)+2)
	for i := 0; i < pre; i++ {
		script = append(script, edit{Op: editKeep, Old: i, New: i})
	}
	script = append(script, myers(a[pre:n-suf], b[pre:m-suf], pre)...)
	for i := 0; i < suf; i++ {
		script = append(script, edit{Op: editKeep, Old: n - suf + i, New: m - suf + i})
	}
	return script
}

// myers implements the greedy O((N+M)D) algorithm from "An O(ND) Difference
// Algorithm and Its Variations". Indexes in the result are shifted by base.
func myers(a, b []string, base int) []edit {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		out := make([]edit, m)
		for i := range out {
			out[i] = edit{Op: editInsert, New: base + i}
		}
		return out
	case m == 0:
		out := make([]edit, n)
		for i := range out {
			out[i] = edit{Op: editDelete, Old: base + i}
		}
		return out
	}

	limit := n + m
	off := limit + 1
	v := make([]int, 2*limit+3)
	// trace[d] holds v[-d-1..d+1] as it was before round d.
	var trace [][]int

	for d := 0; d <= limit; d++ {
		trace = append(trace, append([]int(nil), v[off-d-1:off+d+2]...))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				return backtrack(trace, n, m, base)
			}
		}
	}
	panic("dategroup: diff did not converge")
}

func backtrack(trace [][]int, n, m, base int) []edit {
	var rev []edit
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		snap := trace[d]
		at := func(k int) int { return snap[k+d+1] }
		k := x - y
		var prevK int
		if k == -d || (k != d && at(k-1) < at(k+1)) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := at(prevK)
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, edit{Op: editKeep, Old: base + x, New: base + y})
		}
		if d > 0 {
			if x == prevX {
				rev = append(rev, edit{Op: editInsert, New: base + prevY})
			} else {
				rev = append(rev, edit{Op: editDelete, Old: base + prevX})
			}
		}
		x, y = prevX, prevY
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func keysOf(rows []Row) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key()
	}
	return keys
}

// converge edits model until it holds exactly next. Rows whose key is kept
// but whose content differs are replaced in place; runs of removals and
// insertions between kept rows become single ranged calls.
func converge(model *listmodel.Model[Row], next []Row) {
	cur := model.Items()
	script := diffKeys(keysOf(cur), keysOf(next))

	pos := 0
	removals := 0
	var inserts []Row
	flush := func() {
		if removals > 0 {
			model.Remove(pos, removals)
			removals = 0
		}
		if len(inserts) > 0 {
			model.Insert(pos, inserts...)
			pos += len(inserts)
			inserts = nil
		}
	}
	for _, e := range script {
		switch e.Op {
		case editKeep:
			flush()
			if !cur[e.Old].Equal(next[e.New]) {
				model.Set(pos, next[e.New])
			}
			pos++
		case editDelete:
			removals++
		case editInsert:
			inserts = append(inserts, next[e.New])
		}
	}
	flush()
}
