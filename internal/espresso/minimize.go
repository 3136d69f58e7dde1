// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espresso

import (
	"slices"
	"sort"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// Minimize runs the heuristic loop on the partition (f, d, r) and returns
// fresh F', D', R' covers, each holding its own reference on the instance.
// A nil d stands for an empty don't-care set; a nil r is computed as the
// complement of f union d. The input covers are left untouched.
func (e *Espresso) Minimize(f, d, r *Cover) (*Cover, *Cover, *Cover, error) {
	return e.run(f, d, r, false)
}

// MinimizeExact is the strongest setting of the same loop: it keeps
// iterating while rounds still shrink the cover. The primes it returns are
// irredundant but not guaranteed minimum.
func (e *Espresso) MinimizeExact(f, d, r *Cover) (*Cover, *Cover, *Cover, error) {
	return e.run(f, d, r, true)
}

func (e *Espresso) run(f, d, r *Cover, exact bool) (*Cover, *Cover, *Cover, error) {
	for _, c := range []*Cover{f, d, r} {
		if c == nil {
			continue
		}
		if c.stale(e.inst) {
			return nil, nil, nil, ErrStaleCover
		}
	}
	var fc, dc, rc []cube
	if f != nil {
		fc = cloneCubes(f.cubes)
	}
	if d != nil {
		dc = cloneCubes(d.cubes)
	}
	if r != nil {
		rc = cloneCubes(r.cubes)
	} else {
		rc = complementCover(append(cloneCubes(fc), dc...), e.inst.numInputs, e.inst.numOutputs)
	}

	cfg := e.inst.config
	if exact {
		cfg.SingleExpand = false
		cfg.UseSuperGasp = true
	}
	before := len(fc)
	fc = minimizeCubes(fc, dc, rc, cfg)
	if cfg.Summary {
		log.WithFields(log.Fields{"before": before, "after": len(fc)}).
			Info("espresso: minimization done")
	}
	return newCover(e.inst, fc), newCover(e.inst, dc), newCover(e.inst, rc), nil
}

// minimizeCubes is the reduction loop: expand the on-set against the
// off-set, drop contained cubes, set the essential primes aside as
// don't-cares, make the rest irredundant, and optionally repeat.
func minimizeCubes(f, d, r []cube, cfg Config) []cube {
	round := func(f []cube, d []cube) []cube {
		f = contain(expand(f, r, cfg))
		if cfg.ForceIrredundant {
			f = irredundant(f, d)
		}
		return f
	}

	f = contain(expand(f, r, cfg))
	if cfg.Trace {
		log.WithField("cubes", len(f)).Trace("espresso: expanded")
	}

	var essential []cube
	if cfg.RemoveEssential {
		essential, f = splitEssential(f, d)
		d = append(slices.Clone(d), essential...)
		if cfg.Trace {
			log.WithField("cubes", len(essential)).Trace("espresso: essential primes")
		}
	}

	if cfg.ForceIrredundant {
		f = irredundant(f, d)
	}
	if !cfg.SingleExpand {
		f = round(f, d)
	}
	if cfg.UseSuperGasp {
		for {
			n := len(f)
			f = round(f, d)
			if len(f) >= n {
				break
			}
		}
	}
	return append(essential, f...)
}

// expand raises each literal of each cube to don't-care when the grown cube
// still avoids the off-set. Widest cubes go first so that containment can
// absorb the rest, unless UseRandomOrder keeps the insertion order.
func expand(f, r []cube, cfg Config) []cube {
	out := cloneCubes(f)
	if !cfg.UseRandomOrder {
		sort.SliceStable(out, func(i, j int) bool {
			return freeCount(out[i].in) > freeCount(out[j].in)
		})
	}
	for i := range out {
		in := out[i].in
		for pos := range in {
			if in[pos] == DC {
				continue
			}
			saved := in[pos]
			in[pos] = DC
			if intersectsAny(in, out[i].out, r) {
				in[pos] = saved
			}
		}
	}
	return out
}

// contain removes every cube covered by another single cube. Of two
// identical cubes the earlier one survives.
func contain(f []cube) []cube {
	out := f[:0:0]
	for i, c := range f {
		covered := false
		for j, q := range f {
			if i == j || !cubeContains(q, c) {
				continue
			}
			if cubeContains(c, q) && j > i {
				continue
			}
			covered = true
			break
		}
		if !covered {
			out = append(out, c)
		}
	}
	return out
}

// splitEssential separates the primes that no combination of the other
// cubes and the don't-care set can replace.
func splitEssential(f, d []cube) (essential, rest []cube) {
	for i, c := range f {
		others := make([]cube, 0, len(f)-1)
		others = append(others, f[:i]...)
		others = append(others, f[i+1:]...)
		if coveredBy(c, others, d) {
			rest = append(rest, c)
		} else {
			essential = append(essential, c)
		}
	}
	return essential, rest
}

// irredundant removes cubes that the rest of the on-set plus the don't-care
// set already cover, rechecking against the survivors as it goes.
func irredundant(f, d []cube) []cube {
	keep := make([]bool, len(f))
	for i := range keep {
		keep[i] = true
	}
	for i, c := range f {
		others := make([]cube, 0, len(f)-1)
		for j, q := range f {
			if j != i && keep[j] {
				others = append(others, q)
			}
		}
		if coveredBy(c, others, d) {
			keep[i] = false
		}
	}
	out := f[:0:0]
	for i, c := range f {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}

// coveredBy reports whether every minterm of c is covered, for each output
// it asserts, by the cubes asserting that output.
func coveredBy(c cube, f, d []cube) bool {
	for o, ok := c.out.NextSet(0); ok; o, ok = c.out.NextSet(o + 1) {
		var rows [][]byte
		for _, q := range f {
			if !q.out.Test(o) {
				continue
			}
			if row, compatible := cofactorAgainst(q.in, c.in); compatible {
				rows = append(rows, row)
			}
		}
		for _, q := range d {
			if !q.out.Test(o) {
				continue
			}
			if row, compatible := cofactorAgainst(q.in, c.in); compatible {
				rows = append(rows, row)
			}
		}
		if !tautology(rows) {
			return false
		}
	}
	return true
}

// tautology reports whether the rows cover the whole input space, by
// recursive Shannon cofactoring on the first bound column.
func tautology(rows [][]byte) bool {
	for _, row := range rows {
		if allDC(row) {
			return true
		}
	}
	col := firstBound(rows)
	if col < 0 {
		return false
	}
	return tautology(cofactorCol(rows, col, Zero)) &&
		tautology(cofactorCol(rows, col, One))
}

// complementCover builds the off-set of a cube list, one output at a time.
func complementCover(onset []cube, numInputs, numOutputs int) []cube {
	var out []cube
	for o := 0; o < numOutputs; o++ {
		var rows [][]byte
		for _, c := range onset {
			if c.out.Test(uint(o)) {
				rows = append(rows, c.in)
			}
		}
		for _, row := range complementRows(rows, numInputs) {
			mask := bitset.New(uint(numOutputs))
			mask.Set(uint(o))
			out = append(out, cube{in: row, out: mask})
		}
	}
	return out
}

// complementRows computes the complement of a single-output cube list over
// numInputs columns.
func complementRows(rows [][]byte, numInputs int) [][]byte {
	for _, row := range rows {
		if allDC(row) {
			return nil
		}
	}
	if len(rows) == 0 {
		universe := make([]byte, numInputs)
		for i := range universe {
			universe[i] = DC
		}
		return [][]byte{universe}
	}
	col := firstBound(rows)
	var out [][]byte
	for _, row := range complementRows(cofactorCol(rows, col, Zero), numInputs) {
		row[col] = Zero
		out = append(out, row)
	}
	for _, row := range complementRows(cofactorCol(rows, col, One), numInputs) {
		row[col] = One
		out = append(out, row)
	}
	return out
}

// cofactorAgainst restricts q to the subspace of c: incompatible cubes drop
// out, and positions bound by c become free in the result.
func cofactorAgainst(q, c []byte) ([]byte, bool) {
	row := make([]byte, len(q))
	for i := range q {
		if c[i] == DC {
			row[i] = q[i]
			continue
		}
		if q[i] != DC && q[i] != c[i] {
			return nil, false
		}
		row[i] = DC
	}
	return row, true
}

// cofactorCol keeps the rows compatible with column col taking value v,
// freeing the column in the copies it returns.
func cofactorCol(rows [][]byte, col int, v byte) [][]byte {
	var out [][]byte
	for _, row := range rows {
		if row[col] != v && row[col] != DC {
			continue
		}
		c := slices.Clone(row)
		c[col] = DC
		out = append(out, c)
	}
	return out
}

// intersectsAny reports whether the cube (in, out) shares a minterm with
// any cube of r.
func intersectsAny(in []byte, out *bitset.BitSet, r []cube) bool {
	for _, q := range r {
		if out.IntersectionCardinality(q.out) == 0 {
			continue
		}
		if inputsCompatible(in, q.in) {
			return true
		}
	}
	return false
}

// inputsCompatible reports whether two input parts agree on every bound
// position.
func inputsCompatible(a, b []byte) bool {
	for i := range a {
		if a[i] != DC && b[i] != DC && a[i] != b[i] {
			return false
		}
	}
	return true
}

// cubeContains reports whether q covers c: q is freer on every input
// position and asserts at least c's outputs.
func cubeContains(q, c cube) bool {
	for i := range q.in {
		if q.in[i] != DC && q.in[i] != c.in[i] {
			return false
		}
	}
	return q.out.IsSuperSet(c.out)
}

func firstBound(rows [][]byte) int {
	for _, row := range rows {
		for j, v := range row {
			if v != DC {
				return j
			}
		}
	}
	return -1
}

func freeCount(in []byte) int {
	n := 0
	for _, v := range in {
		if v == DC {
			n++
		}
	}
	return n
}

func allDC(row []byte) bool {
	for _, v := range row {
		if v != DC {
			return false
		}
	}
	return true
}

func cloneCubes(cs []cube) []cube {
	out := make([]cube, len(cs))
	for i, c := range cs {
		out[i] = cube{in: slices.Clone(c.in), out: c.out.Clone()}
	}
	return out
}
