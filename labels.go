// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import (
	"maps"
	"slices"
	"strconv"
)

// labelSet tracks the names of a cover's input or output columns. A cover
// starts unlabeled and switches permanently to labeled mode the first time a
// name is attached; from then on every column has a name, generated ones
// included.
type labelSet struct {
	prefix  byte
	names   []string
	index   map[string]int
	labeled bool
}

func newLabelSet(prefix byte) labelSet {
	return labelSet{prefix: prefix}
}

func labelSetFrom(prefix byte, names []string) labelSet {
	s := labelSet{prefix: prefix, labeled: true, index: make(map[string]int, len(names))}
	for _, name := range names {
		s.names = append(s.names, name)
		s.index[name] = len(s.names) - 1
	}
	return s
}

func (s *labelSet) isLabeled() bool { return s.labeled }

func (s *labelSet) len() int { return len(s.names) }

// slice returns the column names in order. Unlabeled sets have none.
func (s *labelSet) slice() []string { return s.names }

func (s *labelSet) position(name string) (int, bool) {
	if s.index == nil {
		return 0, false
	}
	pos, ok := s.index[name]
	return pos, ok
}

// add attaches name to the next column, backfilling generated names for any
// earlier unnamed column first. Adding any name flips the set to labeled
// mode for good.
func (s *labelSet) add(name string, upto int) {
	s.labeled = true
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.backfill(upto)
	s.names = append(s.names, name)
	s.index[name] = len(s.names) - 1
}

// materialize switches a set with existing columns to labeled mode and
// names them, so that later lookups see the generated names. A set with no
// columns stays unlabeled.
func (s *labelSet) materialize(upto int) {
	if upto == 0 {
		return
	}
	s.labeled = true
	s.backfill(upto)
}

// backfill generates names for columns up to (excluding) upto. A generated
// name already claimed by an explicit label is skipped in favour of the next
// free one.
func (s *labelSet) backfill(upto int) {
	if !s.labeled {
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	next := len(s.names)
	for len(s.names) < upto {
		name := string(s.prefix) + strconv.Itoa(next)
		next++
		if _, taken := s.index[name]; taken {
			continue
		}
		s.names = append(s.names, name)
		s.index[name] = len(s.names) - 1
	}
}

// clone returns an independent copy sharing no storage.
func (s *labelSet) clone() labelSet {
	return labelSet{
		prefix:  s.prefix,
		names:   slices.Clone(s.names),
		index:   maps.Clone(s.index),
		labeled: s.labeled,
	}
}

// generated returns the display name of column pos without switching modes:
// the stored label when there is one, a prefixed index otherwise.
func (s *labelSet) generated(pos int) string {
	if pos < len(s.names) {
		return s.names[pos]
	}
	return string(s.prefix) + strconv.Itoa(pos)
}
