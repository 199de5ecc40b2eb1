// Package libdiff computes structural differences between SCL values.
package libdiff

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/scl-format/go-scl/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

// Change is a single difference at Path. From is nil for an Insert and To
// is nil for a Delete.
type Change struct {
	Path string
	Op   Op
	From *ir.Value
	To   *ir.Value
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.To)
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.From)
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, c.From, c.To)
}

// Diff returns the changes turning from into to, in path order. It returns
// nil exactly when ir.Equal(from, to). A nil from is an Insert of to and a
// nil to is a Delete of from.
func Diff(from, to *ir.Value) []Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return []Change{{Path: "$", Op: Insert, To: to}}
	case to == nil:
		return []Change{{Path: "$", Op: Delete, From: from}}
	}
	return diff(nil, "$", from, to)
}

func diff(res []Change, path string, from, to *ir.Value) []Change {
	if from.Type() != to.Type() {
		return append(res, Change{Path: path, Op: Replace, From: from, To: to})
	}
	switch from.Type() {
	case ir.StructType:
		return diffStruct(res, path, from, to)
	case ir.ListType:
		return diffList(res, path, from, to)
	}
	if ir.Equal(from, to) {
		return res
	}
	return append(res, Change{Path: path, Op: Replace, From: from, To: to})
}

func keyPath(path string, k ir.Id) string {
	return path + "." + k.String()
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func diffStruct(res []Change, path string, from, to *ir.Value) []Change {
	for k, fv := range from.Entries() {
		tv, ok := to.Get(k)
		if !ok {
			res = append(res, Change{Path: keyPath(path, k), Op: Delete, From: fv})
			continue
		}
		res = diff(res, keyPath(path, k), fv, tv)
	}
	for k, tv := range to.Entries() {
		if _, ok := from.Get(k); ok {
			continue
		}
		res = append(res, Change{Path: keyPath(path, k), Op: Insert, To: tv})
	}
	return res
}

// diffList aligns the items of two lists by equality class and reports
// unmatched items. A run of deletions directly followed by a run of
// insertions is paired item by item into recursive diffs; the remainder of
// the longer run is reported as is. Deleted items carry their index in
// from, all others their index in to.
func diffList(res []Change, path string, from, to *ir.Value) []Change {
	classes := &classTable{}
	fromRunes := classes.runes(from)
	toRunes := classes.runes(to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		n := utf8.RuneCountInString(diffs[i].Text)
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Change{Path: indexPath(path, ti), Op: Insert, To: to.Index(ti)})
				ti++
			}
		case diffpatch.DiffDelete:
			m := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				m = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			for j := range max(n, m) {
				switch {
				case j < n && j < m:
					res = diff(res, indexPath(path, ti), from.Index(fi), to.Index(ti))
					fi++
					ti++
				case j < n:
					res = append(res, Change{Path: indexPath(path, fi), Op: Delete, From: from.Index(fi)})
					fi++
				default:
					res = append(res, Change{Path: indexPath(path, ti), Op: Insert, To: to.Index(ti)})
					ti++
				}
			}
		}
	}
	return res
}

type class struct {
	v *ir.Value
	r rune
}

// classTable assigns one rune per equality class of values.
type classTable struct {
	byHash map[uint64][]class
	next   rune
}

func (t *classTable) runes(list *ir.Value) []rune {
	if t.byHash == nil {
		t.byHash = map[uint64][]class{}
		t.next = 1
	}
	res := make([]rune, 0, list.Len())
	for _, item := range list.Items() {
		res = append(res, t.rune(item))
	}
	return res
}

func (t *classTable) rune(v *ir.Value) rune {
	h := v.Hash()
	for _, c := range t.byHash[h] {
		if ir.Equal(c.v, v) {
			return c.r
		}
	}
	r := t.next
	t.next++
	t.byHash[h] = append(t.byHash[h], class{v: v, r: r})
	return r
}
