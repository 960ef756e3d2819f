// SPDX-License-Identifier: MIT
//
// File: nodeid.go
// Role: NodeID - a comparable identifier that is either textual or integer-valued.
// Determinism:
//   - Less() defines a total order: integer IDs first (numeric asc), then string IDs (lex asc).
// AI-HINT (file):
//   - StrID("1") and IntID(1) are DIFFERENT vertices; equality compares kind and value.
//   - NodeID is a plain value type; use it directly as a map key.

package core

import (
	"sort"
	"strconv"
)

// IDKind tags which variant a NodeID carries.
type IDKind uint8

const (
	// KindInvalid is the zero kind; a zero NodeID never names a vertex.
	KindInvalid IDKind = iota
	// KindString marks a textual identifier.
	KindString
	// KindInt marks an integer identifier.
	KindInt
)

// NodeID identifies a vertex. The zero value is invalid.
type NodeID struct {
	kind IDKind
	str  string
	num  int64
}

// StrID returns a textual NodeID.
func StrID(s string) NodeID { return NodeID{kind: KindString, str: s} }

// IntID returns an integer NodeID.
func IntID(n int64) NodeID { return NodeID{kind: KindInt, num: n} }

// Kind reports the variant of id.
func (id NodeID) Kind() IDKind { return id.kind }

// Valid reports whether id names a vertex: a string ID must be non-empty,
// an integer ID is always valid, the zero NodeID is not.
func (id NodeID) Valid() bool {
	switch id.kind {
	case KindString:
		return id.str != ""
	case KindInt:
		return true
	default:
		return false
	}
}

// Str returns the textual value and true if id is a string ID.
func (id NodeID) Str() (string, bool) { return id.str, id.kind == KindString }

// Int returns the integer value and true if id is an integer ID.
func (id NodeID) Int() (int64, bool) { return id.num, id.kind == KindInt }

// String renders id as a token: decimal for integers, verbatim for strings.
// Note that StrID("7") and IntID(7) render identically.
func (id NodeID) String() string {
	switch id.kind {
	case KindString:
		return id.str
	case KindInt:
		return strconv.FormatInt(id.num, 10)
	default:
		return "<invalid>"
	}
}

// Less orders NodeIDs by kind (invalid < int < string), then by value.
//
// Complexity: O(1) for integers, O(len) for strings.
func (id NodeID) Less(other NodeID) bool {
	if id.kind != other.kind {
		return kindRank(id.kind) < kindRank(other.kind)
	}
	if id.kind == KindInt {
		return id.num < other.num
	}

	return id.str < other.str
}

// kindRank places integers before strings so numeric IDs enumerate first.
func kindRank(k IDKind) int {
	switch k {
	case KindInt:
		return 1
	case KindString:
		return 2
	default:
		return 0
	}
}

// SortIDs sorts ids in place by Less.
func SortIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
