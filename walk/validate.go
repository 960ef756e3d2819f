// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
	"github.com/katalvlaran/metawalk/metapath"
)

// ValidateParams checks run arguments in order nodes, n, length, metapaths,
// seed and returns the first violation as a *ParamError.
//
//   - nodes must be non-nil (an empty list is valid) and hold valid IDs;
//   - n and length must be positive;
//   - metapaths must be a non-empty list, each passing metapath.Validate
//     (≥ 2 non-empty labels, first == last);
//   - seed must be nil or non-negative.
//
// Complexity: O(len(nodes) + Σ len(metapath)).
func ValidateParams(nodes []core.NodeID, n, length int, metapaths []metapath.Metapath, seed *int64) error {
	if nodes == nil {
		return &ParamError{Param: "nodes", Reason: "must be a list of node IDs, got nil"}
	}
	for i, id := range nodes {
		if !id.Valid() {
			return &ParamError{Param: "nodes", Reason: fmt.Sprintf("element %d", i), Err: core.ErrInvalidNodeID}
		}
	}
	if n <= 0 {
		return &ParamError{Param: "n", Reason: fmt.Sprintf("must be a positive integer, got %d", n)}
	}
	if length <= 0 {
		return &ParamError{Param: "length", Reason: fmt.Sprintf("must be a positive integer, got %d", length)}
	}
	if len(metapaths) == 0 {
		return &ParamError{Param: "metapaths", Reason: "must be a non-empty list of metapaths"}
	}
	for i, m := range metapaths {
		if err := m.Validate(); err != nil {
			return &ParamError{Param: "metapaths", Reason: fmt.Sprintf("metapath %d", i), Err: err}
		}
	}
	if seed != nil && *seed < 0 {
		return &ParamError{Param: "seed", Reason: fmt.Sprintf("must be a non-negative integer or nil, got %d", *seed)}
	}

	return nil
}
