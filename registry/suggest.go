// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"cmp"
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// SuggestThreshold is the minimum similarity, in [0, 1], that a
// registered name must have to the looked-up name to be suggested.
var SuggestThreshold = 0.5

// Suggest returns up to n registered names of the given kind that are
// most similar to the given (typically misspelled) name, best first,
// for "did you mean" messages when [Registry.Find] fails.
func (r *Registry) Suggest(kind Kinds, name string, n int) []string {
	if kind < 0 || kind >= KindsN || n <= 0 {
		return nil
	}
	type scored struct {
		name  string
		score float64
	}
	lev := metrics.NewLevenshtein()
	var sc []scored
	for _, o := range r.lists[kind] {
		s := strutil.Similarity(name, o.name, lev)
		if s >= SuggestThreshold {
			sc = append(sc, scored{o.name, s})
		}
	}
	// stable keeps name order among equal scores
	slices.SortStableFunc(sc, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	if len(sc) > n {
		sc = sc[:n]
	}
	nms := make([]string, len(sc))
	for i, s := range sc {
		nms[i] = s.name
	}
	return nms
}
