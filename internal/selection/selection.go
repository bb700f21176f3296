// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package selection turns operator input such as "1, Z3, matrix" into
// positions of a displayed movie list.
package selection

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/autobrr/radarr-cleanup/internal/types"
)

// Set holds 0-based list positions. Only membership is meaningful.
type Set map[int]struct{}

// Contains reports whether position i was selected
func (s Set) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Positions returns the selected positions in ascending order
func (s Set) Positions() []int {
	positions := lo.Keys(s)
	sort.Ints(positions)
	return positions
}

// Split breaks a comma-separated input line into raw tokens
func Split(input string) []string {
	return strings.Split(input, ",")
}

// Parse resolves tokens against movies. A token is either a 1-based index,
// optionally carrying prefix, or a case-insensitive title substring.
// Out-of-range indices and tokens matching nothing are ignored.
func Parse(tokens []string, movies []types.RadarrMovie, prefix string) Set {
	selected := make(Set)

	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		if prefix != "" && strings.HasPrefix(token, prefix) {
			if idx, ok := parseIndex(strings.TrimPrefix(token, prefix)); ok {
				addIndex(selected, idx, len(movies))
				continue
			}
		}

		if idx, ok := parseIndex(token); ok {
			addIndex(selected, idx, len(movies))
			continue
		}

		needle := strings.ToLower(token)
		for i, movie := range movies {
			if strings.Contains(strings.ToLower(movie.Title), needle) {
				selected[i] = struct{}{}
			}
		}
	}

	return selected
}

// Select returns the movies at the selected positions, in list order
func Select(movies []types.RadarrMovie, set Set) []types.RadarrMovie {
	return lo.Filter(movies, func(_ types.RadarrMovie, i int) bool {
		return set.Contains(i)
	})
}

// Exclude returns the movies not at the selected positions, in list order
func Exclude(movies []types.RadarrMovie, set Set) []types.RadarrMovie {
	return lo.Reject(movies, func(_ types.RadarrMovie, i int) bool {
		return set.Contains(i)
	})
}

// parseIndex reports whether s is made of ASCII digits only, so "+1", "-1"
// and "1.0" fall through to title matching. Values too large for an int
// come back as 0 and are dropped by the bounds check.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true
	}
	return n, true
}

func addIndex(set Set, idx, length int) {
	if idx >= 1 && idx <= length {
		set[idx-1] = struct{}{}
	}
}
