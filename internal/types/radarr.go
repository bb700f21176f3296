// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package types

// RadarrMovie represents a movie from Radarr's movie endpoint.
// Records are passed through as received and never modified locally.
type RadarrMovie struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"originalTitle,omitempty"`
	Year          int    `json:"year"`
	Runtime       int    `json:"runtime"` // minutes, 0 when metadata is missing
	TmdbId        int    `json:"tmdbId"`
	ImdbId        string `json:"imdbId,omitempty"`
	HasFile       bool   `json:"hasFile"`
	Path          string `json:"path,omitempty"`
	SizeOnDisk    int64  `json:"sizeOnDisk"`
}

// RadarrImportListExclusion is the request body for registering an import exclusion
type RadarrImportListExclusion struct {
	TmdbId     int    `json:"tmdbId"`
	MovieTitle string `json:"movieTitle"`
	MovieYear  int    `json:"movieYear"`
}

// NewImportListExclusion builds the exclusion body for a movie
func NewImportListExclusion(movie RadarrMovie) RadarrImportListExclusion {
	return RadarrImportListExclusion{
		TmdbId:     movie.TmdbId,
		MovieTitle: movie.Title,
		MovieYear:  movie.Year,
	}
}
