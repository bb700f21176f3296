// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package radarr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autobrr/radarr-cleanup/internal/types"
)

func TestGetMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/movie", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"A","year":2001,"runtime":0,"tmdbId":11,"sizeOnDisk":1024},
			{"id":2,"title":"B","year":2002,"runtime":30,"tmdbId":22}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret")
	movies, err := client.GetMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, types.RadarrMovie{ID: 1, Title: "A", Year: 2001, Runtime: 0, TmdbId: 11, SizeOnDisk: 1024}, movies[0])
	assert.Equal(t, 30, movies[1].Runtime)
}

func TestGetMoviesErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "bad").GetMovies(context.Background())
		require.Error(t, err)

		var radarrErr *ErrRadarr
		require.True(t, errors.As(err, &radarrErr))
		assert.Equal(t, "get_movies", radarrErr.Op)
		assert.Equal(t, http.StatusUnauthorized, radarrErr.HttpCode)
		assert.Equal(t, "radarr get_movies: server returned Unauthorized (401)", err.Error())
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "key").GetMovies(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse response")
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewClient(url, "key").GetMovies(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to make request")
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := NewClient("http://localhost:7878", "").GetMovies(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
	})
}

func TestDeleteMovie(t *testing.T) {
	var gotPath, gotMethod string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewClient(server.URL, "key").DeleteMovie(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v3/movie/42", gotPath)
	assert.Equal(t, []string{"true"}, gotQuery["deleteFiles"])
	assert.Equal(t, []string{"false"}, gotQuery["addImportExclusion"])
}

func TestDeleteMovieNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	err := NewClient(server.URL, "key").DeleteMovie(context.Background(), 7)

	var radarrErr *ErrRadarr
	require.True(t, errors.As(err, &radarrErr))
	assert.Equal(t, "delete_movie", radarrErr.Op)
	assert.Equal(t, http.StatusNotFound, radarrErr.HttpCode)
}

func TestAddImportExclusion(t *testing.T) {
	var got types.RadarrImportListExclusion

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/importlistexclusion", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	movie := types.RadarrMovie{ID: 3, Title: "Short Film", Year: 1999, TmdbId: 603}
	err := NewClient(server.URL, "key").AddImportExclusion(context.Background(), movie)
	require.NoError(t, err)

	assert.Equal(t, types.RadarrImportListExclusion{TmdbId: 603, MovieTitle: "Short Film", MovieYear: 1999}, got)
}
