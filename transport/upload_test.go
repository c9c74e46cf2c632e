package transport_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/wellbe/transport"
)

func TestUploadSendsImageFieldWithProgress(t *testing.T) {
	f := setupTestFixture(t)
	image := bytes.Repeat([]byte{0xFF, 0xD8, 0x01}, 50_000)

	f.mux.HandleFunc("/api/nutrition/analyze-image", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		require.Equal(t, "food_image.jpg", header.Filename)
		require.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, image, got)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": item{Name: "analysed"}})
	})

	var calls []int
	resp := transport.Upload[item](context.Background(), f.client, "/nutrition/analyze-image", bytes.NewReader(image), func(p int) {
		calls = append(calls, p)
	})

	require.True(t, resp.Success)
	require.Equal(t, "analysed", resp.Data.Name)
	require.NotEmpty(t, calls)
	require.Equal(t, 100, calls[len(calls)-1])
	for i := 1; i < len(calls); i++ {
		require.Greater(t, calls[i], calls[i-1])
	}
	for _, p := range calls {
		require.GreaterOrEqual(t, p, 0)
		require.LessOrEqual(t, p, 100)
	}
}

func TestUploadRetriesAfterRefresh(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.creds.Rotate(ctx, "stale", "refresh-1"))

	var hits atomic.Int32
	f.mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _, err := r.FormFile("image")
		require.NoError(t, err)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	f.mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "fresh", "refreshToken": "r2"})
	})

	resp := transport.Upload[item](ctx, f.client, "/upload", bytes.NewReader([]byte("jpeg")), nil)
	require.True(t, resp.Success)
	require.EqualValues(t, 2, hits.Load())
}

func TestUploadRequiresImage(t *testing.T) {
	f := setupTestFixture(t)
	resp := transport.Upload[item](context.Background(), f.client, "/upload", nil, nil)
	require.False(t, resp.Success)
}
