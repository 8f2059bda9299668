package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"assistive-vision/internal/domain/entity"
)

func TestFetchLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("tench\ngoldfish\r\ngreat white shark\n"))
	}))
	defer srv.Close()

	labels, err := FetchLabels(context.Background(), srv.URL, time.Second)
	require.NoError(t, err)
	require.Equal(t, []string{"tench", "goldfish", "great white shark"}, labels)
}

func TestFetchLabels_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchLabels(context.Background(), srv.URL, time.Second)
	require.Error(t, err)
}

func TestFetchLabels_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := FetchLabels(context.Background(), srv.URL, time.Second)
	require.Error(t, err)
}

func TestLoadLabelsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coco.names")
	require.NoError(t, os.WriteFile(path, []byte("person\nbicycle\ncar\n\n"), 0o644))

	labels, err := LoadLabelsFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"person", "bicycle", "car"}, labels)

	_, err = LoadLabelsFile(filepath.Join(t.TempDir(), "missing.names"))
	require.Error(t, err)
}

func TestPlaceholderLabels(t *testing.T) {
	labels := PlaceholderLabels()
	require.Len(t, labels, 1000)
	require.Equal(t, "Unknown Scene", labels[999])
}

func TestTopLabel(t *testing.T) {
	labels := []string{"kitchen", "street", "office"}

	require.Equal(t, "street", TopLabel([]float32{0.1, 2.5, -1}, labels))
	require.Equal(t, entity.UnknownScene, TopLabel([]float32{0.1, 0.2, 0.3, 0.9}, labels))
	require.Equal(t, entity.UnknownScene, TopLabel(nil, labels))
}
