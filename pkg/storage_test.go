package pkg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"tiktok-downloader-api/config"
)

func TestMediaSaverSave(t *testing.T) {
	payload := "not really an mp4"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer server.Close()

	dir := t.TempDir()
	saver := NewMediaSaver(config.Config{StoragePath: dir}, server.Client(), zap.NewNop().Sugar())

	path, err := saver.Save(context.Background(), server.URL+"/video.mp4")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("saved to %q, want a file under %q", path, dir)
	}
	if !strings.HasSuffix(path, ".mp4") {
		t.Errorf("saved file %q lacks the .mp4 suffix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != payload {
		t.Errorf("saved contents = %q, want %q", data, payload)
	}
}

func TestMediaSaverUniquePaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	saver := NewMediaSaver(config.Config{StoragePath: t.TempDir()}, server.Client(), zap.NewNop().Sugar())

	first, err := saver.Save(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := saver.Save(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first == second {
		t.Errorf("two saves produced the same path %q", first)
	}
}

func TestMediaSaverBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	saver := NewMediaSaver(config.Config{StoragePath: t.TempDir()}, server.Client(), zap.NewNop().Sugar())

	if _, err := saver.Save(context.Background(), server.URL); err == nil {
		t.Fatal("expected error on non-200 media response")
	}
}
