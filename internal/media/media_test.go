package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"askify/internal/config"
	"askify/internal/logger"
)

type fakeExecutor struct {
	lastName string
	lastArgs []string
	run      func(args []string) error
}

func (e *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	e.lastName = name
	e.lastArgs = args
	if e.run != nil {
		if err := e.run(args); err != nil {
			return "", err
		}
	}
	return "", nil
}

func TestCleanYouTubeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"no params", "https://youtube.com/watch?v=abc", "https://youtube.com/watch?v=abc"},
		{"timestamp param", "https://youtube.com/watch?v=abc&t=42s", "https://youtube.com/watch?v=abc"},
		{"share param", "https://youtu.be/abc&si=xyz", "https://youtu.be/abc"},
		{"multiple params", "https://youtube.com/watch?v=abc&t=42&si=xyz", "https://youtube.com/watch?v=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanYouTubeURL(tt.url); got != tt.want {
				t.Errorf("cleanYouTubeURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

// writeDownload mimics yt-dlp producing the mp4 the output template names.
func writeDownload(t *testing.T) func(args []string) error {
	t.Helper()
	return func(args []string) error {
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				path := strings.Replace(args[i+1], "%(ext)s", "mp4", 1)
				return os.WriteFile(path, []byte("mp4"), 0644)
			}
		}
		t.Fatal("no -o template in args")
		return nil
	}
}

func TestFromURL(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{run: writeDownload(t)}
	svc := New(config.PathsConfig{Downloads: dir}, exec, logger.New("error"))

	path, cleanup, err := svc.FromURL(context.Background(), "https://youtube.com/watch?v=abc&t=10")
	if err != nil {
		t.Fatalf("FromURL() error = %v", err)
	}
	defer cleanup()

	if exec.lastName != "yt-dlp" {
		t.Errorf("command = %q, want yt-dlp", exec.lastName)
	}

	args := strings.Join(exec.lastArgs, " ")
	if !strings.Contains(args, "--merge-output-format mp4") {
		t.Errorf("args missing merge format: %q", args)
	}
	if !strings.Contains(args, "--remux-video mp4") {
		t.Errorf("args missing remux for single-file downloads: %q", args)
	}
	if !strings.HasSuffix(args, "https://youtube.com/watch?v=abc") {
		t.Errorf("args should end with the cleaned URL: %q", args)
	}
	if filepath.Ext(path) != ".mp4" {
		t.Errorf("path = %q, want .mp4", path)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path dir = %q, want %q", filepath.Dir(path), dir)
	}
}

func TestFromURLMissingOutput(t *testing.T) {
	// yt-dlp exits zero but the expected mp4 is not there.
	svc := New(config.PathsConfig{Downloads: t.TempDir()}, &fakeExecutor{}, logger.New("error"))

	_, _, err := svc.FromURL(context.Background(), "https://youtube.com/watch?v=abc")
	if err == nil || !strings.Contains(err.Error(), "did not produce") {
		t.Fatalf("FromURL() error = %v, want missing-output error", err)
	}
}

func TestFromUpload(t *testing.T) {
	dir := t.TempDir()
	svc := New(config.PathsConfig{Uploads: dir}, &fakeExecutor{}, logger.New("error"))

	path, cleanup, err := svc.FromUpload(context.Background(), "lecture.mp4", strings.NewReader("video-data"))
	if err != nil {
		t.Fatalf("FromUpload() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved upload: %v", err)
	}
	if string(data) != "video-data" {
		t.Errorf("saved content = %q", data)
	}
	if !strings.HasSuffix(path, "_lecture.mp4") {
		t.Errorf("path = %q, want uuid-prefixed original name", path)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup should remove the saved upload")
	}
}

func TestFromUploadRejectsUnsupportedType(t *testing.T) {
	svc := New(config.PathsConfig{Uploads: t.TempDir()}, &fakeExecutor{}, logger.New("error"))

	_, _, err := svc.FromUpload(context.Background(), "notes.txt", strings.NewReader("x"))
	if err == nil {
		t.Error("expected error for unsupported extension")
	}
}
