package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var supportedUploadExts = []string{".mp4", ".mov", ".mkv", ".webm"}

// FromURL downloads the highest quality MP4 from a video URL using yt-dlp
// and returns the local path plus a cleanup func.
func (s *implService) FromURL(ctx context.Context, rawURL string) (string, func(), error) {
	if err := os.MkdirAll(s.cfg.Downloads, 0755); err != nil {
		return "", nil, fmt.Errorf("create downloads dir: %w", err)
	}

	url := cleanYouTubeURL(rawURL)
	id := uuid.NewString()
	template := filepath.Join(s.cfg.Downloads, id+".%(ext)s")
	outputPath := filepath.Join(s.cfg.Downloads, id+".mp4")

	s.logger.Info(ctx, "Downloading video: %s", url)

	// --merge-output-format only applies to merged downloads; --remux-video
	// covers the single-file "best" fallback so the result is always mp4.
	args := []string{
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"--remux-video", "mp4",
		"-o", template,
		"--no-progress",
		url,
	}

	if _, err := s.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return "", nil, fmt.Errorf("download video with yt-dlp: %w", err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", nil, fmt.Errorf("yt-dlp did not produce %s: %w", outputPath, err)
	}

	s.logger.Info(ctx, "Video downloaded: %s", outputPath)
	return outputPath, s.cleanupFunc(outputPath), nil
}

// FromUpload persists an uploaded video stream and returns the local path
// plus a cleanup func. Only video extensions are accepted.
func (s *implService) FromUpload(ctx context.Context, name string, r io.Reader) (string, func(), error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !supportedExt(ext) {
		return "", nil, fmt.Errorf("unsupported upload type %q", ext)
	}

	if err := os.MkdirAll(s.cfg.Uploads, 0755); err != nil {
		return "", nil, fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(s.cfg.Uploads, uuid.NewString()+"_"+filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("close upload file: %w", err)
	}

	s.logger.Info(ctx, "Upload saved: %s", path)
	return path, s.cleanupFunc(path), nil
}

func (s *implService) cleanupFunc(path string) func() {
	return func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn(context.Background(), "Failed to cleanup media file %s: %v", path, err)
		}
	}
}

// cleanYouTubeURL returns the base video URL with tracking params
// (&t=, &si=, ...) removed.
func cleanYouTubeURL(url string) string {
	if i := strings.Index(url, "&"); i >= 0 {
		return url[:i]
	}
	return url
}

func supportedExt(ext string) bool {
	for _, e := range supportedUploadExts {
		if ext == e {
			return true
		}
	}
	return false
}
