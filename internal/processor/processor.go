package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"askify/internal/dubbing"
	"askify/internal/notes"
	"askify/internal/subtitle"
)

// Process orchestrates the dubbing pipeline for one video: submit the dub
// job, poll to a terminal status, fetch the artifacts, and derive study
// notes from the subtitles. Notes are best-effort; everything before them
// is fatal.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	locale := p.cfg.Watcher.TargetLocale

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting dub pipeline: %s -> %s", videoPath, locale)
	p.logger.Info(ctx, "========================================")

	job, err := p.dubber.Submit(ctx, videoPath, locale)
	if err != nil {
		return fmt.Errorf("submit dub job: %w", err)
	}
	p.logger.Info(ctx, "Dub job submitted: %s", job.ID)

	st, err := p.dubber.Await(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("await dub job %s: %w", job.ID, err)
	}
	if st.Status != dubbing.StatusCompleted {
		return fmt.Errorf("dub job %s finished with status %s", job.ID, st.Status)
	}

	art, err := p.dubber.Resolve(ctx, st)
	if err != nil {
		return fmt.Errorf("resolve dub job %s: %w", job.ID, err)
	}

	videosDir := filepath.Join(p.cfg.Paths.Output, "videos")
	if err := os.MkdirAll(videosDir, 0755); err != nil {
		return fmt.Errorf("create videos dir: %w", err)
	}

	videoOut := filepath.Join(videosDir, fmt.Sprintf("%s_%s.mp4", name, locale))
	if err := os.WriteFile(videoOut, art.Video, 0644); err != nil {
		return fmt.Errorf("write dubbed video: %w", err)
	}

	var srtOut string
	if art.Subtitles != nil {
		srtOut = filepath.Join(p.cfg.Paths.Output, fmt.Sprintf("%s_%s.srt", name, locale))
		if err := os.WriteFile(srtOut, art.Subtitles, 0644); err != nil {
			return fmt.Errorf("write subtitles: %w", err)
		}
		p.writeNotes(ctx, name, art.Subtitles)
	} else {
		p.logger.Warn(ctx, "Job %s returned no subtitles, skipping notes", job.ID)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Dub pipeline completed successfully!")
	p.logger.Info(ctx, "Output video: %s", videoOut)
	if srtOut != "" {
		p.logger.Info(ctx, "Output subtitle: %s", srtOut)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// writeNotes derives notes from subtitle bytes and writes markdown plus a
// docx rendering. Failures degrade into a placeholder notes file so the
// run still produces something to read.
func (p *implProcessor) writeNotes(ctx context.Context, name string, srt []byte) {
	transcript := subtitle.Normalize(srt)

	text, err := p.notes.Generate(ctx, transcript)
	if err != nil {
		p.logger.Warn(ctx, "Notes generation failed for %s: %v", name, err)
		text = notes.Fallback(err)
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", name, time.Now().Format("2006-01-02 15:04"), text)
	mdPath := filepath.Join(p.cfg.Paths.Output, name+"_notes.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		p.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
		return
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, name+"_notes.docx")
	if err := notes.SaveDocx(name, text, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	}

	p.logger.Info(ctx, "Notes written: %s", mdPath)
}
