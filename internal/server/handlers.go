package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"askify/internal/dubbing"
	"askify/internal/locale"
	"askify/internal/notes"
	"askify/internal/subtitle"
)

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Explanation string  `json:"explanation"`
	Summary     string  `json:"summary"`
	AudioB64    *string `json:"audio_b64"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	res, err := s.teacher.Ask(r.Context(), req.Query)
	if err != nil {
		s.logger.Error(r.Context(), "Ask pipeline failed: %v", err)
		s.writeError(w, errorStatus(err), err.Error())
		return
	}

	resp := askResponse{
		Explanation: res.Explanation,
		Summary:     res.Summary,
	}
	if res.Audio != nil {
		b64 := base64.StdEncoding.EncodeToString(res.Audio)
		resp.AudioB64 = &b64
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type dubRequest struct {
	YoutubeURL   string `json:"youtube_url"`
	TargetLocale string `json:"target_locale"`
}

func (s *Server) handleDub(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.YoutubeURL == "" {
		s.writeError(w, http.StatusBadRequest, "youtube_url is required")
		return
	}

	// Reject bad locales before spending a download on them.
	if err := locale.Validate(req.TargetLocale); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := func() (dubbing.Job, error) {
		path, cleanup, err := s.media.FromURL(r.Context(), req.YoutubeURL)
		if err != nil {
			return dubbing.Job{}, err
		}
		defer cleanup()
		return s.dubber.Submit(r.Context(), path, req.TargetLocale)
	}()
	if err != nil {
		s.logger.Error(r.Context(), "Dub submission failed: %v", err)
		s.writeError(w, errorStatus(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"job_id": job.ID})
}

func (s *Server) handleDubUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseMultipartForm(512 << 20); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if err := locale.Validate(r.FormValue("target_locale")); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	path, cleanup, err := s.media.FromUpload(r.Context(), header.Filename, file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	job, err := s.dubber.Submit(r.Context(), path, r.FormValue("target_locale"))
	if err != nil {
		s.logger.Error(r.Context(), "Dub submission failed: %v", err)
		s.writeError(w, errorStatus(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"job_id": job.ID})
}

type dubStatusResponse struct {
	Status         string `json:"status"`
	DubbedVideoURL string `json:"dubbed_video_url,omitempty"`
	SubtitlesURL   string `json:"subtitles_url,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (s *Server) handleDubStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	jobID := r.URL.Query().Get("job_id")
	if jobID == "" {
		s.writeError(w, http.StatusBadRequest, "job_id is required")
		return
	}

	var (
		st  dubbing.Status
		err error
	)
	if r.URL.Query().Get("wait") == "1" {
		st, err = s.dubber.Await(r.Context(), jobID)
	} else {
		st, err = s.dubber.Status(r.Context(), jobID)
	}
	if err != nil {
		s.logger.Error(r.Context(), "Status query failed for %s: %v", jobID, err)
		s.writeError(w, errorStatus(err), err.Error())
		return
	}

	resp := dubStatusResponse{Status: st.Status}
	if !st.Terminal() {
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	if st.Status == dubbing.StatusCompleted && len(st.DownloadDetails) > 0 {
		first := st.DownloadDetails[0]
		resp.DubbedVideoURL = first.DownloadURL
		resp.SubtitlesURL = first.DownloadSRTURL
		resp.Notes = s.notesFromSubtitles(r, first.DownloadSRTURL)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// notesFromSubtitles fetches the subtitle track and derives study notes.
// Every failure degrades into a visible placeholder; a terminal status
// reply never fails because of notes.
func (s *Server) notesFromSubtitles(r *http.Request, srtURL string) string {
	if srtURL == "" {
		return ""
	}

	srt, err := s.dubber.FetchArtifact(r.Context(), srtURL)
	if err != nil {
		s.logger.Warn(r.Context(), "Subtitle fetch failed: %v", err)
		return fmt.Sprintf("- (Could not generate notes) %v", err)
	}

	transcript := subtitle.Normalize(srt)
	text, err := s.notes.Generate(r.Context(), transcript)
	if err != nil {
		s.logger.Warn(r.Context(), "Notes generation failed: %v", err)
		return notes.Fallback(err)
	}
	return text
}

func (s *Server) handleDubDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	jobID := r.URL.Query().Get("job_id")
	kind := r.URL.Query().Get("kind")
	if jobID == "" {
		s.writeError(w, http.StatusBadRequest, "job_id is required")
		return
	}
	if kind != "video" && kind != "subtitles" {
		s.writeError(w, http.StatusBadRequest, "kind must be video or subtitles")
		return
	}

	st, err := s.dubber.Status(r.Context(), jobID)
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	if st.Status != dubbing.StatusCompleted {
		s.writeError(w, http.StatusConflict, fmt.Sprintf("job status is %s", st.Status))
		return
	}
	if len(st.DownloadDetails) == 0 {
		s.writeError(w, http.StatusBadGateway, dubbing.ErrNoDownloadDetails.Error())
		return
	}

	first := st.DownloadDetails[0]
	var url, contentType, filename string
	switch kind {
	case "video":
		if first.DownloadURL == "" {
			s.writeError(w, http.StatusBadGateway, dubbing.ErrNoDubbedMedia.Error())
			return
		}
		url, contentType, filename = first.DownloadURL, "video/mp4", "dubbed.mp4"
	case "subtitles":
		if first.DownloadSRTURL == "" {
			s.writeError(w, http.StatusNotFound, "job has no subtitles")
			return
		}
		url, contentType, filename = first.DownloadSRTURL, "text/plain", "dubbed.srt"
	}

	data, err := s.dubber.FetchArtifact(r.Context(), url)
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func (s *Server) handleNotesDocx(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	jobID := r.URL.Query().Get("job_id")
	if jobID == "" {
		s.writeError(w, http.StatusBadRequest, "job_id is required")
		return
	}

	st, err := s.dubber.Status(r.Context(), jobID)
	if err != nil {
		s.writeError(w, errorStatus(err), err.Error())
		return
	}
	if st.Status != dubbing.StatusCompleted {
		s.writeError(w, http.StatusConflict, fmt.Sprintf("job status is %s", st.Status))
		return
	}
	if len(st.DownloadDetails) == 0 || st.DownloadDetails[0].DownloadSRTURL == "" {
		s.writeError(w, http.StatusNotFound, "job has no subtitles")
		return
	}

	text := s.notesFromSubtitles(r, st.DownloadDetails[0].DownloadSRTURL)

	if err := os.MkdirAll(s.cfg.Paths.Temp, 0755); err != nil {
		s.writeError(w, http.StatusInternalServerError, "create temp dir failed")
		return
	}
	tmpPath := filepath.Join(s.cfg.Paths.Temp, uuid.NewString()+".docx")
	defer os.Remove(tmpPath)

	if err := notes.SaveDocx("Study Notes", text, tmpPath); err != nil {
		s.writeError(w, http.StatusInternalServerError, "render docx failed")
		return
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "read docx failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", jobID+"_notes.docx"))
	w.Write(data)
}
