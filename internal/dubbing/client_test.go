package dubbing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"askify/internal/config"
	"askify/internal/logger"
)

func writeTempVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("fake-mp4"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClientCreateJob(t *testing.T) {
	var gotPath, gotKey, gotFileName, gotLocale, gotPriority string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")

		if err := r.ParseMultipartForm(16 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotFileName = r.FormValue("file_name")
		gotLocale = r.FormValue("target_locales")
		gotPriority = r.FormValue("priority")

		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		buf := make([]byte, 32)
		n, _ := f.Read(buf)
		gotFile = buf[:n]

		w.Write([]byte(`{"id":"job-7"}`))
	}))
	defer srv.Close()

	client := NewClient(config.MurfConfig{APIKey: "secret", BaseURL: srv.URL}, logger.New("error"))

	job, err := client.CreateJob(context.Background(), CreateJobRequest{
		FilePath:     writeTempVideo(t),
		FileName:     "clip.mp4",
		TargetLocale: "es_MX",
		Priority:     "LOW",
	})
	if err != nil {
		t.Fatalf("CreateJob() error = %v", err)
	}

	if job.ID != "job-7" {
		t.Errorf("job ID = %q, want job-7", job.ID)
	}
	if gotPath != "/v1/murfdub/jobs/create" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("api-key = %q", gotKey)
	}
	if gotFileName != "clip.mp4" {
		t.Errorf("file_name = %q", gotFileName)
	}
	if gotLocale != "es_MX" {
		t.Errorf("target_locales = %q", gotLocale)
	}
	if gotPriority != "LOW" {
		t.Errorf("priority = %q", gotPriority)
	}
	if string(gotFile) != "fake-mp4" {
		t.Errorf("file content = %q", gotFile)
	}
}

func TestClientCreateJobMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"accepted"}`))
	}))
	defer srv.Close()

	client := NewClient(config.MurfConfig{APIKey: "k", BaseURL: srv.URL}, logger.New("error"))

	_, err := client.CreateJob(context.Background(), CreateJobRequest{
		FilePath:     writeTempVideo(t),
		FileName:     "clip.mp4",
		TargetLocale: "en_US",
		Priority:     "LOW",
	})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("CreateJob() error = %v, want ErrMalformedResponse", err)
	}
}

func TestClientJobStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/murfdub/jobs/job-7/status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"job_id":"job-7","status":"running"}`))
	}))
	defer srv.Close()

	client := NewClient(config.MurfConfig{APIKey: "k", BaseURL: srv.URL}, logger.New("error"))

	st, err := client.JobStatus(context.Background(), "job-7")
	if err != nil {
		t.Fatalf("JobStatus() error = %v", err)
	}
	if st.Status != StatusRunning {
		t.Errorf("Status = %q, want RUNNING", st.Status)
	}
	if st.JobID != "job-7" {
		t.Errorf("JobID = %q, want job-7", st.JobID)
	}
}

func TestClientJobStatusHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "job not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(config.MurfConfig{APIKey: "k", BaseURL: srv.URL}, logger.New("error"))

	if _, err := client.JobStatus(context.Background(), "missing"); err == nil {
		t.Error("expected error for 404 response")
	}
}
