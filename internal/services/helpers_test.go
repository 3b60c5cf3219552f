package services

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const fiveMiB = 5 * 1024 * 1024

// fakeAnalyzer stands in for the external analysis and chat service.
type fakeAnalyzer struct {
	server *httptest.Server
	calls  atomic.Int32

	mu        sync.Mutex
	lastForm map[string]string
	lastFile fileSeen
	onUpload http.HandlerFunc
	onChat   http.HandlerFunc
}

type fileSeen struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

func newFakeAnalyzer(t *testing.T) *fakeAnalyzer {
	t.Helper()
	f := &fakeAnalyzer{}

	mux := http.NewServeMux()
	upload := func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.lastForm = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			f.lastForm[key] = values[0]
		}
		for field, headers := range r.MultipartForm.File {
			var buf bytes.Buffer
			if src, err := headers[0].Open(); err == nil {
				_, _ = buf.ReadFrom(src)
				src.Close()
			}
			f.lastFile = fileSeen{
				Field:       field,
				Filename:    headers[0].Filename,
				ContentType: headers[0].Header.Get("Content-Type"),
				Data:        buf.Bytes(),
			}
		}
		handler := f.onUpload
		f.mu.Unlock()

		handler(w, r)
	}
	mux.HandleFunc("/upload", upload)
	mux.HandleFunc("/resume", upload)
	mux.HandleFunc("/analyze-resume", upload)
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mu.Lock()
		handler := f.onChat
		f.mu.Unlock()
		handler(w, r)
	})

	f.onUpload = respond(http.StatusOK, `{"score":7,"enhanced":"enhanced text","skills":["Python"],"original":"original text","job_role":"Data Scientist"}`)
	f.onChat = respond(http.StatusOK, `{"response":"Add SQL"}`)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAnalyzer) setUpload(h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onUpload = h
}

func (f *fakeAnalyzer) setChat(h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChat = h
}

func (f *fakeAnalyzer) form() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastForm
}

func (f *fakeAnalyzer) file() fileSeen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastFile
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestController(t *testing.T, f *fakeAnalyzer, kind models.ContractKind) SessionController {
	t.Helper()
	contract, err := NewAnalysisContract(string(kind), f.server.URL, 0)
	require.NoError(t, err)
	return NewSessionController(
		uuid.New(),
		contract,
		NewChatService(f.server.URL, 0),
		NewUploadValidator(kind, fiveMiB),
		nil,
	)
}

func pdfFile(size int) models.ResumeFile {
	return models.ResumeFile{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        int64(size),
		Data:        bytes.Repeat([]byte("a"), size),
	}
}
