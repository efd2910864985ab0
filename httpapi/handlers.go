package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tsawler/vitae"
	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/ocr"
	"github.com/tsawler/vitae/reader"
)

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	var data []byte
	var filename string

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "multipart/") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		filename = header.Filename
		data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
		if err != nil {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
			return
		}
	} else {
		var err error
		data, err = io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxUploadBytes+1))
		if err != nil {
			jsonError(w, "failed to read request body", http.StatusBadRequest)
			return
		}
	}

	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		jsonError(w, "empty document", http.StatusBadRequest)
		return
	}

	p := vitae.FromBytes(data).WithPhoneRegion(s.cfg.PhoneRegion)
	if f := format.Detect(filename); f != format.Unknown {
		p = p.WithFormat(f)
	}

	resume, err := p.Parse()
	if err != nil {
		jsonError(w, "parse failed: "+err.Error(), parseStatus(err))
		return
	}

	var id string
	if r.URL.Query().Get("store") == "true" {
		if s.store == nil {
			jsonError(w, "storage is not configured", http.StatusServiceUnavailable)
			return
		}
		id, err = s.store.SaveResume(r.Context(), resume)
		if err != nil {
			jsonError(w, "failed to store resume: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":     id,
		"resume": resume,
	})
}

// parseStatus maps parse failures onto HTTP status codes.
func parseStatus(err error) int {
	switch {
	case errors.Is(err, reader.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ocr.ErrOCRNotEnabled):
		return http.StatusNotImplemented
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		jsonError(w, "storage is not configured", http.StatusServiceUnavailable)
		return
	}
	records, err := s.store.ListResumes(r.Context())
	if err != nil {
		jsonError(w, "failed to list resumes: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"resumes": records})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		jsonError(w, "storage is not configured", http.StatusServiceUnavailable)
		return
	}
	resume, err := s.store.GetResume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, "failed to load resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if resume == nil {
		jsonError(w, "resume not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resume)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		jsonError(w, "storage is not configured", http.StatusServiceUnavailable)
		return
	}
	deleted, err := s.store.DeleteResume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, "failed to delete resume: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		jsonError(w, "resume not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": true})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
