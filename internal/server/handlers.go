package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mobee/resume-tailor/internal/pdf"
	"github.com/mobee/resume-tailor/internal/pipeline"
	"github.com/mobee/resume-tailor/internal/types"
)

// GenerateResponse is the body returned by POST /generate.
type GenerateResponse struct {
	RunID         string               `json:"run_id,omitempty"`
	Label         string               `json:"label,omitempty"`
	Tailored      bool                 `json:"tailored"`
	Tagline       string               `json:"tagline,omitempty"`
	Keywords      []string             `json:"keywords,omitempty"`
	Pages         int                  `json:"pages"`
	FitIterations int                  `json:"fit_iterations"`
	Fitted        bool                 `json:"fitted"`
	HTMLArtifact  string               `json:"html_artifact"`
	PDFArtifact   string               `json:"pdf_artifact"`
	Assessment    *types.FitAssessment `json:"assessment,omitempty"`
}

// CoverLetterResponse is the body returned by POST /cover-letter.
type CoverLetterResponse struct {
	RunID        string `json:"run_id,omitempty"`
	Text         string `json:"text"`
	HTMLArtifact string `json:"html_artifact"`
	PDFArtifact  string `json:"pdf_artifact,omitempty"`
}

// handleGenerate runs one tailoring pass against the configured resume.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if err := s.renderSem.Acquire(ctx, 1); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer s.renderSem.Release(1)

	result, err := pipeline.Generate(ctx, pipeline.GenerateOptions{
		ResumeText:   s.cfg.ResumeText,
		TemplateHTML: s.cfg.TemplateHTML,
		JobText:      req.JobText,
		Client:       s.cfg.Client,
		Renderer:     s.cfg.Renderer,
		Counter:      s.cfg.Counter,
		MaxPages:     s.cfg.MaxPages,
	})
	if err != nil {
		s.errorResponse(w, generateStatus(err), err.Error())
		return
	}

	now := time.Now()
	htmlName := pipeline.ArtifactName("Resume", req.Label, now, "html")
	pdfName := pipeline.ArtifactName("Resume", req.Label, now, "pdf")
	htmlArt := s.artifacts.Put(htmlName, "text/html; charset=utf-8", []byte(result.HTML))
	pdfArt := s.artifacts.Put(pdfName, "application/pdf", result.PDF)

	resp := GenerateResponse{
		Label:         req.Label,
		Tailored:      result.Tailored,
		Tagline:       result.Tagline,
		Keywords:      result.Keywords,
		Pages:         result.Pages,
		FitIterations: result.FitIterations,
		Fitted:        result.Fitted,
		HTMLArtifact:  htmlArt.ID.String(),
		PDFArtifact:   pdfArt.ID.String(),
	}
	if req.Assess {
		resp.Assessment = pipeline.AssessFit(ctx, s.cfg.Client, req.JobText, s.cfg.ResumeText)
	}
	if s.cfg.Store != nil {
		resp.RunID = s.recordRun(ctx, req.Label, result, resp.Assessment, htmlName, pdfName, []byte(result.HTML), result.PDF)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAssess returns the apply/no-apply recommendation for a job posting.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req types.AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	assessment := pipeline.AssessFit(r.Context(), s.cfg.Client, req.JobText, s.cfg.ResumeText)
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleCoverLetter drafts and renders a cover letter for a job posting.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if s.cfg.Client == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "cover letters require the text-generation collaborator")
		return
	}

	ctx := r.Context()
	if err := s.renderSem.Acquire(ctx, 1); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer s.renderSem.Release(1)

	result, err := pipeline.GenerateCoverLetter(ctx, pipeline.CoverLetterOptions{
		ResumeText:   s.cfg.ResumeText,
		TemplateHTML: s.cfg.TemplateHTML,
		JobText:      req.JobText,
		Client:       s.cfg.Client,
		Renderer:     s.cfg.Renderer,
	})
	if err != nil {
		s.errorResponse(w, generateStatus(err), err.Error())
		return
	}

	now := time.Now()
	htmlName := pipeline.ArtifactName("CoverLetter", req.Label, now, "html")
	htmlArt := s.artifacts.Put(htmlName, "text/html; charset=utf-8", []byte(result.HTML))
	resp := CoverLetterResponse{
		Text:         result.Text,
		HTMLArtifact: htmlArt.ID.String(),
	}
	if len(result.PDF) > 0 {
		pdfName := pipeline.ArtifactName("CoverLetter", req.Label, now, "pdf")
		pdfArt := s.artifacts.Put(pdfName, "application/pdf", result.PDF)
		resp.PDFArtifact = pdfArt.ID.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleArtifact serves a rendered artifact by ID.
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid artifact id")
		return
	}

	if a, ok := s.artifacts.Get(id); ok {
		serveArtifact(w, a.Filename, a.ContentType, a.Data)
		return
	}
	// Fall back to the store, treating the id as a run id. The PDF is the
	// primary artifact of a run.
	if s.cfg.Store != nil {
		for _, kind := range []string{"pdf", "html", "cover_letter"} {
			filename, data, err := s.cfg.Store.GetArtifact(r.Context(), id, kind)
			if err != nil {
				s.errorResponse(w, http.StatusInternalServerError, err.Error())
				return
			}
			if data != nil {
				serveArtifact(w, filename, contentTypeFor(kind), data)
				return
			}
		}
	}
	s.errorResponse(w, http.StatusNotFound, "artifact not found")
}

// handleListRuns lists recorded runs when a store is configured.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		s.errorResponse(w, http.StatusNotImplemented, "run history requires a database")
		return
	}
	runs, err := s.cfg.Store.ListRuns(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, runs)
}

// handleGetRun returns one recorded run by ID.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		s.errorResponse(w, http.StatusNotImplemented, "run history requires a database")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run id")
		return
	}
	run, err := s.cfg.Store.GetRun(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleDeleteRun removes a recorded run and its stored artifacts.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		s.errorResponse(w, http.StatusNotImplemented, "run history requires a database")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run id")
		return
	}
	if err := s.cfg.Store.DeleteRun(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// recordRun persists a completed run; persistence failures are logged, not
// surfaced, since the artifacts were already produced.
func (s *Server) recordRun(ctx context.Context, label string, result *pipeline.Result, assessment *types.FitAssessment, htmlName, pdfName string, html, pdfData []byte) string {
	runID, err := s.cfg.Store.CreateRun(ctx, label, result.Tailored)
	if err != nil {
		log.Printf("[SERVER] failed to record run: %v", err)
		return ""
	}
	if err := s.cfg.Store.SaveArtifact(ctx, runID, "html", htmlName, html); err != nil {
		log.Printf("[SERVER] failed to save artifact: %v", err)
	}
	if err := s.cfg.Store.SaveArtifact(ctx, runID, "pdf", pdfName, pdfData); err != nil {
		log.Printf("[SERVER] failed to save artifact: %v", err)
	}
	if assessment != nil {
		if err := s.cfg.Store.SaveAssessment(ctx, runID, assessment.Recommendation, assessment.Confidence); err != nil {
			log.Printf("[SERVER] failed to save assessment: %v", err)
		}
	}
	if err := s.cfg.Store.CompleteRun(ctx, runID, result.Pages, result.FitIterations, result.Fitted); err != nil {
		log.Printf("[SERVER] failed to complete run: %v", err)
	}
	return runID.String()
}

func serveArtifact(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentTypeFor(kind string) string {
	if kind == "pdf" {
		return "application/pdf"
	}
	return "text/html; charset=utf-8"
}

// generateStatus maps pipeline failures to HTTP statuses. A missing browser
// is an operator problem, not a caller problem.
func generateStatus(err error) int {
	var cfgErr *pdf.ConfigError
	if errors.As(err, &cfgErr) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
