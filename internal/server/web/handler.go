package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/journal"
	"github.com/lgastler/work-journal/internal/server/models"
	"github.com/lgastler/work-journal/internal/server/services"
)

const maxFormBytes = 1 << 20

var formFields = []string{"date", "type", "text"}

// wantsJSON tells script-driven requests apart from plain browser ones.
func wantsJSON(r *http.Request) bool {
	return r.Header.Get(common.FetchHeaderName) == common.FetchHeaderValue ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

func (s *HTTPServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	weeks, err := s.entries.Weeks(ctx)
	if err != nil {
		s.logger.Error(ctx, "Listing entries failed", "error", err)
		s.fail(w, r, http.StatusInternalServerError, common.ErrorInternal)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"weeks": weeks})
		return
	}

	if err := s.renderPage(w, weeks); err != nil {
		s.logger.Error(ctx, "Rendering page failed", "error", err)
	}
}

func (s *HTTPServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := readEntryForm(w, r)
	if err != nil {
		s.logger.Warn(ctx, "Rejected submission", "error", err)
		s.fail(w, r, http.StatusBadRequest, common.ErrBadRequest)
		return
	}

	created, err := s.entries.Create(ctx, in)
	if err != nil {
		if errors.Is(err, common.ErrInvalidDate) || errors.Is(err, common.ErrUnknownEntryType) {
			s.logger.Warn(ctx, "Rejected submission", "error", err)
			s.fail(w, r, http.StatusBadRequest, common.ErrBadRequest)
			return
		}
		s.logger.Error(ctx, "Creating entry failed", "error", err)
		s.fail(w, r, http.StatusInternalServerError, common.ErrorInternal)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, journal.View([]models.Entry{*created})[0])
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.entries.Ping(r.Context()); err != nil {
		s.logger.Error(r.Context(), "Health check failed", "error", err)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// readEntryForm requires date, type and text to be present in the body.
// Empty values count as present.
func readEntryForm(w http.ResponseWriter, r *http.Request) (services.CreateEntryInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return services.CreateEntryInput{}, err
	}

	for _, name := range formFields {
		if _, ok := r.PostForm[name]; !ok {
			return services.CreateEntryInput{}, fmt.Errorf("%w: missing field %s", common.ErrBadRequest, name)
		}
	}

	return services.CreateEntryInput{
		Date: r.PostForm.Get("date"),
		Type: r.PostForm.Get("type"),
		Text: r.PostForm.Get("text"),
	}, nil
}

func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if wantsJSON(r) {
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	http.Error(w, http.StatusText(status), status)
}
