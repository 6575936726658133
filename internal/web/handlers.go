package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/core/practice"
	"github.com/hay-kot/practica/internal/export/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EntryLog is the append-only practice log.
type EntryLog interface {
	Path() string
	Exists() bool
	Append(e practice.Entry) error
	Read() ([]practice.Entry, error)
}

// ChallengeLister lists tracked challenges.
type ChallengeLister interface {
	List(ctx context.Context, status challenge.Status) ([]*challenge.Challenge, error)
}

// Handler serves the practice log and challenge pages.
type Handler struct {
	entries    EntryLog
	challenges ChallengeLister
	templates  *Engine
	validator  *validator.Validate
	sheet      string
	now        func() time.Time
}

// NewHandler constructs a Handler. An empty sheet selects xlsx.DefaultSheet
// and a nil now selects time.Now.
func NewHandler(entries EntryLog, challenges ChallengeLister, templates *Engine, sheet string, now func() time.Time) *Handler {
	if sheet == "" {
		sheet = xlsx.DefaultSheet
	}
	if now == nil {
		now = time.Now
	}

	return &Handler{
		entries:    entries,
		challenges: challenges,
		templates:  templates,
		validator:  validator.New(),
		sheet:      sheet,
		now:        now,
	}
}

// MountRoutes registers the handler routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/add", h.showAdd)
	r.Post("/add", h.handleAdd)
	r.Get("/challenges", h.listChallenges)
	r.Get("/api/challenges", h.apiChallenges)
	r.Get("/export/csv", h.exportCSV)
	r.Get("/export/xlsx", h.exportXLSX)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	viewData := TemplateData{
		Title:       title,
		Flash:       popFlash(w, r),
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, page, viewData); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("page", page).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.Read()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("read practice log")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "index.html", "Practice log", practice.SortNewestFirst(entries))
}

func (h *Handler) showAdd(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "add.html", "Add entry", nil)
}

type entryForm struct {
	Description string `validate:"required"`
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	Time        string `validate:"omitempty,datetime=15:04"`
	Tags        string `validate:"max=200"`
	Duration    int    `validate:"gte=0"`
}

// formMessages maps a failing field to the message flashed to the user.
var formMessages = map[string]string{
	"Description": "Description is required",
	"Date":        "Date must be YYYY-MM-DD",
	"Time":        "Time must be HH:MM",
	"Tags":        "Tags must be at most 200 characters",
	"Duration":    "Duration must be zero or more minutes",
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := entryForm{
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Date:        strings.TrimSpace(r.PostFormValue("date")),
		Time:        strings.TrimSpace(r.PostFormValue("time")),
		Tags:        strings.TrimSpace(r.PostFormValue("tags")),
	}

	if raw := strings.TrimSpace(r.PostFormValue("duration")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			setFlash(w, "danger", "Duration must be a whole number")
			http.Redirect(w, r, "/add", http.StatusSeeOther)
			return
		}
		form.Duration = n
	}

	if msg := h.validateForm(form); msg != "" {
		setFlash(w, "danger", msg)
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	entry, err := practice.New(h.now(), form.Description, practice.Options{
		Date:            form.Date,
		Time:            form.Time,
		Tags:            form.Tags,
		DurationMinutes: form.Duration,
	})
	if err != nil {
		setFlash(w, "danger", err.Error())
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	if err := h.entries.Append(entry); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("append practice entry")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	hlog.FromRequest(r).Info().Str("entry_id", entry.ID).Msg("practice entry added")
	setFlash(w, "success", "Entry added")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// validateForm returns the message for the first failing field, or "".
func (h *Handler) validateForm(form entryForm) string {
	err := h.validator.Struct(form)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	if msg, ok := formMessages[verrs[0].Field()]; ok {
		return msg
	}
	return verrs[0].Error()
}

// challengesFor loads challenges for the status query parameter. A missing
// document is an empty list. ok is false when a response was written.
func (h *Handler) challengesFor(w http.ResponseWriter, r *http.Request) (records []*challenge.Challenge, ok bool) {
	status, err := statusParam(r)
	if err != nil {
		problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return nil, false
	}

	records, err = h.challenges.List(r.Context(), status)
	switch {
	case err == nil:
		return records, true
	case errors.Is(err, challenge.ErrNotFound):
		return []*challenge.Challenge{}, true
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("list challenges")
		problem(w, http.StatusInternalServerError, "Internal Error", "")
		return nil, false
	}
}

func statusParam(r *http.Request) (challenge.Status, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" {
		return "", nil
	}
	return challenge.ParseStatus(raw)
}

func (h *Handler) listChallenges(w http.ResponseWriter, r *http.Request) {
	records, ok := h.challengesFor(w, r)
	if !ok {
		return
	}

	h.render(w, r, "challenges.html", "Challenges", records)
}

func (h *Handler) apiChallenges(w http.ResponseWriter, r *http.Request) {
	records, ok := h.challengesFor(w, r)
	if !ok {
		return
	}

	out := make([]challenge.Persisted, 0, len(records))
	for _, ch := range records {
		out = append(out, ch.ToPersistable())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	if !h.entries.Exists() {
		setFlash(w, "warning", "No data to export")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(filepath.Base(h.entries.Path())))
	http.ServeFile(w, r, h.entries.Path())
}

func (h *Handler) exportXLSX(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := xlsx.ExportCSV(h.entries.Path(), &buf, h.sheet)
	switch {
	case errors.Is(err, challenge.ErrNotFound):
		setFlash(w, "warning", "No data to export")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("export xlsx")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", attachment("practica.xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func attachment(name string) string {
	return fmt.Sprintf("attachment; filename=%q", name)
}
