package httpx

import (
	"io"
	"net/http"
	"strings"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/paper"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/service"
)

func paperPath(id string) string { return "/paper/" + id }

type newPaperForm struct {
	Paper paper.NewPaper
}

// NewPaperPage renders the new paper form.
func (h *UIHandlers) NewPaperPage(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusOK, nav, newPaperForm{Paper: paper.NewPaper{Template: "article", Visibility: "private"}})
}

// CreatePaper creates a paper and opens it.
// POST /paper/new.
func (h *UIHandlers) CreatePaper(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	np := paper.NewPaper{
		Name:       r.PostFormValue("name"),
		Title:      r.PostFormValue("title"),
		Template:   r.PostFormValue("template"),
		Visibility: r.PostFormValue("visibility"),
	}
	ref, err := h.Paper.Create(r.Context(), sess, np)
	if err != nil {
		h.render(w, r, http.StatusOK, nav, newPaperForm{Paper: np})
		return
	}
	h.saveAndRedirect(w, r, sess, paperPath(ref.ID))
}

type paperView struct {
	ID   string
	View service.PaperView
	OK   bool
}

// PaperView renders the paper viewer.
// GET /paper/{id}.
func (h *UIHandlers) PaperView(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	id := nav.Params["id"]
	view, err := h.Paper.View(r.Context(), sess, id)
	status := http.StatusOK
	if apperrors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	h.render(w, r, status, nav, paperView{ID: id, View: view, OK: err == nil})
}

// PaperPDF proxies the compiled document.
// GET /paper/{id}/compiled.pdf.
func (h *UIHandlers) PaperPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	id := r.PathValue("id")
	if !sess.Authenticated() {
		redirect(w, r, paperPath(id))
		return
	}

	rc, err := h.Paper.CompiledPDF(r.Context(), sess, id)
	if err != nil {
		status := apperrors.StatusOf(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+strings.ReplaceAll(id, `"`, "")+`.pdf"`)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger().WarnContext(r.Context(), "pdf proxy interrupted", "paper_id", id, "error", err)
	}
}

type editPaperForm struct {
	Info paper.Info
	OK   bool
}

// EditPaperPage renders the metadata form.
// GET /paper/{id}/edit.
func (h *UIHandlers) EditPaperPage(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	info, err := h.Paper.Info(r.Context(), sess, nav.Params["id"])
	h.render(w, r, http.StatusOK, nav, editPaperForm{Info: info, OK: err == nil})
}

// UpdatePaper saves the metadata form.
// POST /paper/{id}/edit.
func (h *UIHandlers) UpdatePaper(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	info := paper.Info{
		ID:        nav.Params["id"],
		Name:      r.PostFormValue("name"),
		Title:     r.PostFormValue("title"),
		Authors:   splitNames(r.PostFormValue("authors")),
		Reviewers: splitNames(r.PostFormValue("reviewers")),
		Template:  r.PostFormValue("template"),
	}
	if err := h.Paper.Update(r.Context(), sess, info); err != nil {
		h.render(w, r, http.StatusOK, nav, editPaperForm{Info: info, OK: true})
		return
	}
	h.saveAndRedirect(w, r, sess, paperPath(info.ID)+"/edit")
}

// splitNames parses a comma separated user list.
func splitNames(s string) []string {
	var out []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
