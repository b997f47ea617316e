package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/paper"
	"github.com/bluelatex/blue-web/internal/domain/route"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/service"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type papersView struct {
	service.Listing
	DateBuckets []option
	RoleFilters []option
	SortFields  []option
}

var (
	dateBucketOptions = []option{
		{Value: string(paper.DateAll), Label: "All"},
		{Value: string(paper.DateToday), Label: "Today"},
		{Value: string(paper.DateYesterday), Label: "Yesterday"},
		{Value: string(paper.DateThisWeek), Label: "This week"},
		{Value: string(paper.DateLastWeek), Label: "Last week"},
		{Value: string(paper.DateThisMonth), Label: "This month"},
		{Value: string(paper.DateThisYear), Label: "This year"},
	}
	roleFilterOptions = []option{
		{Value: string(paper.RoleAll), Label: "All"},
		{Value: string(paper.RoleAuthors), Label: "Author"},
		{Value: string(paper.RoleReviewers), Label: "Reviewer"},
	}
	sortFieldOptions = []option{
		{Value: paper.SortTitle, Label: "Title"},
		{Value: paper.SortDate, Label: "Date"},
		{Value: paper.SortRole, Label: "Role"},
	}
)

func selectOptions(opts []option, selected string) []option {
	out := make([]option, len(opts))
	for i, o := range opts {
		o.Selected = o.Value == selected
		out[i] = o
	}
	return out
}

// papersURL is the paper list path carrying the current filters.
func papersURL(f paper.Filter) string {
	q := url.Values{}
	q.Set("date", string(f.Date))
	q.Set("role", string(f.Role))
	return route.PapersPath + "?" + q.Encode()
}

// PapersList renders the paper list. A plain visit resets the filters and
// reloads from the backend. Filter params alone act on the held collection.
// Ordering changes go through PapersSort.
// GET /papers?date=&role=.
func (h *UIHandlers) PapersList(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	ctx := r.Context()
	q := r.URL.Query()
	profile := GetProfileFromContext(ctx)
	list := h.Papers.View(sess.ID)

	filtering := q.Has("date") || q.Has("role")
	if !filtering || !list.Loaded() {
		list.ResetFilters()
		if _, err := h.Papers.Load(ctx, sess); err != nil {
			h.logger().WarnContext(ctx, "paper list load failed", "user", sess.UserName, "error", err)
		}
	}
	if q.Has("date") {
		h.Papers.SetDateFilter(sess.ID, paper.ParseDateBucket(q.Get("date")))
	}
	if q.Has("role") {
		h.Papers.SetRoleFilter(sess.ID, paper.ParseRoleFilter(q.Get("role")))
	}

	listing := h.Papers.Snapshot(ctx, sess.ID, profile)
	h.render(w, r, http.StatusOK, nav, papersView{
		Listing:     listing,
		DateBuckets: selectOptions(dateBucketOptions, string(listing.Filter.Date)),
		RoleFilters: selectOptions(roleFilterOptions, string(listing.Filter.Role)),
		SortFields:  selectOptions(sortFieldOptions, listing.Sort.Field),
	})
}

// PapersSort stores the list ordering for the browser profile.
// POST /papers/sort.
func (h *UIHandlers) PapersSort(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	desc, _ := strconv.ParseBool(r.PostFormValue("desc"))
	sort := paper.Sort{Field: r.PostFormValue("field"), Descending: desc}
	if err := h.Papers.Sort(r.Context(), sess.ID, GetProfileFromContext(r.Context()), sort); err != nil {
		h.preferenceFailed(w, r, err)
		return
	}
	redirect(w, r, papersURL(h.Papers.View(sess.ID).Filter()))
}

// PapersStyle stores the list display style for the browser profile.
// POST /papers/style.
func (h *UIHandlers) PapersStyle(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	style := paper.Style(r.PostFormValue("style"))
	if err := h.Papers.SetStyle(r.Context(), GetProfileFromContext(r.Context()), style); err != nil {
		h.preferenceFailed(w, r, err)
		return
	}
	redirect(w, r, papersURL(h.Papers.View(sess.ID).Filter()))
}

func (h *UIHandlers) preferenceFailed(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.IsValidation(err) {
		WriteError(w, 0, err)
		return
	}
	h.logger().ErrorContext(r.Context(), "failed to store preference", "error", err)
	WriteError(w, http.StatusServiceUnavailable, err)
}

// PaperDelete deletes a paper. When the backend no longer accepts the
// session the user is cleared and the gate re-runs for the paper list.
// POST /paper/{id}/delete.
func (h *UIHandlers) PaperDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if !sess.Authenticated() {
		redirect(w, r, route.PapersPath)
		return
	}

	id := r.PathValue("id")
	_, err := h.Papers.Delete(ctx, sess, id)
	if err != nil && apperrors.StatusOf(err) == http.StatusUnauthorized {
		h.Papers.Forget(sess.ID)
		if saveErr := h.Sessions.Save(ctx, sess); saveErr != nil {
			h.logger().ErrorContext(ctx, "failed to save session", "error", saveErr)
		}
		h.sessionChanged(w, r, sess, route.PapersPath)
		return
	}
	h.saveAndRedirect(w, r, sess, papersURL(h.Papers.View(sess.ID).Filter()))
}
