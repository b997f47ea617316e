package bluelatex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bluelatex/blue-web/internal/domain/paper"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

// Create creates a paper and returns its identifier.
func (c *Client) Create(ctx context.Context, creds ports.Credentials, p paper.NewPaper) (ports.PaperRef, error) {
	form := url.Values{
		"paper_name":  {p.Name},
		"paper_title": {p.Title},
	}
	if p.Template != "" {
		form.Set("template", p.Template)
	}
	if p.Visibility != "" {
		form.Set("visibility", p.Visibility)
	}

	var raw json.RawMessage
	if err := c.do(ctx, request{
		op:     "papers.create",
		method: http.MethodPost,
		path:   "/papers",
		form:   form,
		creds:  creds,
	}, &raw); err != nil {
		return ports.PaperRef{}, err
	}

	// The backend answers with either the bare id or {"id": ...}.
	var ref ports.PaperRef
	if err := json.Unmarshal(raw, &ref.ID); err == nil && ref.ID != "" {
		return ref, nil
	}
	if err := json.Unmarshal(raw, &ref); err != nil || ref.ID == "" {
		return ports.PaperRef{}, apperrors.Server(fmt.Sprintf("unexpected create response %q", string(raw)))
	}
	return ref, nil
}

// UserPapers lists the papers the user authors or reviews.
func (c *Client) UserPapers(ctx context.Context, creds ports.Credentials, user string) ([]paper.Paper, error) {
	var doc any
	if err := c.do(ctx, request{
		op:     "papers.list",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(user) + "/papers",
		creds:  creds,
	}, &doc); err != nil {
		return nil, err
	}
	papers, err := c.projection.papers(doc)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "map papers response")
	}
	return papers, nil
}

// Delete deletes a paper and reports the backend acknowledgement.
func (c *Client) Delete(ctx context.Context, creds ports.Credentials, id string) (bool, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{
		op:     "papers.delete",
		method: http.MethodDelete,
		path:   "/papers/" + url.PathEscape(id),
		creds:  creds,
	}, &raw); err != nil {
		return false, err
	}
	ok, err := decodeAck(raw)
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode delete response")
	}
	return ok, nil
}

// PaperInfo returns the paper metadata.
func (c *Client) PaperInfo(ctx context.Context, creds ports.Credentials, id string) (paper.Info, error) {
	var info paper.Info
	err := c.do(ctx, request{
		op:     "papers.info",
		method: http.MethodGet,
		path:   "/papers/" + url.PathEscape(id) + "/info",
		creds:  creds,
	}, &info)
	if err != nil {
		return paper.Info{}, err
	}
	if info.ID == "" {
		info.ID = id
	}
	return info, nil
}

// UpdatePaperInfo replaces the editable paper metadata.
func (c *Client) UpdatePaperInfo(ctx context.Context, creds ports.Credentials, info paper.Info) error {
	body := map[string]any{
		"name":      info.Name,
		"title":     info.Title,
		"authors":   nonNil(info.Authors),
		"reviewers": nonNil(info.Reviewers),
	}
	if info.Template != "" {
		body["template"] = info.Template
	}
	return c.do(ctx, request{
		op:     "papers.update_info",
		method: http.MethodPatch,
		path:   "/papers/" + url.PathEscape(info.ID) + "/info",
		json:   body,
		creds:  creds,
	}, nil)
}

// nonNil keeps an empty list from encoding as null.
func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// CompiledPages lists the pages of the last compilation.
func (c *Client) CompiledPages(ctx context.Context, creds ports.Credentials, id string) ([]ports.CompiledPage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{
		op:     "papers.compiled_pages",
		method: http.MethodGet,
		path:   "/papers/" + url.PathEscape(id) + "/compiled/pages",
		creds:  creds,
	}, &raw); err != nil {
		return nil, err
	}

	// Older backends only report a page count.
	var count int
	if err := json.Unmarshal(raw, &count); err == nil {
		count = max(count, 0)
		pages := make([]ports.CompiledPage, count)
		for i := range pages {
			pages[i] = ports.CompiledPage{Number: i + 1}
		}
		return pages, nil
	}
	var pages []ports.CompiledPage
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode compiled pages")
	}
	return pages, nil
}

// CompiledPDF streams the compiled document.
func (c *Client) CompiledPDF(ctx context.Context, creds ports.Credentials, id string) (io.ReadCloser, error) {
	resp, err := c.send(ctx, c.http, request{
		op:     "papers.compiled_pdf",
		method: http.MethodGet,
		path:   "/papers/" + url.PathEscape(id) + "/compiled/pdf",
		accept: "application/pdf",
		creds:  creds,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
