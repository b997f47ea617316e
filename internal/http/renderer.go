package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS // Required
	Logger     *slog.Logger
}

// NewTemplateRenderer parses the layout, pages and partials from cfg.TemplateFS.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var t *template.Template
	t, err := template.New("root").Funcs(templateFuncs(&t)).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		logger.Error("template parsing failed", slog.Any("error", err), slog.String("phase", "initialization"))
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: logger}, nil
}

// RenderFull renders the layout around the page content.
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, status int, data PageData) error {
	return r.renderTemplate(w, status, "layout", data)
}

// RenderPartial renders only the page content.
func (r *TemplateRenderer) RenderPartial(w http.ResponseWriter, status int, data PageData) error {
	return r.renderTemplate(w, status, ContentTemplateFor(data.Page), data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, status int, name string, data PageData) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("template execution failed", slog.String("template", name), slog.Any("error", err))
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write rendered template", slog.String("template", name), slog.Any("error", err))
		return err
	}
	return nil
}

func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"renderSection": func(page string, data any) (template.HTML, error) {
			if *t == nil {
				return "", errors.New("template not initialized")
			}
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(page), data); err != nil {
				return "", err
			}
			// #nosec G203 - output of our own html/template execution, already escaped.
			return template.HTML(buf.String()), nil
		},
		"paperDate": func(ts time.Time) string {
			if ts.IsZero() {
				return ""
			}
			return ts.Local().Format("2006-01-02 15:04")
		},
		"isoTime": func(ts time.Time) string { return ts.UTC().Format(time.RFC3339) },
		"lower":   strings.ToLower,
	}
}
