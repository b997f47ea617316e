package bluelatex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/bluelatex/blue-web/internal/domain/paper"
)

// DefaultPapersProjection maps the blue-latex user papers listing. Older
// backends name the title "name" and omit dates.
const DefaultPapersProjection = `[*].{id: id, title: title || name, role: role, date: creation_date || date}`

type projection struct {
	expr string
}

func newProjection(expr string) (*projection, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = DefaultPapersProjection
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("compile papers projection: %w", err)
	}
	return &projection{expr: expr}, nil
}

// papers evaluates the projection over a decoded JSON document.
func (p *projection) papers(doc any) ([]paper.Paper, error) {
	out, err := jmespath.Search(p.expr, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluate papers projection: %w", err)
	}
	if out == nil {
		return nil, nil
	}
	items, ok := out.([]any)
	if !ok {
		return nil, fmt.Errorf("papers projection must yield a list, got %T", out)
	}

	papers := make([]paper.Paper, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("papers projection item %d is %T, want object", i, item)
		}
		id := stringField(m["id"])
		if id == "" {
			continue
		}
		papers = append(papers, paper.Paper{
			ID:    id,
			Title: stringField(m["title"]),
			Role:  paper.Role(strings.ToLower(stringField(m["role"]))),
			Date:  timeField(m["date"]),
		})
	}
	return papers, nil
}

func stringField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// timeField accepts RFC 3339 strings and epoch milliseconds. Anything else
// yields the zero time.
func timeField(v any) time.Time {
	switch t := v.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts
			}
		}
	case float64:
		if t > 0 {
			return time.UnixMilli(int64(t)).UTC()
		}
	}
	return time.Time{}
}
