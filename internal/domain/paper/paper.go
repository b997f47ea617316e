// Package paper holds the paper list view-model and its pure classifiers.
package paper

import (
	"strings"
	"time"
)

// Role is the relation of the current user to a paper.
type Role string

const (
	RoleAuthor   Role = "author"
	RoleReviewer Role = "reviewer"
)

// Paper is the client-side copy of a backend paper.
type Paper struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Role  Role      `json:"role"`
	Date  time.Time `json:"date"`
}

// Style is the display style of the paper list.
type Style string

const (
	StyleList Style = "list"
	StyleGrid Style = "grid"
)

// ParseStyle returns the style named by s, or StyleList.
func ParseStyle(s string) Style {
	if Style(strings.ToLower(strings.TrimSpace(s))) == StyleGrid {
		return StyleGrid
	}
	return StyleList
}

// NewPaper carries the fields submitted by the new paper form.
type NewPaper struct {
	Name       string
	Title      string
	Template   string
	Visibility string
}

// Validate reports the first missing required field, if any.
func (n NewPaper) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return ErrMissingField("name")
	}
	if strings.TrimSpace(n.Title) == "" {
		return ErrMissingField("title")
	}
	return nil
}

// Info is the editable metadata of a paper.
type Info struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Reviewers []string `json:"reviewers"`
	Template  string   `json:"template,omitempty"`
}

// ErrMissingField is returned when a required paper field is empty.
type ErrMissingField string

func (e ErrMissingField) Error() string { return "missing field: " + string(e) }
