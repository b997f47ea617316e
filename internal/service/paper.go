package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/paper"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

// PaperServiceOptions groups dependencies for PaperService.
type PaperServiceOptions struct {
	Backend ports.PaperBackend // Required
	Logger  *slog.Logger
}

// PaperService handles single-paper views: creation, viewer and metadata edits.
type PaperService struct {
	backend  ports.PaperBackend
	logger   *slog.Logger
	messages Messages
}

// NewPaperService constructs a PaperService.
func NewPaperService(opts PaperServiceOptions) *PaperService {
	if opts.Backend == nil {
		panic("PaperServiceOptions.Backend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PaperService{backend: opts.Backend, logger: logger}
}

// validationError lifts a domain validation failure into a 400.
func validationError(err error) error {
	var missing paper.ErrMissingField
	if errors.As(err, &missing) {
		return apperrors.ValidationField(string(missing), err.Error())
	}
	return apperrors.ValidationField("", err.Error())
}

// Create creates a paper. Missing fields fail locally with the same message
// as a backend 400.
func (s *PaperService) Create(ctx context.Context, sess *domainauth.Session, p paper.NewPaper) (ports.PaperRef, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Title = strings.TrimSpace(p.Title)

	var (
		ref ports.PaperRef
		err = p.Validate()
	)
	if err != nil {
		err = validationError(err)
	} else {
		ref, err = s.backend.Create(ctx, ports.CredentialsFor(*sess), p)
	}
	if err != nil {
		s.messages.Fail(sess, OpNewPaper, err)
		return ports.PaperRef{}, fmt.Errorf("create paper: %w", err)
	}
	s.logger.InfoContext(ctx, "paper created", "user", sess.UserName, "paper_id", ref.ID)
	return ref, nil
}

// PaperView is everything the viewer renders.
type PaperView struct {
	Info  paper.Info
	Pages []ports.CompiledPage
	// Compiled is false when the paper has no compilation yet.
	Compiled bool
}

// View fetches the paper metadata and its compiled pages concurrently.
// A missing compilation is not an error.
func (s *PaperService) View(ctx context.Context, sess *domainauth.Session, id string) (PaperView, error) {
	creds := ports.CredentialsFor(*sess)
	var view PaperView

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := s.backend.PaperInfo(gctx, creds, id)
		if err != nil {
			return err
		}
		view.Info = info
		return nil
	})
	g.Go(func() error {
		pages, err := s.backend.CompiledPages(gctx, creds, id)
		if apperrors.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		view.Pages = pages
		view.Compiled = len(pages) > 0
		return nil
	})

	if err := g.Wait(); err != nil {
		s.messages.Fail(sess, OpViewPaper, err)
		return PaperView{}, fmt.Errorf("view paper %s: %w", id, err)
	}
	return view, nil
}

// Info returns the editable metadata of a paper.
func (s *PaperService) Info(ctx context.Context, sess *domainauth.Session, id string) (paper.Info, error) {
	info, err := s.backend.PaperInfo(ctx, ports.CredentialsFor(*sess), id)
	if err != nil {
		s.messages.Fail(sess, OpEditPaper, err)
		return paper.Info{}, fmt.Errorf("get paper info %s: %w", id, err)
	}
	return info, nil
}

// Update saves edited metadata.
func (s *PaperService) Update(ctx context.Context, sess *domainauth.Session, info paper.Info) error {
	info.Name = strings.TrimSpace(info.Name)
	info.Title = strings.TrimSpace(info.Title)

	var err error
	switch {
	case info.Name == "":
		err = apperrors.ValidationField("name", "missing field: name")
	case info.Title == "":
		err = apperrors.ValidationField("title", "missing field: title")
	default:
		err = s.backend.UpdatePaperInfo(ctx, ports.CredentialsFor(*sess), info)
	}
	if err != nil {
		s.messages.Fail(sess, OpEditPaper, err)
		return fmt.Errorf("update paper %s: %w", info.ID, err)
	}
	s.messages.Clear(sess)
	s.messages.Info(sess, InfoPaperSaved)
	return nil
}

// CompiledPDF streams the compiled document. Callers close the reader.
func (s *PaperService) CompiledPDF(ctx context.Context, sess *domainauth.Session, id string) (io.ReadCloser, error) {
	rc, err := s.backend.CompiledPDF(ctx, ports.CredentialsFor(*sess), id)
	if err != nil {
		return nil, fmt.Errorf("compiled pdf %s: %w", id, err)
	}
	return rc, nil
}
