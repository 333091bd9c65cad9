// Package lead implements the public submission pipeline and the manual
// follow-up workflow behind the admin console.
package lead

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/zone2fun/py-asset/internal/business/media"
	"github.com/zone2fun/py-asset/internal/line"
	"github.com/zone2fun/py-asset/pkg/model"
)

var (
	ErrMissingContact = errors.New("name and phone are required")
	ErrMissingTitle   = errors.New("title is required")
	ErrNoImages       = errors.New("at least one image is required")
	ErrBadType        = errors.New("unknown property type")
	ErrBadStatus      = errors.New("unknown lead status")
)

// Store is the persistence slice the service needs.
type Store interface {
	Create(ctx context.Context, lead model.Lead) (string, error)
	List(ctx context.Context) ([]model.Lead, error)
	Get(ctx context.Context, id string) (model.Lead, error)
	SetStatus(ctx context.Context, id string, s model.LeadStatus) error
}

// Uploader is the media capability the submission pipeline needs.
type Uploader interface {
	Images(ctx context.Context, folder string, files []media.File) ([]string, error)
}

// Service owns lead submission and workflow.
type Service struct {
	store    Store
	uploader Uploader
	line     *line.Builder
}

func NewService(store Store, uploader Uploader, lineBuilder *line.Builder) *Service {
	return &Service{store: store, uploader: uploader, line: lineBuilder}
}

// SubmitInput is the public submission form.
type SubmitInput struct {
	Name        string
	Phone       string
	Title       string
	Price       string
	Type        model.PropertyType
	Size        string
	Description string
	Latitude    *float64
	Longitude   *float64
	Files       []media.File
}

// SubmitResult is handed back to the caller once the pipeline completes.
type SubmitResult struct {
	LeadID  string `json:"leadId"`
	LineURL string `json:"lineUrl"`
}

// Submit runs the full pipeline: validate, upload every image (all or
// nothing), write the lead, build the LINE handoff link. An upload failure
// aborts before any lead is written, so no lead ever exists without its
// images. If the lead write fails after upload the blobs are orphaned;
// that cost is accepted and the caller just sees the failure.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if in.Name == "" || in.Phone == "" {
		return SubmitResult{}, ErrMissingContact
	}
	if in.Title == "" {
		return SubmitResult{}, ErrMissingTitle
	}
	if !model.ValidPropertyType(in.Type) {
		return SubmitResult{}, ErrBadType
	}
	if len(in.Files) == 0 {
		return SubmitResult{}, ErrNoImages
	}

	urls, err := s.uploader.Images(ctx, "submissions", in.Files)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("upload submission images: %w", err)
	}

	l := model.Lead{
		Name:        in.Name,
		Phone:       in.Phone,
		Title:       in.Title,
		Price:       in.Price,
		Type:        in.Type,
		Size:        in.Size,
		Description: in.Description,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Images:      urls,
		Status:      model.LeadPending,
	}
	id, err := s.store.Create(ctx, l)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("save lead: %w", err)
	}
	l.ID = id

	return SubmitResult{LeadID: id, LineURL: s.line.LeadHandoffURL(l)}, nil
}

// List returns leads newest first, optionally narrowed to one workflow
// status. Filtering happens here because stored leads may lack the status
// field entirely; those count as pending.
func (s *Service) List(ctx context.Context, statusFilter string) ([]model.Lead, error) {
	leads, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	if statusFilter != "" {
		want := model.LeadStatus(statusFilter)
		if !model.ValidLeadStatus(want) {
			return nil, ErrBadStatus
		}
		filtered := leads[:0]
		for _, l := range leads {
			if l.EffectiveStatus() == want {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

// Get fetches one lead with its effective status materialized.
func (s *Service) Get(ctx context.Context, id string) (model.Lead, error) {
	l, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Lead{}, err
	}
	l.Status = l.EffectiveStatus()
	return l, nil
}

// SetStatus moves a lead to any of the three workflow states. Transitions
// are intentionally unrestricted, including reverting contract_signed; a
// failure is returned to the caller so the console can report it.
func (s *Service) SetStatus(ctx context.Context, id string, status model.LeadStatus) error {
	if !model.ValidLeadStatus(status) {
		return ErrBadStatus
	}
	return s.store.SetStatus(ctx, id, status)
}
