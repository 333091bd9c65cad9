// Package catalog implements listing retrieval, ordering and admin mutation.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/zone2fun/py-asset/internal/line"
	"github.com/zone2fun/py-asset/internal/repository"
	"github.com/zone2fun/py-asset/pkg/model"
	"github.com/zone2fun/py-asset/pkg/util"
)

// Category selects the working set on the listing page. All known property
// types plus "All" and the "Video" pseudo-category, which matches on content
// classification instead of type.
type Category string

const (
	CategoryAll   Category = "All"
	CategoryVideo Category = "Video"
)

// ParseCategory maps a query parameter onto a category. Empty means All.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "", string(CategoryAll):
		return CategoryAll, nil
	case string(CategoryVideo):
		return CategoryVideo, nil
	}
	if model.ValidPropertyType(model.PropertyType(s)) {
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) filter() repository.PropertyFilter {
	switch c {
	case CategoryAll:
		return repository.PropertyFilter{}
	case CategoryVideo:
		return repository.PropertyFilter{VideoOnly: true}
	default:
		return repository.PropertyFilter{Type: model.PropertyType(c)}
	}
}

// matches applies the category to an in-memory listing, used for the seed
// fallback so both paths agree on what a category means.
func (c Category) matches(p model.Property) bool {
	switch c {
	case CategoryAll:
		return true
	case CategoryVideo:
		return p.ContentType == model.ContentVideo
	default:
		return p.Type == model.PropertyType(c)
	}
}

// Validation failures reported before any write is attempted.
var (
	ErrNoImages         = errors.New("at least one image is required")
	ErrVideoCoverCount  = errors.New("video listings take exactly one cover image")
	ErrVideoURLRequired = errors.New("video listings require a video file or URL")
	ErrBadType          = errors.New("unknown property type")
	ErrBadStatus        = errors.New("status must be active or sold")
)

// ValidateMedia checks the image/video constraints for a listing before any
// upload is attempted: at least one image, and video listings take exactly
// one cover image plus a video.
func ValidateMedia(ct model.ContentType, imageCount int, hasVideo bool) error {
	if imageCount == 0 {
		return ErrNoImages
	}
	if ct == model.ContentVideo {
		if imageCount != 1 {
			return ErrVideoCoverCount
		}
		if !hasVideo {
			return ErrVideoURLRequired
		}
	}
	return nil
}

// PropertyStore is the slice of the repository the service needs. Narrowed
// to an interface so tests can swap in an in-memory double.
type PropertyStore interface {
	List(ctx context.Context, filter repository.PropertyFilter) ([]model.Property, error)
	Get(ctx context.Context, id string) (model.Property, error)
	Create(ctx context.Context, p model.Property) (string, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

// Service owns the property catalog.
type Service struct {
	store PropertyStore
	line  *line.Builder
}

func NewService(store PropertyStore, lineBuilder *line.Builder) *Service {
	return &Service{store: store, line: lineBuilder}
}

// List returns the catalog for a category, sorted. A backend failure
// degrades to the static seed list filtered the same way; it never errors,
// so callers cannot tell "empty" from "unavailable". That trade-off keeps
// the listing page rendering no matter what.
func (s *Service) List(ctx context.Context, cat Category, key SortKey) []model.Property {
	props, err := s.store.List(ctx, cat.filter())
	if err != nil {
		log.Printf("warning: list properties (%s): %v, serving seed catalog", cat, err)
		props = s.seedFor(cat)
	}
	Sort(props, key)
	for i := range props {
		s.attachInquiry(&props[i])
	}
	return props
}

// Recommended returns the curated rail for the home page. Errors degrade to
// an empty rail rather than the seed list; the section simply doesn't render.
func (s *Service) Recommended(ctx context.Context) []model.Property {
	props, err := s.store.List(ctx, repository.PropertyFilter{Recommended: true})
	if err != nil {
		log.Printf("warning: list recommended properties: %v", err)
		return nil
	}
	Sort(props, SortNewest)
	for i := range props {
		s.attachInquiry(&props[i])
	}
	return props
}

// Get fetches one listing, falling back to the seed catalog for the
// hardcoded demo ids. The boolean is false when the id is unknown anywhere.
func (s *Service) Get(ctx context.Context, id string) (model.Property, bool) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("warning: get property %s: %v", id, err)
		}
		for _, seed := range s.seedFor(CategoryAll) {
			if seed.ID == id {
				s.attachInquiry(&seed)
				return seed, true
			}
		}
		return model.Property{}, false
	}
	s.attachInquiry(&p)
	return p, true
}

// RecordView bumps the view counter. Fire-and-forget: failures are logged
// and swallowed so they never block the detail page.
func (s *Service) RecordView(ctx context.Context, id string) {
	if err := s.store.IncrementViews(ctx, id); err != nil {
		log.Printf("warning: record view for %s: %v", id, err)
	}
}

// CreateInput is the admin create form after media has been uploaded.
type CreateInput struct {
	Title       string
	Price       string
	Location    string
	Type        model.PropertyType
	Size        string
	Description string
	Coordinates *model.Coordinates
	ContentType model.ContentType
	VideoURL    string
	Images      []string
	Recommended bool
	Status      string
	ViewCount   int64
}

// Create validates and inserts a new listing. Status defaults to active and
// the view counter to zero unless the input overrides them.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if !model.ValidPropertyType(in.Type) {
		return "", ErrBadType
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = model.ContentPost
	}
	if err := ValidateMedia(contentType, len(in.Images), in.VideoURL != ""); err != nil {
		return "", err
	}
	status := in.Status
	if status == "" {
		status = model.StatusActive
	}
	if status != model.StatusActive && status != model.StatusSold {
		return "", ErrBadStatus
	}

	p := model.Property{
		Title:       in.Title,
		Price:       util.ParsePrice(in.Price),
		Location:    in.Location,
		Type:        in.Type,
		Images:      in.Images,
		Description: in.Description,
		Size:        in.Size,
		Coordinates: in.Coordinates,
		Status:      status,
		Recommended: in.Recommended,
		ContentType: contentType,
		VideoURL:    in.VideoURL,
		ViewCount:   in.ViewCount,
	}
	p.NormalizeImages()

	id, err := s.store.Create(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create listing: %w", err)
	}
	return id, nil
}

// PatchInput is a partial admin edit. Nil fields are left untouched.
type PatchInput struct {
	Title       *string
	Price       *string
	Location    *string
	Type        *model.PropertyType
	Size        *string
	Description *string
	Status      *string
	Recommended *bool
	ContentType *model.ContentType
	VideoURL    *string
	Images      *[]string
	Coordinates *model.Coordinates
}

// Update merges a partial patch into an existing listing. When the image
// list changed the cover is recomputed as its first element before
// persisting, keeping the cover invariant server-side.
func (s *Service) Update(ctx context.Context, id string, in PatchInput) error {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Price != nil {
		fields["price"] = util.ParsePrice(*in.Price)
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Type != nil {
		if !model.ValidPropertyType(*in.Type) {
			return ErrBadType
		}
		fields["type"] = string(*in.Type)
	}
	if in.Size != nil {
		fields["size"] = *in.Size
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		if *in.Status != model.StatusActive && *in.Status != model.StatusSold {
			return ErrBadStatus
		}
		fields["status"] = *in.Status
	}
	if in.Recommended != nil {
		fields["recommended"] = *in.Recommended
	}
	if in.ContentType != nil {
		fields["contentType"] = string(*in.ContentType)
	}
	if in.VideoURL != nil {
		fields["videoUrl"] = *in.VideoURL
	}
	if in.Images != nil {
		imgs := *in.Images
		fields["images"] = imgs
		cover := ""
		if len(imgs) > 0 {
			cover = imgs[0]
		}
		fields["image"] = cover
	}
	if in.Coordinates != nil {
		fields["coordinates"] = map[string]interface{}{
			"lat": in.Coordinates.Lat,
			"lng": in.Coordinates.Lng,
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return s.store.Patch(ctx, id, fields)
}

// SetCover promotes the image at idx to the front of the listing's image
// list and persists the reordered list plus the recomputed cover.
func (s *Service) SetCover(ctx context.Context, id string, idx int) error {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(p.Images) {
		return fmt.Errorf("cover index %d out of range", idx)
	}
	p.SetCover(idx)
	return s.store.Patch(ctx, id, map[string]interface{}{
		"images": p.Images,
		"image":  p.Image,
	})
}

// Delete removes a listing permanently. Media in the bucket is not touched.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) seedFor(cat Category) []model.Property {
	var out []model.Property
	for _, p := range SeedProperties() {
		if cat.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// attachInquiry derives the LINE deep link for a listing. Sold listings get
// none, which disables the inquiry action in every surface that renders them.
func (s *Service) attachInquiry(p *model.Property) {
	if s.line == nil || p.Sold() {
		p.InquiryURL = ""
		return
	}
	p.InquiryURL = s.line.PropertyInquiryURL(*p)
}
