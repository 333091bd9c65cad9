package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/zone2fun/py-asset/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a document id does not exist.
var ErrNotFound = errors.New("document not found")

const propertiesCollection = "properties"

// PropertyFilter narrows a listing query. Zero value means "everything".
type PropertyFilter struct {
	Type        model.PropertyType // equality filter on the type field
	VideoOnly   bool               // contentType == "video", ignores Type
	Recommended bool               // recommended == true
}

// PropertyRepository handles Firestore read/write for the properties collection.
type PropertyRepository struct {
	client *firestore.Client
}

func NewPropertyRepository(client *firestore.Client) *PropertyRepository {
	return &PropertyRepository{client: client}
}

// List fetches every property matching the filter. No pagination and no
// server-side sort; the catalog is small enough to order in memory.
func (r *PropertyRepository) List(ctx context.Context, filter PropertyFilter) ([]model.Property, error) {
	q := r.client.Collection(propertiesCollection).Query
	switch {
	case filter.VideoOnly:
		q = q.Where("contentType", "==", string(model.ContentVideo))
	case filter.Recommended:
		q = q.Where("recommended", "==", true)
	case filter.Type != "":
		q = q.Where("type", "==", string(filter.Type))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []model.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate properties: %w", err)
		}
		var p model.Property
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode property %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// Get fetches one property by document id.
func (r *PropertyRepository) Get(ctx context.Context, id string) (model.Property, error) {
	snap, err := r.client.Collection(propertiesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Property{}, ErrNotFound
		}
		return model.Property{}, fmt.Errorf("get property %s: %w", id, err)
	}
	var p model.Property
	if err := snap.DataTo(&p); err != nil {
		return model.Property{}, fmt.Errorf("decode property %s: %w", id, err)
	}
	p.ID = snap.Ref.ID
	return p, nil
}

// Create inserts a new property and returns the store-assigned id. The
// createdAt field carries a serverTimestamp tag, so the zero time is
// replaced by the backend's clock.
func (r *PropertyRepository) Create(ctx context.Context, p model.Property) (string, error) {
	ref, _, err := r.client.Collection(propertiesCollection).Add(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create property: %w", err)
	}
	return ref.ID, nil
}

// Patch merges a partial field update into an existing document.
// Last write wins at field granularity; there is no conflict detection.
func (r *PropertyRepository) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	ref := r.client.Collection(propertiesCollection).Doc(id)
	if _, err := ref.Set(ctx, fields, firestore.MergeAll); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("patch property %s: %w", id, err)
	}
	return nil
}

// Delete removes a property permanently. Uploaded media is not cleaned up.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(propertiesCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete property %s: %w", id, err)
	}
	return nil
}

// IncrementViews bumps the view counter server-side. The atomic transform
// keeps concurrent viewers from losing updates; a read-modify-write here
// would drop counts under load.
func (r *PropertyRepository) IncrementViews(ctx context.Context, id string) error {
	ref := r.client.Collection(propertiesCollection).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("increment views for %s: %w", id, err)
	}
	return nil
}
