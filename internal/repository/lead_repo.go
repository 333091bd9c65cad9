package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/zone2fun/py-asset/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const submissionsCollection = "submissions"

// LeadRepository handles Firestore read/write for user-submitted leads.
type LeadRepository struct {
	client *firestore.Client
}

func NewLeadRepository(client *firestore.Client) *LeadRepository {
	return &LeadRepository{client: client}
}

// Create inserts a new lead and returns the store-assigned id.
func (r *LeadRepository) Create(ctx context.Context, lead model.Lead) (string, error) {
	ref, _, err := r.client.Collection(submissionsCollection).Add(ctx, lead)
	if err != nil {
		return "", fmt.Errorf("create lead: %w", err)
	}
	return ref.ID, nil
}

// List fetches every lead. Status filtering happens in the service layer:
// documents written before the workflow existed have no status field at all,
// so a Firestore equality filter on "pending" would silently miss them.
func (r *LeadRepository) List(ctx context.Context) ([]model.Lead, error) {
	iter := r.client.Collection(submissionsCollection).Documents(ctx)
	defer iter.Stop()

	var out []model.Lead
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate leads: %w", err)
		}
		var l model.Lead
		if err := doc.DataTo(&l); err != nil {
			return nil, fmt.Errorf("decode lead %s: %w", doc.Ref.ID, err)
		}
		l.ID = doc.Ref.ID
		out = append(out, l)
	}
	return out, nil
}

// Get fetches one lead by document id.
func (r *LeadRepository) Get(ctx context.Context, id string) (model.Lead, error) {
	snap, err := r.client.Collection(submissionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Lead{}, ErrNotFound
		}
		return model.Lead{}, fmt.Errorf("get lead %s: %w", id, err)
	}
	var l model.Lead
	if err := snap.DataTo(&l); err != nil {
		return model.Lead{}, fmt.Errorf("decode lead %s: %w", id, err)
	}
	l.ID = snap.Ref.ID
	return l, nil
}

// SetStatus writes the workflow status as a single-field update.
func (r *LeadRepository) SetStatus(ctx context.Context, id string, s model.LeadStatus) error {
	ref := r.client.Collection(submissionsCollection).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: string(s)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("set lead %s status: %w", id, err)
	}
	return nil
}
