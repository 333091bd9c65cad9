package lead

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zone2fun/py-asset/internal/business/media"
	"github.com/zone2fun/py-asset/internal/line"
	"github.com/zone2fun/py-asset/pkg/model"
)

type mockLeadStore struct {
	leads    map[string]model.Lead
	created  []model.Lead
	statuses map[string]model.LeadStatus
	err      error
}

func newMockLeadStore(leads ...model.Lead) *mockLeadStore {
	m := &mockLeadStore{
		leads:    make(map[string]model.Lead),
		statuses: make(map[string]model.LeadStatus),
	}
	for _, l := range leads {
		m.leads[l.ID] = l
	}
	return m
}

func (m *mockLeadStore) Create(_ context.Context, l model.Lead) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.created = append(m.created, l)
	return "lead-1", nil
}

func (m *mockLeadStore) List(_ context.Context) ([]model.Lead, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Lead
	for _, l := range m.leads {
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLeadStore) Get(_ context.Context, id string) (model.Lead, error) {
	l, ok := m.leads[id]
	if !ok {
		return model.Lead{}, errors.New("missing")
	}
	return l, nil
}

func (m *mockLeadStore) SetStatus(_ context.Context, id string, s model.LeadStatus) error {
	if m.err != nil {
		return m.err
	}
	m.statuses[id] = s
	return nil
}

type mockUploader struct {
	err   error
	calls int
}

func (m *mockUploader) Images(_ context.Context, folder string, files []media.File) ([]string, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = "https://cdn.example/" + folder + "/" + f.Name
	}
	return urls, nil
}

func testFile(name string) media.File {
	return media.File{Name: name, ContentType: "image/jpeg", Size: 100, Body: bytes.NewReader([]byte("x"))}
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:  "สมชาย",
		Phone: "0812345678",
		Title: "บ้านริมกว๊าน",
		Price: "1,500,000",
		Type:  model.TypeHouse,
		Files: []media.File{testFile("front.jpg"), testFile("back.jpg")},
	}
}

func newTestService(store Store, up Uploader) *Service {
	return NewService(store, up, line.NewBuilder("@phayao_asset"))
}

func TestSubmitHappyPath(t *testing.T) {
	store := newMockLeadStore()
	svc := newTestService(store, &mockUploader{})

	res, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.LeadID != "lead-1" {
		t.Errorf("lead id = %q", res.LeadID)
	}

	created := store.created[0]
	if created.Status != model.LeadPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if len(created.Images) != 2 {
		t.Fatalf("images = %v, want 2 urls", created.Images)
	}
	if created.Images[0] != "https://cdn.example/submissions/front.jpg" {
		t.Errorf("image order broken: %v", created.Images)
	}

	if !strings.HasPrefix(res.LineURL, "https://line.me/R/oaMessage/@phayao_asset/?") {
		t.Errorf("line url = %q", res.LineURL)
	}
	// Title and price appear percent-encoded in the handoff link.
	if strings.Contains(res.LineURL, " ") || !strings.Contains(res.LineURL, "1%2C500%2C000") {
		t.Errorf("line url not properly encoded: %q", res.LineURL)
	}
}

func TestSubmitUploadFailureAbortsBeforeWrite(t *testing.T) {
	store := newMockLeadStore()
	svc := newTestService(store, &mockUploader{err: errors.New("bucket down")})

	if _, err := svc.Submit(context.Background(), validInput()); err == nil {
		t.Fatal("expected upload failure to surface")
	}
	if len(store.created) != 0 {
		t.Fatal("lead written despite failed upload")
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitInput)
		wantErr error
	}{
		{"missing phone", func(in *SubmitInput) { in.Phone = "" }, ErrMissingContact},
		{"missing title", func(in *SubmitInput) { in.Title = "" }, ErrMissingTitle},
		{"no images", func(in *SubmitInput) { in.Files = nil }, ErrNoImages},
		{"bad type", func(in *SubmitInput) { in.Type = "Castle" }, ErrBadType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockLeadStore()
			up := &mockUploader{}
			in := validInput()
			tt.mutate(&in)

			_, err := newTestService(store, up).Submit(context.Background(), in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit error = %v, want %v", err, tt.wantErr)
			}
			if up.calls != 0 {
				t.Error("validation failure still attempted upload")
			}
		})
	}
}

func TestListTreatsAbsentStatusAsPending(t *testing.T) {
	store := newMockLeadStore(
		model.Lead{ID: "old", Title: "no status field", CreatedAt: time.Now().Add(-time.Hour)},
		model.Lead{ID: "p", Status: model.LeadPending, CreatedAt: time.Now()},
		model.Lead{ID: "c", Status: model.LeadContacted, CreatedAt: time.Now()},
	)
	svc := newTestService(store, &mockUploader{})

	pending, err := svc.List(context.Background(), "pending")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d leads, want 2 (absent status counts)", len(pending))
	}
	for _, l := range pending {
		if l.ID == "c" {
			t.Error("contacted lead leaked into pending filter")
		}
	}

	if _, err := svc.List(context.Background(), "rejected"); !errors.Is(err, ErrBadStatus) {
		t.Errorf("unknown filter error = %v", err)
	}
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	store := newMockLeadStore(model.Lead{ID: "l1", Status: model.LeadContractSigned})
	svc := newTestService(store, &mockUploader{})

	// Backward transitions are allowed on purpose.
	if err := svc.SetStatus(context.Background(), "l1", model.LeadPending); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if store.statuses["l1"] != model.LeadPending {
		t.Errorf("status = %q", store.statuses["l1"])
	}

	if err := svc.SetStatus(context.Background(), "l1", "archived"); !errors.Is(err, ErrBadStatus) {
		t.Errorf("invalid status error = %v", err)
	}
}

func TestSetStatusFailureSurfaces(t *testing.T) {
	store := newMockLeadStore(model.Lead{ID: "l1"})
	store.err = errors.New("write failed")
	svc := newTestService(store, &mockUploader{})

	if err := svc.SetStatus(context.Background(), "l1", model.LeadContacted); err == nil {
		t.Fatal("failed transition must be reported to the caller")
	}
}

func TestGetMaterializesDefaultStatus(t *testing.T) {
	store := newMockLeadStore(model.Lead{ID: "old"})
	svc := newTestService(store, &mockUploader{})

	l, err := svc.Get(context.Background(), "old")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if l.Status != model.LeadPending {
		t.Errorf("status = %q, want pending", l.Status)
	}
}
