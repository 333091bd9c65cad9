package model

import "time"

// PropertyType is the listing category shown to buyers.
type PropertyType string

const (
	TypeHouse     PropertyType = "House"
	TypeLand      PropertyType = "Land"
	TypeDormitory PropertyType = "Dormitory"
)

// ValidPropertyType reports whether t is one of the known categories.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeHouse, TypeLand, TypeDormitory:
		return true
	}
	return false
}

// ContentType classifies how a listing is presented.
type ContentType string

const (
	ContentPost  ContentType = "post"
	ContentVideo ContentType = "video"
)

// Listing lifecycle status.
const (
	StatusActive = "active"
	StatusSold   = "sold"
)

// Coordinates is an optional map pin for a listing or lead.
type Coordinates struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// Property is the core document stored in the `properties` collection.
type Property struct {
	ID           string       `json:"id,omitempty" firestore:"-"`
	Title        string       `json:"title" firestore:"title"`
	Price        float64      `json:"price" firestore:"price"`
	Location     string       `json:"location,omitempty" firestore:"location,omitempty"`
	Type         PropertyType `json:"type" firestore:"type"`
	Image        string       `json:"image" firestore:"image"`
	Images       []string     `json:"images,omitempty" firestore:"images,omitempty"`
	Description  string       `json:"description,omitempty" firestore:"description,omitempty"`
	Size         string       `json:"size,omitempty" firestore:"size,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
	ContactName  string       `json:"contactName,omitempty" firestore:"contactName,omitempty"`
	ContactPhone string       `json:"contactPhone,omitempty" firestore:"contactPhone,omitempty"`
	Status       string       `json:"status,omitempty" firestore:"status,omitempty"`
	Recommended  bool         `json:"recommended,omitempty" firestore:"recommended,omitempty"`
	ContentType  ContentType  `json:"contentType,omitempty" firestore:"contentType,omitempty"`
	VideoURL     string       `json:"videoUrl,omitempty" firestore:"videoUrl,omitempty"`
	ViewCount    int64        `json:"viewCount" firestore:"viewCount"`
	CreatedAt    time.Time    `json:"createdAt,omitempty" firestore:"createdAt,serverTimestamp"`

	// InquiryURL is derived per response, never stored. Empty for sold listings.
	InquiryURL string `json:"inquiryUrl,omitempty" firestore:"-"`
}

// Sold reports whether the listing has been marked sold, which disables
// the inquiry action everywhere the listing is rendered.
func (p Property) Sold() bool {
	return p.Status == StatusSold
}

// NormalizeImages re-establishes the cover invariant: the cover field always
// equals the first element of the ordered image list. An empty list clears
// the cover.
func (p *Property) NormalizeImages() {
	if len(p.Images) == 0 {
		p.Image = ""
		return
	}
	p.Image = p.Images[0]
}

// SetCover moves the image at idx to the front of the list and updates the
// cover field. Out-of-range indexes are ignored.
func (p *Property) SetCover(idx int) {
	if idx < 0 || idx >= len(p.Images) {
		return
	}
	if idx > 0 {
		img := p.Images[idx]
		p.Images = append(p.Images[:idx], p.Images[idx+1:]...)
		p.Images = append([]string{img}, p.Images...)
	}
	p.Image = p.Images[0]
}

// LeadStatus is the manual follow-up workflow for a submission.
type LeadStatus string

const (
	LeadPending        LeadStatus = "pending"
	LeadContacted      LeadStatus = "contacted"
	LeadContractSigned LeadStatus = "contract_signed"
)

// ValidLeadStatus reports whether s is one of the three workflow states.
// Transitions are deliberately unrestricted: an admin may set any state at
// any time, including reverting contract_signed.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadPending, LeadContacted, LeadContractSigned:
		return true
	}
	return false
}

// Lead is an unvetted submission stored in the `submissions` collection,
// awaiting manual follow-up before it may be promoted to a listing.
type Lead struct {
	ID          string       `json:"id,omitempty" firestore:"-"`
	Name        string       `json:"name" firestore:"name"`
	Phone       string       `json:"phone" firestore:"phone"`
	Title       string       `json:"title" firestore:"title"`
	Price       string       `json:"price" firestore:"price"`
	Type        PropertyType `json:"type" firestore:"type"`
	Size        string       `json:"size,omitempty" firestore:"size,omitempty"`
	Description string       `json:"description,omitempty" firestore:"description,omitempty"`
	Latitude    *float64     `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty" firestore:"longitude,omitempty"`
	Images      []string     `json:"images,omitempty" firestore:"images,omitempty"`
	Status      LeadStatus   `json:"status,omitempty" firestore:"status,omitempty"`
	CreatedAt   time.Time    `json:"createdAt,omitempty" firestore:"createdAt,serverTimestamp"`
}

// EffectiveStatus treats an absent status as pending. Early submissions were
// written without the field, so readers must apply the default everywhere.
func (l Lead) EffectiveStatus() LeadStatus {
	if l.Status == "" {
		return LeadPending
	}
	return l.Status
}
