package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

// Store keeps every record in process memory. It implements all repository
// ports and is used for local runs (STORE_DRIVER=memory) and tests. Values
// are copied on the way in and out so callers never share slices with the
// store.
type Store struct {
	mu sync.RWMutex

	companies map[string]domain.Company
	campaigns map[string]domain.Campaign
	postSets  map[string]domain.PostSet // keyed by campaign id
	tickets   map[string]domain.UploadTicket
	files     map[string]domain.StoredFile

	now func() time.Time
}

var (
	_ port.CompanyRepository  = (*Store)(nil)
	_ port.CampaignRepository = (*Store)(nil)
	_ port.PostSetRepository  = (*Store)(nil)
	_ port.FileRepository     = (*Store)(nil)
)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		companies: make(map[string]domain.Company),
		campaigns: make(map[string]domain.Campaign),
		postSets:  make(map[string]domain.PostSet),
		tickets:   make(map[string]domain.UploadTicket),
		files:     make(map[string]domain.StoredFile),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateCompany stores a copy of c and sets its timestamps.
func (s *Store) CreateCompany(_ context.Context, c *domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.companies[c.ID]; exists {
		return fmt.Errorf("company %s already exists", c.ID)
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	stored.AssetFileRefs = slices.Clone(c.AssetFileRefs)
	s.companies[c.ID] = stored
	return nil
}

// GetCompany returns a copy of the company, or nil when it does not exist.
func (s *Store) GetCompany(_ context.Context, id string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.companies[id]
	if !exists {
		return nil, nil
	}
	c.AssetFileRefs = slices.Clone(c.AssetFileRefs)
	return &c, nil
}

// ListCompanies returns the companies of owner, oldest first. The result is
// never nil.
func (s *Store) ListCompanies(_ context.Context, owner domain.Principal) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Company, 0)
	for _, c := range s.companies {
		if c.OwnerID != owner {
			continue
		}
		c.AssetFileRefs = slices.Clone(c.AssetFileRefs)
		items = append(items, c)
	}
	slices.SortFunc(items, func(a, b domain.Company) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return items, nil
}

// CreateCampaign stores a copy of c. The referenced company must already
// exist, mirroring the foreign key of the Postgres schema.
func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[c.ID]; exists {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	if _, exists := s.companies[c.CompanyID]; !exists {
		return fmt.Errorf("campaign %s references unknown company %s", c.ID, c.CompanyID)
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	stored.SelectedPostIndices = slices.Clone(c.SelectedPostIndices)
	s.campaigns[c.ID] = stored
	return nil
}

// GetCampaign returns a copy of the campaign, or nil when it does not exist.
func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.campaigns[id]
	if !exists {
		return nil, nil
	}
	c.SelectedPostIndices = slices.Clone(c.SelectedPostIndices)
	return &c, nil
}

// ListCampaigns returns the campaigns of owner, oldest first.
func (s *Store) ListCampaigns(_ context.Context, owner domain.Principal) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Campaign, 0)
	for _, c := range s.campaigns {
		if c.OwnerID != owner {
			continue
		}
		c.SelectedPostIndices = slices.Clone(c.SelectedPostIndices)
		items = append(items, c)
	}
	slices.SortFunc(items, func(a, b domain.Campaign) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return items, nil
}

// UpdateStatus moves the campaign to status. It returns ErrNotFound for an
// unknown id and ErrInvalidTransition when the current status is not one
// of status.Predecessors().
func (s *Store) UpdateStatus(_ context.Context, id string, status domain.CampaignStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.transition(id, status)
	if err != nil {
		return err
	}
	s.campaigns[id] = c
	return nil
}

// SaveSelection stores indices and completes the campaign under the same
// rules as UpdateStatus. A nil selection is stored as empty.
func (s *Store) SaveSelection(_ context.Context, id string, indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.transition(id, domain.CampaignCompleted)
	if err != nil {
		return err
	}
	c.SelectedPostIndices = slices.Clone(indices)
	if c.SelectedPostIndices == nil {
		c.SelectedPostIndices = []int{}
	}
	s.campaigns[id] = c
	return nil
}

// transition must be called with s.mu held.
func (s *Store) transition(id string, to domain.CampaignStatus) (domain.Campaign, error) {
	c, exists := s.campaigns[id]
	if !exists {
		return c, port.ErrNotFound
	}
	if !c.Status.CanTransition(to) {
		return c, fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, c.Status, to)
	}
	c.Status = to
	c.UpdatedAt = s.now()
	return c, nil
}

// SaveGenerated upserts the post set and moves its campaign to generated
// under a single lock, so a selection recorded meanwhile either happens
// before (and the save is refused) or after (and sees the new posts).
func (s *Store) SaveGenerated(_ context.Context, ps *domain.PostSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.transition(ps.CampaignID, domain.CampaignGenerated)
	if err != nil {
		return err
	}
	s.campaigns[ps.CampaignID] = c

	now := s.now()
	if existing, exists := s.postSets[ps.CampaignID]; exists {
		ps.ID = existing.ID
		ps.CreatedAt = existing.CreatedAt
	} else {
		ps.CreatedAt = now
	}
	ps.UpdatedAt = now
	stored := *ps
	stored.Posts = slices.Clone(ps.Posts)
	s.postSets[ps.CampaignID] = stored
	return nil
}

// GetPostSet returns a copy of the campaign's post set, or nil before the
// first generation.
func (s *Store) GetPostSet(_ context.Context, campaignID string) (*domain.PostSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ps, exists := s.postSets[campaignID]
	if !exists {
		return nil, nil
	}
	ps.Posts = slices.Clone(ps.Posts)
	return &ps, nil
}

// UpdateEditPrompt replaces the edit prompt of the post at index. Other
// posts are left untouched.
func (s *Store) UpdateEditPrompt(_ context.Context, campaignID string, index int, prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, exists := s.postSets[campaignID]
	if !exists {
		return port.ErrNotFound
	}
	if !ps.HasIndex(index) {
		return fmt.Errorf("%w: post index %d out of range", port.ErrValidation, index)
	}
	ps.Posts = slices.Clone(ps.Posts)
	ps.Posts[index].EditPrompt = prompt
	ps.UpdatedAt = s.now()
	s.postSets[campaignID] = ps
	return nil
}

// CreateUploadTicket stores t under its token.
func (s *Store) CreateUploadTicket(_ context.Context, t domain.UploadTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tickets[t.Token]; exists {
		return fmt.Errorf("upload ticket already exists")
	}
	s.tickets[t.Token] = t
	return nil
}

// ConsumeUploadTicket removes and returns the ticket, or nil when the token
// is unknown or was already used.
func (s *Store) ConsumeUploadTicket(_ context.Context, token string) (*domain.UploadTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.tickets[token]
	if !exists {
		return nil, nil
	}
	delete(s.tickets, token)
	return &t, nil
}

// SaveFile stores a copy of f and sets its creation time.
func (s *Store) SaveFile(_ context.Context, f *domain.StoredFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.files[f.ID]; exists {
		return fmt.Errorf("file %s already exists", f.ID)
	}
	f.CreatedAt = s.now()
	stored := *f
	stored.Data = slices.Clone(f.Data)
	s.files[f.ID] = stored
	return nil
}

// GetFile returns a copy of the file, or nil when it does not exist.
func (s *Store) GetFile(_ context.Context, id string) (*domain.StoredFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, exists := s.files[id]
	if !exists {
		return nil, nil
	}
	f.Data = slices.Clone(f.Data)
	return &f, nil
}
