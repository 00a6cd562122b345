package memory

import (
	"context"
	"sync"

	"listing-service/internal/core/domain"
)

// ListingStorage is the in-memory implementation of the listing collection.
// Insertion order is stable: Add appends, Update replaces in place. All
// reads return copies, and Find evaluates the predicate engine against a
// snapshot taken under the lock, so a reader never pairs filters with a
// collection state that changed mid-scan.
type ListingStorage struct {
	mu       sync.RWMutex
	listings []domain.Listing
	byID     map[string]int
}

// NewListingStorage creates a storage pre-populated with the given
// listings. Seed entries are trusted to carry ids and creation times.
func NewListingStorage(seed []domain.Listing) *ListingStorage {
	s := &ListingStorage{
		listings: make([]domain.Listing, 0, len(seed)),
		byID:     make(map[string]int, len(seed)),
	}
	for _, l := range seed {
		s.byID[l.ID] = len(s.listings)
		s.listings = append(s.listings, copyListing(l))
	}
	return s
}

// copyListing detaches the slices and pointers a listing carries so callers
// can never mutate stored state through a returned value.
func copyListing(l domain.Listing) domain.Listing {
	c := l
	c.Images = append([]string(nil), l.Images...)
	c.Features = append([]string(nil), l.Features...)
	if l.Agents != nil {
		c.Agents = append([]domain.ListingAgent(nil), l.Agents...)
	}
	if l.ParkingSpaces != nil {
		v := *l.ParkingSpaces
		c.ParkingSpaces = &v
	}
	if l.WorkProgress != nil {
		v := *l.WorkProgress
		c.WorkProgress = &v
	}
	if l.DeliveryDate != nil {
		v := *l.DeliveryDate
		c.DeliveryDate = &v
	}
	if l.Location.Lat != nil {
		v := *l.Location.Lat
		c.Location.Lat = &v
	}
	if l.Location.Lng != nil {
		v := *l.Location.Lng
		c.Location.Lng = &v
	}
	return c
}

func (s *ListingStorage) snapshotLocked() []domain.Listing {
	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, copyListing(l))
	}
	return out
}

func (s *ListingStorage) List(ctx context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(), nil
}

func (s *ListingStorage) Find(ctx context.Context, filters domain.ListingFilters) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ApplyFilters(s.snapshotLocked(), filters), nil
}

func (s *ListingStorage) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	l := copyListing(s.listings[idx])
	return &l, nil
}

func (s *ListingStorage) Add(ctx context.Context, listing domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[listing.ID]; exists {
		return domain.NewValidationError("id", "already in use")
	}
	s.byID[listing.ID] = len(s.listings)
	s.listings = append(s.listings, copyListing(listing))
	return nil
}

func (s *ListingStorage) Update(ctx context.Context, listing domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[listing.ID]
	if !ok {
		return domain.ErrListingNotFound
	}

	// Position and creation time survive the update.
	createdAt := s.listings[idx].CreatedAt
	next := copyListing(listing)
	next.CreatedAt = createdAt
	s.listings[idx] = next
	return nil
}

func (s *ListingStorage) AttachAgent(ctx context.Context, listingID string, agent domain.ListingAgent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[listingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	s.listings[idx].Agents = append(s.listings[idx].Agents, agent)
	return nil
}
