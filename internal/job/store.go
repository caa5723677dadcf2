package job

import (
	"fmt"
	"sync"
	"time"

	"github.com/gosimple/slug"
	"github.com/segmentio/ksuid"
)

// Store holds the authoritative listing collection for the current
// process session. It is seeded at start-up, grows by prepending and
// is never persisted. Handlers run concurrently, so access is guarded
// even though there is a single logical writer.
type Store struct {
	mu       sync.RWMutex
	listings []Listing
}

func NewStore(seed []Listing) *Store {
	listings := make([]Listing, len(seed))
	copy(listings, seed)
	return &Store{listings: listings}
}

// NewListing builds a Listing out of a validated submission, minting a
// collision-resistant identifier and a URL slug.
func NewListing(rq *ListingRq, now time.Time) Listing {
	salary := fmt.Sprintf("ZMW %s - ZMW %s", comma(rq.SalaryMin), comma(rq.SalaryMax))
	return Listing{
		ID:          ksuid.New().String(),
		Slug:        slug.Make(fmt.Sprintf("%s %s", rq.Title, rq.Company)),
		Title:       rq.Title,
		Company:     rq.Company,
		LogoURL:     rq.LogoURL,
		Location:    fmt.Sprintf("%s, %s", rq.City, rq.Province),
		Salary:      salary,
		Type:        rq.Type,
		Description: rq.Description,
		Tags:        rq.Tags,
		PostedDate:  now,
		Details: Details{
			Tasks:              splitLines(rq.Tasks),
			TaskExamples:       splitLines(rq.TaskExamples),
			WhoWeAreLookingFor: splitLines(rq.WhoWeAreLookingFor),
			WillBeAPlus:        splitLines(rq.WillBeAPlus),
			WhatWeOffer:        splitLines(rq.WhatWeOffer),
		},
	}
}

// Add prepends a listing so the collection stays newest-first.
func (s *Store) Add(l Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append([]Listing{l}, s.listings...)
}

// List returns a copy of the full collection; callers are free to
// filter and sort it without synchronisation.
func (s *Store) List() []Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

func (s *Store) ByID(id string) (Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

func (s *Store) BySlug(sl string) (Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.Slug == sl {
			return l, true
		}
	}
	return Listing{}, false
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

// NewLastWeekOrMonth reports how many listings were posted in the last
// 7 and 30 days, for the landing page counters.
func (s *Store) NewLastWeekOrMonth(now time.Time) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var week, month int
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)
	for _, l := range s.listings {
		if l.PostedDate.After(weekAgo) {
			week++
		}
		if l.PostedDate.After(monthAgo) {
			month++
		}
	}
	return week, month
}
