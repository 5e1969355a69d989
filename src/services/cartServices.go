package services

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/MuseoAndino/Catalogue-Backend/src/models"
)

// RequestSubmitter receives a finished research-loan request. Payment and
// request persistence live behind this collaborator.
type RequestSubmitter interface {
	Submit(items []models.CartItem, researcher models.ResearcherInfo) error
}

// LogSubmitter is the default submitter: it only logs the request.
type LogSubmitter struct{}

func (LogSubmitter) Submit(items []models.CartItem, researcher models.ResearcherInfo) error {
	total := 0
	for _, item := range items {
		total += item.EstimatedCost
	}
	log.Printf("Research request submitted by %s (%s): %d artifacts, estimated total %d\n",
		researcher.FullName, researcher.Institution, len(items), total)
	return nil
}

// CartService keeps one in-memory research cart per owner. The owner key is
// the authenticated user id or an anonymous session id; carts do not survive
// a restart.
type CartService struct {
	submitter RequestSubmitter
	carts     map[string][]models.CartItem
	mutex     sync.RWMutex
}

func NewCartService(submitter RequestSubmitter) *CartService {
	if submitter == nil {
		submitter = LogSubmitter{}
	}
	return &CartService{
		submitter: submitter,
		carts:     make(map[string][]models.CartItem),
	}
}

// AddToCart appends a cart item for the artifact with the weekly default
// rate. Adding an artifact that is already in the cart is a no-op.
func (s *CartService) AddToCart(owner string, artifact *models.ArtifactModel) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, item := range s.carts[owner] {
		if item.ArtifactID == artifact.ID {
			return
		}
	}

	s.carts[owner] = append(s.carts[owner], models.CartItem{
		ArtifactID:      artifact.ID,
		Title:           artifact.Title,
		AccessionNumber: artifact.AccessionNumber,
		RentalPeriod: models.RentalPeriod{
			Duration: models.DurationWeekly,
		},
		EstimatedCost: models.WeeklyRate,
	})
}

// RemoveFromCart deletes the matching item; absent ids are a no-op.
func (s *CartService) RemoveFromCart(owner string, artifactID int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	items := s.carts[owner]
	kept := items[:0]
	for _, item := range items {
		if item.ArtifactID != artifactID {
			kept = append(kept, item)
		}
	}
	s.carts[owner] = kept
}

// UpdateRentalPeriod replaces the item's rental period and recomputes the
// estimated cost from the duration tier.
func (s *CartService) UpdateRentalPeriod(owner string, artifactID int, period models.RentalPeriod) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	items := s.carts[owner]
	for i := range items {
		if items[i].ArtifactID == artifactID {
			items[i].RentalPeriod = period
			items[i].EstimatedCost = models.RentalCost(period.Duration)
			return
		}
	}
}

// UpdateSpecialRequirements replaces the item's special-requirements text.
func (s *CartService) UpdateSpecialRequirements(owner string, artifactID int, requirements string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	items := s.carts[owner]
	for i := range items {
		if items[i].ArtifactID == artifactID {
			items[i].SpecialRequirements = requirements
			return
		}
	}
}

// ClearCart empties the owner's cart.
func (s *CartService) ClearCart(owner string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.carts, owner)
}

// GetCartItems returns a copy of the owner's cart.
func (s *CartService) GetCartItems(owner string) []models.CartItem {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]models.CartItem, len(s.carts[owner]))
	copy(items, s.carts[owner])
	return items
}

// GetTotalCost sums the estimated costs of the owner's cart.
func (s *CartService) GetTotalCost(owner string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, item := range s.carts[owner] {
		total += item.EstimatedCost
	}
	return total
}

// SubmitCart hands the cart to the request submitter and clears it. The
// cart is left untouched when the submitter fails.
func (s *CartService) SubmitCart(owner string, researcher models.ResearcherInfo) error {
	if strings.TrimSpace(researcher.FullName) == "" {
		return errors.New("researcher name is required")
	}

	items := s.GetCartItems(owner)
	if len(items) == 0 {
		return errors.New("cart is empty")
	}

	if err := s.submitter.Submit(items, researcher); err != nil {
		return err
	}

	s.ClearCart(owner)
	return nil
}
