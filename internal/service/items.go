package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tkramer/wayfare/backend/internal/domain"
	"github.com/tkramer/wayfare/backend/internal/repo"
)

// ItemsService implements CRUD for the flat trip collections: expenses,
// packing list, and the document toolbox. All three are plain lists with no
// cross-entity relationships, so the operations are intentionally uniform.
type ItemsService struct {
	trips repo.TripRepo
	newID func() string
	now   func() time.Time
}

// NewItemsService constructs an ItemsService backed by the provided TripRepo.
func NewItemsService(r repo.TripRepo) *ItemsService {
	return &ItemsService{
		trips: r,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ---- expenses --------------------------------------------------------------

// AddExpense appends an expense in insertion order (the ledger is never
// re-sorted).
func (s *ItemsService) AddExpense(e domain.Expense) ([]domain.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	e.ID = s.newID()

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.AddExpense: %w", err)
	}
	trip.Expenses = append(trip.Expenses, e)
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ItemsService.AddExpense: %w", err)
	}
	return trip.Expenses, nil
}

// ListExpenses returns the ledger in insertion order.
func (s *ItemsService) ListExpenses() ([]domain.Expense, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.ListExpenses: %w", err)
	}
	if trip.Expenses == nil {
		return []domain.Expense{}, nil
	}
	return trip.Expenses, nil
}

// UpdateExpense replaces the expense matching e.ID.
func (s *ItemsService) UpdateExpense(e domain.Expense) ([]domain.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.UpdateExpense: %w", err)
	}
	idx := -1
	for i := range trip.Expenses {
		if trip.Expenses[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("service.ItemsService.UpdateExpense: expense %s: %w", e.ID, domain.ErrNotFound)
	}
	trip.Expenses[idx] = e
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ItemsService.UpdateExpense: %w", err)
	}
	return trip.Expenses, nil
}

// DeleteExpense removes one expense by ID.
func (s *ItemsService) DeleteExpense(id string) error {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return fmt.Errorf("service.ItemsService.DeleteExpense: %w", err)
	}
	for i := range trip.Expenses {
		if trip.Expenses[i].ID == id {
			trip.Expenses = append(trip.Expenses[:i], trip.Expenses[i+1:]...)
			trip.UpdatedAt = s.now()
			if err := s.trips.SaveActive(trip); err != nil {
				return fmt.Errorf("service.ItemsService.DeleteExpense: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("service.ItemsService.DeleteExpense: expense %s: %w", id, domain.ErrNotFound)
}

// ---- packing list ----------------------------------------------------------

// AddPackingItem appends one checklist entry.
func (s *ItemsService) AddPackingItem(item domain.PackingItem) ([]domain.PackingItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	item.ID = s.newID()

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.AddPackingItem: %w", err)
	}
	trip.PackingList = append(trip.PackingList, item)
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ItemsService.AddPackingItem: %w", err)
	}
	return trip.PackingList, nil
}

// ListPackingItems returns the checklist in insertion order.
func (s *ItemsService) ListPackingItems() ([]domain.PackingItem, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.ListPackingItems: %w", err)
	}
	if trip.PackingList == nil {
		return []domain.PackingItem{}, nil
	}
	return trip.PackingList, nil
}

// UpdatePackingItem replaces the entry matching item.ID.
func (s *ItemsService) UpdatePackingItem(item domain.PackingItem) ([]domain.PackingItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.UpdatePackingItem: %w", err)
	}
	for i := range trip.PackingList {
		if trip.PackingList[i].ID == item.ID {
			trip.PackingList[i] = item
			trip.UpdatedAt = s.now()
			if err := s.trips.SaveActive(trip); err != nil {
				return nil, fmt.Errorf("service.ItemsService.UpdatePackingItem: %w", err)
			}
			return trip.PackingList, nil
		}
	}
	return nil, fmt.Errorf("service.ItemsService.UpdatePackingItem: item %s: %w", item.ID, domain.ErrNotFound)
}

// TogglePackingItem flips one entry's checked flag.
func (s *ItemsService) TogglePackingItem(id string) ([]domain.PackingItem, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.TogglePackingItem: %w", err)
	}
	for i := range trip.PackingList {
		if trip.PackingList[i].ID == id {
			trip.PackingList[i].Checked = !trip.PackingList[i].Checked
			trip.UpdatedAt = s.now()
			if err := s.trips.SaveActive(trip); err != nil {
				return nil, fmt.Errorf("service.ItemsService.TogglePackingItem: %w", err)
			}
			return trip.PackingList, nil
		}
	}
	return nil, fmt.Errorf("service.ItemsService.TogglePackingItem: item %s: %w", id, domain.ErrNotFound)
}

// DeletePackingItem removes one checklist entry by ID.
func (s *ItemsService) DeletePackingItem(id string) error {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return fmt.Errorf("service.ItemsService.DeletePackingItem: %w", err)
	}
	for i := range trip.PackingList {
		if trip.PackingList[i].ID == id {
			trip.PackingList = append(trip.PackingList[:i], trip.PackingList[i+1:]...)
			trip.UpdatedAt = s.now()
			if err := s.trips.SaveActive(trip); err != nil {
				return fmt.Errorf("service.ItemsService.DeletePackingItem: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("service.ItemsService.DeletePackingItem: item %s: %w", id, domain.ErrNotFound)
}

// ---- documents -------------------------------------------------------------

// AddDocument appends a toolbox entry (link or note).
func (s *ItemsService) AddDocument(doc domain.DocumentItem) ([]domain.DocumentItem, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	doc.ID = s.newID()
	doc.CreatedAt = s.now()

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.AddDocument: %w", err)
	}
	trip.Documents = append(trip.Documents, doc)
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ItemsService.AddDocument: %w", err)
	}
	return trip.Documents, nil
}

// ListDocuments returns the toolbox in insertion order.
func (s *ItemsService) ListDocuments() ([]domain.DocumentItem, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.ListDocuments: %w", err)
	}
	if trip.Documents == nil {
		return []domain.DocumentItem{}, nil
	}
	return trip.Documents, nil
}

// UpdateDocument replaces the entry matching doc.ID, keeping the original
// creation timestamp.
func (s *ItemsService) UpdateDocument(doc domain.DocumentItem) ([]domain.DocumentItem, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ItemsService.UpdateDocument: %w", err)
	}
	for i := range trip.Documents {
		if trip.Documents[i].ID == doc.ID {
			doc.CreatedAt = trip.Documents[i].CreatedAt
			trip.Documents[i] = doc
			trip.UpdatedAt = s.now()
			if err := s.trips.SaveActive(trip); err != nil {
				return nil, fmt.Errorf("service.ItemsService.UpdateDocument: %w", err)
			}
			return trip.Documents, nil
		}
	}
	return nil, fmt.Errorf("service.ItemsService.UpdateDocument: document %s: %w", doc.ID, domain.ErrNotFound)
}

// DeleteDocument removes one toolbox entry by ID.
func (s *ItemsService) DeleteDocument(id string) error {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return fmt.Errorf("service.ItemsService.DeleteDocument: %w", err)
	}
	for i := range trip.Documents {
		if trip.Documents[i].ID == id {
			trip.Documents = append(trip.Documents[:i], trip.Documents[i+1:]...)
			trip.UpdatedAt = s.now()
			if err := s.trips.SaveActive(trip); err != nil {
				return fmt.Errorf("service.ItemsService.DeleteDocument: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("service.ItemsService.DeleteDocument: document %s: %w", id, domain.ErrNotFound)
}

func validateExpense(e domain.Expense) error {
	if e.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: amount cannot be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(e.Currency) == "" {
		return fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	return nil
}
