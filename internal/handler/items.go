package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// ---- expenses --------------------------------------------------------------

// AddExpense handles POST /trip/expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := decodeJSON(r, &e); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	expenses, err := s.items.AddExpense(e)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, expenses)
}

// ListExpenses handles GET /trip/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.items.ListExpenses()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

// UpdateExpense handles PUT /trip/expenses/{id}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := decodeJSON(r, &e); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	e.ID = chi.URLParam(r, "id")

	expenses, err := s.items.UpdateExpense(e)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

// DeleteExpense handles DELETE /trip/expenses/{id}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.items.DeleteExpense(chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- packing list ----------------------------------------------------------

// AddPackingItem handles POST /trip/packing.
func (s *Server) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	var item domain.PackingItem
	if err := decodeJSON(r, &item); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	items, err := s.items.AddPackingItem(item)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, items)
}

// ListPackingItems handles GET /trip/packing.
func (s *Server) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.ListPackingItems()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// UpdatePackingItem handles PUT /trip/packing/{id}.
func (s *Server) UpdatePackingItem(w http.ResponseWriter, r *http.Request) {
	var item domain.PackingItem
	if err := decodeJSON(r, &item); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	item.ID = chi.URLParam(r, "id")

	items, err := s.items.UpdatePackingItem(item)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// TogglePackingItem handles POST /trip/packing/{id}/toggle.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.TogglePackingItem(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// DeletePackingItem handles DELETE /trip/packing/{id}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	if err := s.items.DeletePackingItem(chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- documents -------------------------------------------------------------

// AddDocument handles POST /trip/documents.
func (s *Server) AddDocument(w http.ResponseWriter, r *http.Request) {
	var doc domain.DocumentItem
	if err := decodeJSON(r, &doc); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	docs, err := s.items.AddDocument(doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, docs)
}

// ListDocuments handles GET /trip/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.items.ListDocuments()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

// UpdateDocument handles PUT /trip/documents/{id}.
func (s *Server) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var doc domain.DocumentItem
	if err := decodeJSON(r, &doc); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	doc.ID = chi.URLParam(r, "id")

	docs, err := s.items.UpdateDocument(doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

// DeleteDocument handles DELETE /trip/documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.items.DeleteDocument(chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
