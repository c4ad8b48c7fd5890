package rules

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkweon/txscreen/internal/rule"
)

type Handler struct {
	svc *rule.Service
}

func NewHandler(svc *rule.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/", h.update)
	r.Delete("/", h.remove)
}

type ruleDTO struct {
	Class    string `json:"class"`
	Keywords string `json:"keywords"`
	Category string `json:"category"`
}

// updateRequest carries the identity triple of the rule to replace plus its
// new contents; rules have no surrogate id.
type updateRequest struct {
	Key  ruleDTO `json:"key"`
	Rule ruleDTO `json:"rule"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ruleList, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]ruleDTO, 0, len(ruleList))
	for _, rl := range ruleList {
		resp = append(resp, ruleDTO{
			Class:    string(rl.Class),
			Keywords: rl.Keywords,
			Category: rl.Category,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ruleDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.Create(r.Context(), rule.Rule{
		Class:    rule.Class(req.Class),
		Keywords: req.Keywords,
		Category: req.Category,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, rule.ErrInvalidClass) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := rule.Key{
		Class:    rule.Class(req.Key.Class),
		Keywords: req.Key.Keywords,
		Category: req.Key.Category,
	}

	err := h.svc.Update(r.Context(), key, rule.Rule{
		Class:    rule.Class(req.Rule.Class),
		Keywords: req.Rule.Keywords,
		Category: req.Rule.Category,
	})
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, rule.ErrInvalidClass):
			status = http.StatusBadRequest
		case errors.Is(err, rule.ErrNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	var req ruleDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := rule.Key{
		Class:    rule.Class(req.Class),
		Keywords: req.Keywords,
		Category: req.Category,
	}

	if err := h.svc.Delete(r.Context(), key); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, rule.ErrNotFound) {
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
