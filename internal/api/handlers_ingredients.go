package api

import (
	"encoding/json"
	"net/http"

	"recipeclip/internal/ingredient"
	"recipeclip/internal/recipe"
)

type ingredientLinesRequest struct {
	Ingredients []string `json:"ingredients"`
}

// handleParseIngredients parses raw ingredient lines into structured
// quantity/unit/name/note records. Section header lines pass through
// with only their original text set.
func (s *Server) handleParseIngredients(w http.ResponseWriter, r *http.Request) {
	var req ingredientLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Ingredients) == 0 {
		jsonError(w, "ingredients are required", http.StatusBadRequest)
		return
	}

	parsed := make([]recipe.ParsedIngredient, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		parsed = append(parsed, ingredient.Parse(line))
	}
	writeJSON(w, http.StatusOK, map[string]any{"ingredients": parsed})
}

type scaleRequest struct {
	Ingredients []string `json:"ingredients"`
	Ratio       float64  `json:"ratio"`
}

// handleScaleIngredients rewrites ingredient lines at a serving ratio.
// Ratio 1 returns each line byte-for-byte unchanged; quantity-less
// lines are never altered. Header lines pass through untouched.
func (s *Server) handleScaleIngredients(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Ingredients) == 0 {
		jsonError(w, "ingredients are required", http.StatusBadRequest)
		return
	}
	if req.Ratio <= 0 {
		jsonError(w, "ratio must be positive", http.StatusBadRequest)
		return
	}

	scaled := make([]string, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		if recipe.IsHeader(line) {
			scaled = append(scaled, line)
			continue
		}
		scaled = append(scaled, ingredient.Scale(ingredient.Parse(line), req.Ratio))
	}
	writeJSON(w, http.StatusOK, map[string]any{"ingredients": scaled})
}

// handleGroupIngredients buckets ingredient lines into shopping
// categories. Section headers and blank lines are skipped; each item
// keeps its index in the submitted list.
func (s *Server) handleGroupIngredients(w http.ResponseWriter, r *http.Request) {
	var req ingredientLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Ingredients) == 0 {
		jsonError(w, "ingredients are required", http.StatusBadRequest)
		return
	}

	groups := ingredient.GroupIngredients(req.Ingredients)
	writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}
