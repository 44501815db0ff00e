package ioserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safebite/safebite/pkg/detect"
	"github.com/safebite/safebite/pkg/product"
	"github.com/safebite/safebite/pkg/profile"
)

// defaultSearchLimit bounds suggestion lists for display.
const defaultSearchLimit = 15

type detectedPayload struct {
	ID   string `json:"id"`
	Lang string `json:"lang,omitempty"`
	Name string `json:"name"`
}

type scanPayload struct {
	Barcode              string            `json:"barcode"`
	ProductName          string            `json:"product_name,omitempty"`
	IngredientsAvailable bool              `json:"ingredients_available"`
	Detected             []detectedPayload `json:"detected"`
	Safe                 bool              `json:"safe"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"entries": s.tx.Len(),
	})
}

// handleSearch serves search-as-you-type suggestions.
func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	locale := c.DefaultQuery("lang", "en")

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	suggestions := s.tx.Search(query, locale)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// handleIngredient resolves display name and categories for one id.
func (s *Server) handleIngredient(c *gin.Context) {
	id := c.Param("id")
	lang := c.Query("lang")

	var prof profile.Profile
	if user := c.Query("user"); user != "" {
		p, err := s.profiles.Get(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "profile store unavailable"})
			return
		}
		prof = p
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         id,
		"name":       s.tx.DisplayName(id, lang),
		"categories": profile.CategoriesOf(s.tx, id, prof),
	})
}

// handleScan looks up a product, parses its declaration and reports
// which of the user's selected avoid-ingredients it contains. A product
// without usable ingredient information is a distinct outcome from a
// clean scan: ingredients_available false, safe false.
func (s *Server) handleScan(c *gin.Context) {
	barcode := c.Param("barcode")
	user := c.Query("user")

	prof := profile.Profile{}
	if user != "" {
		p, err := s.profiles.Get(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "profile store unavailable"})
			return
		}
		prof = p
	}

	prod, err := s.products.Lookup(c.Request.Context(), barcode)
	if errors.Is(err, product.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "product lookup failed"})
		return
	}

	payload := scanPayload{
		Barcode:     prod.Barcode,
		ProductName: prod.Name,
		Detected:    []detectedPayload{},
	}

	detected, err := s.detector.DetectProduct(prod, prof)
	if errors.Is(err, detect.ErrNoIngredientData) {
		// Unknown risk, not confirmed safe.
		c.JSON(http.StatusOK, payload)
		return
	}

	payload.IngredientsAvailable = true
	payload.Safe = len(detected) == 0
	for _, d := range detected {
		payload.Detected = append(payload.Detected, detectedPayload{
			ID:   d.ID,
			Lang: d.Lang,
			Name: s.tx.DisplayName(d.ID, d.Lang),
		})
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) handleGetProfile(c *gin.Context) {
	user := c.Param("user")
	p, err := s.profiles.Get(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile store unavailable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// handlePutProfile replaces the whole profile. There is no partial
// patch; the store contract is replace-not-merge.
func (s *Server) handlePutProfile(c *gin.Context) {
	user := c.Param("user")

	var p profile.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed profile"})
		return
	}
	for id, e := range p {
		if e.Category != "" && !e.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "unknown category for ingredient " + id,
			})
			return
		}
	}

	if err := s.profiles.Put(c.Request.Context(), user, p); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile store unavailable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteIngredient(c *gin.Context) {
	user := c.Param("user")
	id := c.Param("id")

	if err := s.profiles.Delete(c.Request.Context(), user, id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile store unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleUndo(c *gin.Context) {
	user := c.Param("user")

	id, err := s.profiles.Undo(c.Request.Context(), user)
	if errors.Is(err, profile.ErrNothingToUndo) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing to undo"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": id})
}
