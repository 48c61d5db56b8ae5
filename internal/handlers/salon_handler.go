package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/dto"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/httpresp"
	"github.com/nailnav/nailnav/internal/infra/cache"
	"github.com/nailnav/nailnav/internal/models"
)

const (
	defaultRadiusKm = 25.0
	maxRadiusKm     = 200.0
	viewTimeout     = 5 * time.Second
)

// ======================================================
// HANDLER
// ======================================================

type SalonHandler struct {
	repo  salon.Repository
	cache *cache.Cache
	log   *zap.Logger
	now   func() time.Time
}

// NewSalonHandler accepts a nil cache; featured results are then always loaded.
func NewSalonHandler(repo salon.Repository, c *cache.Cache, log *zap.Logger) *SalonHandler {
	return &SalonHandler{repo: repo, cache: c, log: log, now: time.Now}
}

// ======================================================
// REQUESTS
// ======================================================

type LocationSearchRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	RadiusKm  float64  `json:"radius_km"`
	Limit     int      `json:"limit"`
}

// ======================================================
// LIST
// ======================================================

func (h *SalonHandler) List(c *gin.Context) {
	f := salon.ListFilter{
		Query:     c.Query("q"),
		City:      c.Query("city"),
		StateCode: c.Query("state"),
		Services:  c.QueryArray("service"),
		Verified:  queryBool(c, "verified"),
		WalkIns:   queryBool(c, "walk_ins"),
		Parking:   queryBool(c, "parking"),
		Limit:     queryInt(c, "limit", salon.DefaultListLimit),
		Offset:    queryInt(c, "offset", 0),
	}

	list, err := h.repo.ListPublished(c.Request.Context(), f)
	if err != nil {
		h.log.Error("list salons failed", zap.Error(err))
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}

	cards := dto.NewSalonCards(list)
	httpresp.List(c, "salons", cards)
}

// ======================================================
// LOCATION SEARCH
// ======================================================

func (h *SalonHandler) SearchByLocation(c *gin.Context) {
	var req LocationSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "latitude and longitude are required")
		return
	}

	q := salon.LocationQuery{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusKm:  req.RadiusKm,
		Limit:     req.Limit,
	}
	if q.RadiusKm <= 0 {
		q.RadiusKm = defaultRadiusKm
	}
	if q.RadiusKm > maxRadiusKm {
		q.RadiusKm = maxRadiusKm
	}
	if q.Limit <= 0 || q.Limit > salon.MaxListLimit {
		q.Limit = salon.DefaultListLimit
	}

	list, err := h.repo.SearchByLocation(c.Request.Context(), q)
	if err != nil {
		h.log.Error("location search failed", zap.Error(err))
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}

	cards := dto.NewNearbyCards(list)
	httpresp.List(c, "salons", cards)
}

// ======================================================
// FEATURED
// ======================================================

func (h *SalonHandler) Featured(c *gin.Context) {
	limit := queryInt(c, "limit", salon.DefaultFeaturedLimit)
	if limit <= 0 || limit > salon.MaxListLimit {
		limit = salon.DefaultFeaturedLimit
	}

	ctx := c.Request.Context()
	cards, err := cache.Remember(ctx, h.cache, fmt.Sprintf("salons:featured:%d", limit),
		func() ([]dto.SalonCard, error) {
			list, err := h.repo.Featured(ctx, limit)
			if err != nil {
				return nil, err
			}
			return dto.NewSalonCards(list), nil
		})
	if err != nil {
		h.log.Error("featured salons failed", zap.Error(err))
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}

	httpresp.List(c, "salons", cards)
}

// ======================================================
// DETAIL
// ======================================================

func (h *SalonHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		httperr.BadRequest(c, "slug_required", "Slug parameter is required")
		return
	}

	s, err := h.repo.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "salon_not_found", "Salon not found")
			return
		}
		h.log.Error("get salon failed", zap.String("slug", slug), zap.Error(err))
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}

	go h.countView(s.ID)

	c.JSON(http.StatusOK, gin.H{
		"salon":   dto.NewSalonDetail(s, h.now()),
		"success": true,
	})
}

func (h *SalonHandler) countView(id uint) {
	ctx, cancel := context.WithTimeout(context.Background(), viewTimeout)
	defer cancel()

	if err := h.repo.IncrementViews(ctx, id); err != nil {
		h.log.Warn("view count update failed", zap.Uint("salon_id", id), zap.Error(err))
	}
}

// ======================================================
// CITIES
// ======================================================

type cityResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	StateID    uint   `json:"state_id"`
	State      string `json:"state"`
	SalonCount int    `json:"salon_count"`
}

func (h *SalonHandler) Cities(c *gin.Context) {
	f := salon.CityFilter{
		Search:    c.Query("search"),
		StateCode: c.Query("state"),
		Limit:     queryInt(c, "limit", salon.DefaultCityLimit),
	}

	ctx := c.Request.Context()
	load := func() ([]cityResponse, error) {
		cities, err := h.repo.ListCities(ctx, f)
		if err != nil {
			return nil, err
		}
		return newCityResponses(cities), nil
	}

	var (
		out []cityResponse
		err error
	)
	// only the unfiltered per-state lists are worth caching
	if f.Search == "" {
		out, err = cache.Remember(ctx, h.cache, fmt.Sprintf("cities:%s:%d", f.StateCode, f.Limit), load)
	} else {
		out, err = load()
	}
	if err != nil {
		h.log.Error("list cities failed", zap.Error(err))
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}

	httpresp.List(c, "cities", out)
}

func newCityResponses(cities []models.City) []cityResponse {
	out := make([]cityResponse, len(cities))
	for i, city := range cities {
		state := city.State.Code
		if state == "" {
			state = dto.UnknownCity
		}
		out[i] = cityResponse{
			ID:         city.ID,
			Name:       city.Name,
			StateID:    city.StateID,
			State:      state,
			SalonCount: city.SalonCount,
		}
	}
	return out
}
