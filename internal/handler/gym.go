package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lucasmarqs/gym-checkin-api/internal/usecase"
)

// GymHandler exposes gym creation and the two lookup endpoints (title
// search and nearby search).
type GymHandler struct {
	Create *usecase.CreateGymUseCase
	Search *usecase.SearchGymsUseCase
	Nearby *usecase.FetchNearbyGymsUseCase
}

func NewGymHandler(create *usecase.CreateGymUseCase, search *usecase.SearchGymsUseCase, nearby *usecase.FetchNearbyGymsUseCase) *GymHandler {
	return &GymHandler{Create: create, Search: search, Nearby: nearby}
}

type createGymReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type gymResp struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CreatedAt   string  `json:"created_at"`
}

// CreateGym registers a new gym (ADMIN only, enforced by route middleware).
func (h *GymHandler) CreateGym(c echo.Context) error {
	var req createGymReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	if !validCoordinate(req.Latitude, req.Longitude) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coordinates"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gym, err := h.Create.Execute(ctx, usecase.CreateGymInput{
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create gym failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"gym": toGymResp(gym.ID, gym.Title, gym.Description, gym.Phone, gym.Latitude, gym.Longitude, gym.CreatedAt)})
}

// SearchGyms pages over gyms matching ?q= by title. ?page= defaults to 1.
func (h *GymHandler) SearchGyms(c echo.Context) error {
	query := c.QueryParam("q")
	page := 1
	if p := c.QueryParam("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid page"})
		}
		page = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gyms, err := h.Search.Execute(ctx, usecase.SearchGymsInput{Query: query, Page: page})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}

	out := make([]gymResp, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, toGymResp(g.ID, g.Title, g.Description, g.Phone, g.Latitude, g.Longitude, g.CreatedAt))
	}
	return c.JSON(http.StatusOK, echo.Map{"gyms": out, "page": page})
}

// NearbyGyms lists gyms close to ?latitude=&longitude=.
func (h *GymHandler) NearbyGyms(c echo.Context) error {
	lat, err1 := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	lon, err2 := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err1 != nil || err2 != nil || !validCoordinate(lat, lon) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coordinates"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gyms, err := h.Nearby.Execute(ctx, usecase.FetchNearbyGymsInput{UserLatitude: lat, UserLongitude: lon})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}

	out := make([]gymResp, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, toGymResp(g.ID, g.Title, g.Description, g.Phone, g.Latitude, g.Longitude, g.CreatedAt))
	}
	return c.JSON(http.StatusOK, echo.Map{"gyms": out})
}

func toGymResp(id, title string, description, phone *string, lat, lon float64, createdAt time.Time) gymResp {
	return gymResp{
		ID:          id,
		Title:       title,
		Description: description,
		Phone:       phone,
		Latitude:    lat,
		Longitude:   lon,
		CreatedAt:   createdAt.Format(time.RFC3339),
	}
}

// validCoordinate checks the latitude/longitude degree ranges.
func validCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
