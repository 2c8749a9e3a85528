package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/queue"
	queue_publisher "github.com/lucasmarqs/gym-checkin-api/internal/service"
	"github.com/lucasmarqs/gym-checkin-api/internal/usecase"
)

// CheckInHandler exposes the check-in endpoints: create, history, metrics
// and staff validation.
type CheckInHandler struct {
	CheckIn  *usecase.CheckInUseCase
	History  *usecase.FetchUserCheckInsHistoryUseCase
	Metrics  *usecase.GetUserMetricsUseCase
	Validate *usecase.ValidateCheckInUseCase
	Log      *zap.SugaredLogger
}

func NewCheckInHandler(checkIn *usecase.CheckInUseCase, history *usecase.FetchUserCheckInsHistoryUseCase, metrics *usecase.GetUserMetricsUseCase, validate *usecase.ValidateCheckInUseCase, log *zap.SugaredLogger) *CheckInHandler {
	return &CheckInHandler{CheckIn: checkIn, History: history, Metrics: metrics, Validate: validate, Log: log}
}

type createCheckInReq struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type checkInResp struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	GymID       string  `json:"gym_id"`
	CreatedAt   string  `json:"created_at"`
	ValidatedAt *string `json:"validated_at,omitempty"`
}

// CreateCheckIn records a check-in for the authenticated user at the gym
// in the path. A check-in.registered event is published after the commit;
// publish failures are logged and never fail the request.
func (h *CheckInHandler) CreateCheckIn(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	gymID := c.Param("gymId")
	if gymID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gym id required"})
	}

	var req createCheckInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !validCoordinate(req.Latitude, req.Longitude) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coordinates"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checkIn, err := h.CheckIn.Execute(ctx, usecase.CheckInInput{
		UserID:        userID,
		GymID:         gymID,
		UserLatitude:  req.Latitude,
		UserLongitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResourceNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "gym not found"})
		case errors.Is(err, usecase.ErrMaxDistance):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "too far from gym"})
		case errors.Is(err, usecase.ErrMaxNumberOfCheckIns):
			return c.JSON(http.StatusConflict, echo.Map{"error": "already checked in today"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-in failed"})
	}

	if err := queue_publisher.PublishCheckInRegistered(ctx, queue.CheckInRegisteredEvent{
		CheckInID: checkIn.ID,
		UserID:    checkIn.UserID,
		GymID:     checkIn.GymID,
		CreatedAt: checkIn.CreatedAt.Format(time.RFC3339),
	}); err != nil && h.Log != nil {
		h.Log.Warnw("publish check-in event failed", "check_in_id", checkIn.ID, "err", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"check_in": toCheckInResp(checkIn)})
}

// CheckInHistory pages over the authenticated user's check-ins.
func (h *CheckInHandler) CheckInHistory(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
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

	checkIns, err := h.History.Execute(ctx, usecase.FetchUserCheckInsHistoryInput{UserID: userID, Page: page})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]checkInResp, 0, len(checkIns))
	for _, ci := range checkIns {
		out = append(out, toCheckInResp(ci))
	}
	return c.JSON(http.StatusOK, echo.Map{"check_ins": out, "page": page})
}

// CheckInMetrics returns the authenticated user's total check-in count.
func (h *CheckInHandler) CheckInMetrics(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Metrics.Execute(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"check_ins_count": n})
}

// ValidateCheckIn marks a check-in as validated (ADMIN only, enforced by
// route middleware).
func (h *CheckInHandler) ValidateCheckIn(c echo.Context) error {
	checkInID := c.Param("checkInId")
	if checkInID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check-in id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checkIn, err := h.Validate.Execute(ctx, checkInID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResourceNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "check-in not found"})
		case errors.Is(err, usecase.ErrLateCheckInValidation):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "validation window expired"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "validate failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"check_in": toCheckInResp(checkIn)})
}

func toCheckInResp(ci *model.CheckIn) checkInResp {
	resp := checkInResp{
		ID:        ci.ID,
		UserID:    ci.UserID,
		GymID:     ci.GymID,
		CreatedAt: ci.CreatedAt.Format(time.RFC3339),
	}
	if ci.ValidatedAt != nil {
		v := ci.ValidatedAt.Format(time.RFC3339)
		resp.ValidatedAt = &v
	}
	return resp
}
