package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
	"github.com/iamasit07/connect-four/internal/transport/http/middleware"
	"github.com/iamasit07/connect-four/pkg/httputil"
	"github.com/iamasit07/connect-four/pkg/useragent"
)

// TableService is what the handlers need from the hosted table.
type TableService interface {
	State() domain.Snapshot
	DropDisc(token string, column int) (domain.Snapshot, error)
	Reset(token string) (domain.Snapshot, error)
	ClaimSeat(player domain.PlayerID, device string) (string, error)
	ReleaseSeat(token string) (domain.PlayerID, error)
	Seats() []game.Seat
	Mode() game.Mode
}

type TableHandler struct {
	Table        TableService
	SeatTokenTTL time.Duration
	SecureCookie bool
}

func NewTableHandler(table TableService, seatTokenTTL time.Duration, secureCookie bool) *TableHandler {
	return &TableHandler{Table: table, SeatTokenTTL: seatTokenTTL, SecureCookie: secureCookie}
}

// Register mounts the table routes under /api.
func (h *TableHandler) Register(router gin.IRouter) {
	api := router.Group("/api")
	api.Use(middleware.SeatTokenMiddleware())

	api.GET("/state", h.GetState)
	api.POST("/moves", h.DropDisc)
	api.POST("/reset", h.Reset)
	api.GET("/seats", h.GetSeats)
	api.POST("/seats/:player", h.ClaimSeat)
	api.DELETE("/seats", h.ReleaseSeat)
}

type rejectionResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	State   domain.Snapshot `json:"state"`
}

type seatsResponse struct {
	Mode  game.Mode   `json:"mode"`
	Seats []game.Seat `json:"seats"`
}

func (h *TableHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.Table.State())
}

func (h *TableHandler) DropDisc(c *gin.Context) {
	var req struct {
		Column *int `json:"column" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, rejectionResponse{
			Error:   "invalid_request",
			Message: "body must be {\"column\": <0-6>}",
			State:   h.Table.State(),
		})
		return
	}

	state, err := h.Table.DropDisc(middleware.SeatToken(c), *req.Column)
	if err != nil {
		h.reject(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *TableHandler) Reset(c *gin.Context) {
	state, err := h.Table.Reset(middleware.SeatToken(c))
	if err != nil {
		h.reject(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *TableHandler) GetSeats(c *gin.Context) {
	c.JSON(http.StatusOK, seatsResponse{Mode: h.Table.Mode(), Seats: h.Table.Seats()})
}

func (h *TableHandler) ClaimSeat(c *gin.Context) {
	player, err := domain.ParsePlayer(c.Param("player"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_player", "message": err.Error()})
		return
	}

	token, err := h.Table.ClaimSeat(player, useragent.ExtractDeviceInfo(c.Request))
	if err != nil {
		if errors.Is(err, domain.ErrSeatTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "seat_taken", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to issue seat token"})
		return
	}

	httputil.SetSeatCookie(c.Writer, token, h.SeatTokenTTL, h.SecureCookie)
	c.JSON(http.StatusCreated, gin.H{"seat": player, "token": token})
}

func (h *TableHandler) ReleaseSeat(c *gin.Context) {
	if _, err := h.Table.ReleaseSeat(middleware.SeatToken(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "seat_required", "message": err.Error()})
		return
	}
	httputil.ClearSeatCookie(c.Writer)
	c.Status(http.StatusNoContent)
}

func (h *TableHandler) reject(c *gin.Context, err error, state domain.Snapshot) {
	status, code := RejectionStatus(err)
	c.JSON(status, rejectionResponse{Error: code, Message: err.Error(), State: state})
}

// RejectionStatus maps a table error to an HTTP status and a stable code.
func RejectionStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return http.StatusBadRequest, "invalid_column"
	case errors.Is(err, domain.ErrColumnFull):
		return http.StatusConflict, "column_full"
	case errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict, "game_over"
	case errors.Is(err, domain.ErrNotYourTurn):
		return http.StatusConflict, "not_your_turn"
	case errors.Is(err, domain.ErrSeatRequired):
		return http.StatusUnauthorized, "seat_required"
	}
	return http.StatusInternalServerError, "internal"
}
