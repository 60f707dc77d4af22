// Package server exposes the session stores over HTTP. It is the transport
// collaborator of the state core: handlers bind JSON, call a store's
// mutation operation, and publish a change event so subscribed observers
// re-read the snapshot. The stores themselves perform no validation; the
// type contracts at this boundary are the sole validation layer.
package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/consult/consult/internal/model"
	"github.com/consult/consult/internal/platform/events"
	"github.com/consult/consult/internal/routes"
	"github.com/consult/consult/internal/session"
)

type Handler struct {
	mgr *session.Manager
	hub *events.Hub
}

// NewHandler creates a handler over the given session registry. hub may be
// nil when no observer stream is wired (tests).
func NewHandler(mgr *session.Manager, hub *events.Hub) *Handler {
	return &Handler{mgr: mgr, hub: hub}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sessions", h.CreateSession)
	api.GET("/sessions/:id", h.GetSession)
	api.DELETE("/sessions/:id", h.EndSession)

	api.GET("/sessions/:id/chat/messages", h.GetMessages)
	api.POST("/sessions/:id/chat/messages", h.AddMessage)
	api.PUT("/sessions/:id/chat/messages", h.ReplaceMessages)
	api.DELETE("/sessions/:id/chat/messages", h.ClearMessages)

	api.GET("/sessions/:id/doctor", h.GetDoctor)
	api.PUT("/sessions/:id/doctor", h.SelectDoctor)
	api.DELETE("/sessions/:id/doctor", h.ClearDoctor)

	api.GET("/sessions/:id/pharmacy", h.GetPharmacyState)
	api.PUT("/sessions/:id/pharmacy/selected", h.SelectPharmacy)
	api.POST("/sessions/:id/pharmacy/selected/default", h.MarkPharmacyDefault)
	api.PUT("/sessions/:id/pharmacy/prescription-items", h.SetPrescriptionItems)
	api.POST("/sessions/:id/pharmacy/order", h.PlaceOrder)
	api.POST("/sessions/:id/pharmacy/reset", h.ResetPharmacy)

	api.GET("/sessions/:id/profile", h.GetProfile)
	api.PUT("/sessions/:id/profile/address", h.SetAddress)
	api.PUT("/sessions/:id/profile/kyc", h.SetKYC)
	api.PUT("/sessions/:id/profile/hipaa", h.SetHIPAA)
	api.DELETE("/sessions/:id/profile", h.ResetProfile)

	api.GET("/routes", h.GetRoutes)
}

// session resolves the :id path param to a live session or a 404.
func (h *Handler) session(c echo.Context) (*session.Session, error) {
	s, ok := h.mgr.Get(c.Param("id"))
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return s, nil
}

func (h *Handler) publish(sessionID, store, op string) {
	if h.hub == nil {
		return
	}
	h.hub.Publish(events.Event{SessionID: sessionID, Store: store, Op: op})
}

// -- Session lifecycle --

type sessionInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionSnapshot struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	Messages  []model.Message          `json:"messages"`
	Doctor    *model.Doctor            `json:"doctor"`
	Pharmacy  session.PharmacySnapshot `json:"pharmacy"`
	Profile   *model.UserProfile       `json:"profile"`
}

func (h *Handler) CreateSession(c echo.Context) error {
	s := h.mgr.Create()
	if s == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "session limit reached")
	}
	return c.JSON(http.StatusCreated, sessionInfo{ID: s.ID, CreatedAt: s.CreatedAt})
}

func (h *Handler) GetSession(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionSnapshot{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Messages:  s.Chat.Messages(),
		Doctor:    s.Doctor.Selected(),
		Pharmacy:  s.Pharmacy.Snapshot(),
		Profile:   s.User.Profile(),
	})
}

func (h *Handler) EndSession(c echo.Context) error {
	if !h.mgr.End(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Chat --

func (h *Handler) GetMessages(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.Chat.Messages())
}

func (h *Handler) AddMessage(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var msg model.Message
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Chat.Add(msg)
	h.publish(s.ID, events.StoreChat, "add")
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) ReplaceMessages(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var msgs []model.Message
	if err := c.Bind(&msgs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Chat.Replace(msgs)
	h.publish(s.ID, events.StoreChat, "replace")
	return c.JSON(http.StatusOK, s.Chat.Messages())
}

func (h *Handler) ClearMessages(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.Chat.Clear()
	h.publish(s.ID, events.StoreChat, "clear")
	return c.NoContent(http.StatusNoContent)
}

// -- Doctor --

func (h *Handler) GetDoctor(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.Doctor.Selected())
}

func (h *Handler) SelectDoctor(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var d model.Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Doctor.Select(d)
	h.publish(s.ID, events.StoreDoctor, "select")
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ClearDoctor(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.Doctor.Clear()
	h.publish(s.ID, events.StoreDoctor, "clear")
	return c.NoContent(http.StatusNoContent)
}

// -- Pharmacy --

func (h *Handler) GetPharmacyState(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.Pharmacy.Snapshot())
}

func (h *Handler) SelectPharmacy(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var p model.Pharmacy
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Pharmacy.SelectPharmacy(p)
	h.publish(s.ID, events.StorePharmacy, "select")
	return c.JSON(http.StatusOK, p)
}

type markDefaultRequest struct {
	PharmacyID string `json:"pharmacy_id"`
}

func (h *Handler) MarkPharmacyDefault(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var req markDefaultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Pharmacy.MarkDefault(req.PharmacyID)
	h.publish(s.ID, events.StorePharmacy, "mark_default")
	return c.JSON(http.StatusOK, s.Pharmacy.Snapshot())
}

func (h *Handler) SetPrescriptionItems(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var items []model.PrescriptionItem
	if err := c.Bind(&items); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Pharmacy.SetPrescriptionItems(items)
	h.publish(s.ID, events.StorePharmacy, "set_items")
	return c.JSON(http.StatusOK, s.Pharmacy.PrescriptionItems())
}

func (h *Handler) PlaceOrder(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var o model.PharmacyOrder
	if err := c.Bind(&o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	placed := s.Pharmacy.PlaceOrder(o)
	h.publish(s.ID, events.StorePharmacy, "place_order")
	return c.JSON(http.StatusCreated, placed)
}

func (h *Handler) ResetPharmacy(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.Pharmacy.Reset()
	h.publish(s.ID, events.StorePharmacy, "reset")
	return c.NoContent(http.StatusNoContent)
}

// -- Profile --

func (h *Handler) GetProfile(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.User.Profile())
}

func (h *Handler) SetAddress(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var data model.AddressData
	if err := c.Bind(&data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.User.SetAddress(data)
	h.publish(s.ID, events.StoreUser, "set_address")
	return c.JSON(http.StatusOK, s.User.Profile())
}

type kycRequest struct {
	Completed bool `json:"completed"`
}

func (h *Handler) SetKYC(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var req kycRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.User.SetKYCCompleted(req.Completed)
	h.publish(s.ID, events.StoreUser, "set_kyc")
	return c.JSON(http.StatusOK, s.User.Profile())
}

type hipaaRequest struct {
	Compliant bool `json:"compliant"`
}

func (h *Handler) SetHIPAA(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	var req hipaaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.User.SetHIPAACompliant(req.Compliant)
	h.publish(s.ID, events.StoreUser, "set_hipaa")
	return c.JSON(http.StatusOK, s.User.Profile())
}

func (h *Handler) ResetProfile(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.User.Reset()
	h.publish(s.ID, events.StoreUser, "reset")
	return c.NoContent(http.StatusNoContent)
}

// -- Routes table --

func (h *Handler) GetRoutes(c echo.Context) error {
	return c.JSON(http.StatusOK, routes.Table())
}
