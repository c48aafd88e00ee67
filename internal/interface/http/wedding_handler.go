package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/application"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
	"github.com/PRASANNAPATIL12/2.31weddingcard/pkg/response"
	"github.com/PRASANNAPATIL12/2.31weddingcard/pkg/validation"
)

type WeddingHandler struct {
	Svc    *application.WeddingService
	Logger *logrus.Logger
}

func NewWeddingHandler(svc *application.WeddingService, logger *logrus.Logger) *WeddingHandler {
	return &WeddingHandler{Svc: svc, Logger: logger}
}

// weddingRequest is the full card payload plus the session token. PUT uses
// the same shape as POST because updates replace the whole record.
type weddingRequest struct {
	SessionID      string           `json:"session_id" binding:"required"`
	CoupleName1    string           `json:"couple_name_1" binding:"required"`
	CoupleName2    string           `json:"couple_name_2" binding:"required"`
	WeddingDate    string           `json:"wedding_date" binding:"required"`
	VenueName      string           `json:"venue_name" binding:"required"`
	VenueLocation  string           `json:"venue_location" binding:"required"`
	TheirStory     string           `json:"their_story"`
	ScheduleEvents []map[string]any `json:"schedule_events"`
	GalleryPhotos  []string         `json:"gallery_photos"`
	BridalParty    []map[string]any `json:"bridal_party"`
	GroomParty     []map[string]any `json:"groom_party"`
	FAQs           []map[string]any `json:"faqs"`
	Theme          string           `json:"theme"`
	CustomURL      string           `json:"custom_url"`
	StoryTimeline  []map[string]any `json:"story_timeline"`
	RegistryItems  []map[string]any `json:"registry_items"`
	HoneymoonFund  map[string]any   `json:"honeymoon_fund"`
	ImportantInfo  map[string]any   `json:"important_info"`
}

func (r weddingRequest) input() application.WeddingInput {
	return application.WeddingInput{
		CoupleName1:    r.CoupleName1,
		CoupleName2:    r.CoupleName2,
		WeddingDate:    r.WeddingDate,
		VenueName:      r.VenueName,
		VenueLocation:  r.VenueLocation,
		TheirStory:     r.TheirStory,
		ScheduleEvents: r.ScheduleEvents,
		GalleryPhotos:  r.GalleryPhotos,
		BridalParty:    r.BridalParty,
		GroomParty:     r.GroomParty,
		FAQs:           r.FAQs,
		Theme:          r.Theme,
		CustomURL:      r.CustomURL,
		StoryTimeline:  r.StoryTimeline,
		RegistryItems:  r.RegistryItems,
		HoneymoonFund:  r.HoneymoonFund,
		ImportantInfo:  r.ImportantInfo,
	}
}

// storageStatus maps non-domain failures: only an exhausted fallback chain
// becomes 503, anything else is a server bug.
func storageStatus(err error) int {
	if errors.Is(err, repository.ErrBackendUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *WeddingHandler) fail(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, application.ErrInvalidSession):
		response.Error[any](c, http.StatusUnauthorized, "invalid session", nil)
	case errors.Is(err, application.ErrWeddingExists):
		response.Error[any](c, http.StatusConflict, "user already has a wedding card, use update instead", nil)
	case errors.Is(err, application.ErrWeddingNotFound):
		response.Error[any](c, http.StatusNotFound, "wedding data not found", nil)
	default:
		h.Logger.WithError(err).WithField("op", op).Error("wedding operation failed")
		response.Error[any](c, storageStatus(err), "wedding operation failed", nil)
	}
}

func (h *WeddingHandler) Create(c *gin.Context) {
	var req weddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	w, err := h.Svc.Create(c.Request.Context(), req.SessionID, req.input())
	if err != nil {
		h.fail(c, err, "create")
		return
	}
	response.Success(c, http.StatusOK, w, "wedding card created")
}

func (h *WeddingHandler) Update(c *gin.Context) {
	var req weddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	w, err := h.Svc.Update(c.Request.Context(), req.SessionID, req.input())
	if err != nil {
		h.fail(c, err, "update")
		return
	}
	response.Success(c, http.StatusOK, w, "wedding card updated")
}

func (h *WeddingHandler) GetPrivate(c *gin.Context) {
	sessionID := c.Query("session_id")
	w, err := h.Svc.GetPrivate(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, err, "get_private")
		return
	}
	response.Success(c, http.StatusOK, w, "wedding card")
}

func (h *WeddingHandler) GetPublicByID(c *gin.Context) {
	w, err := h.Svc.GetPublicByID(c.Request.Context(), c.Param("wedding_id"))
	if err != nil {
		h.fail(c, err, "get_public_by_id")
		return
	}
	response.Success(c, http.StatusOK, w, "wedding card")
}

func (h *WeddingHandler) GetPublicByCustomURL(c *gin.Context) {
	w, err := h.Svc.GetPublicByCustomURL(c.Request.Context(), c.Param("custom_url"))
	if err != nil {
		h.fail(c, err, "get_public_by_custom_url")
		return
	}
	response.Success(c, http.StatusOK, w, "wedding card")
}

func (h *WeddingHandler) GetPublicByUserID(c *gin.Context) {
	w, err := h.Svc.GetPublicByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.fail(c, err, "get_public_by_user_id")
		return
	}
	response.Success(c, http.StatusOK, w, "wedding card")
}
