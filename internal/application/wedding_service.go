package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/entity"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
)

var (
	ErrWeddingExists   = errors.New("user already has a wedding card")
	ErrWeddingNotFound = errors.New("wedding data not found")
)

// WeddingService owns the wedding-card lifecycle. Session resolution is
// delegated to AuthService; the session-to-record join happens here, never
// inside a store.
type WeddingService struct {
	Weddings repository.Store[entity.WeddingProfile]
	Auth     *AuthService
	Logger   *logrus.Logger
}

func NewWeddingService(weddings repository.Store[entity.WeddingProfile], auth *AuthService, logger *logrus.Logger) *WeddingService {
	return &WeddingService{Weddings: weddings, Auth: auth, Logger: logger}
}

// WeddingInput carries every caller-settable field of a card. Both Create
// and Update take the full set: updates are whole-record replacements, so an
// omitted field resets rather than surviving from the previous revision.
type WeddingInput struct {
	CoupleName1    string
	CoupleName2    string
	WeddingDate    string
	VenueName      string
	VenueLocation  string
	TheirStory     string
	ScheduleEvents []map[string]any
	GalleryPhotos  []string
	BridalParty    []map[string]any
	GroomParty     []map[string]any
	FAQs           []map[string]any
	Theme          string
	CustomURL      string
	StoryTimeline  []map[string]any
	RegistryItems  []map[string]any
	HoneymoonFund  map[string]any
	ImportantInfo  map[string]any
}

func (in WeddingInput) toProfile(id, userID string, createdAt, updatedAt time.Time) entity.WeddingProfile {
	theme := in.Theme
	if theme == "" {
		theme = entity.DefaultTheme
	}
	return entity.WeddingProfile{
		ID:             id,
		UserID:         userID,
		CoupleName1:    in.CoupleName1,
		CoupleName2:    in.CoupleName2,
		WeddingDate:    in.WeddingDate,
		VenueName:      in.VenueName,
		VenueLocation:  in.VenueLocation,
		TheirStory:     in.TheirStory,
		ScheduleEvents: in.ScheduleEvents,
		GalleryPhotos:  in.GalleryPhotos,
		BridalParty:    in.BridalParty,
		GroomParty:     in.GroomParty,
		FAQs:           in.FAQs,
		Theme:          theme,
		CustomURL:      in.CustomURL,
		StoryTimeline:  in.StoryTimeline,
		RegistryItems:  in.RegistryItems,
		HoneymoonFund:  in.HoneymoonFund,
		ImportantInfo:  in.ImportantInfo,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// Create makes the caller's card. One card per user.
func (s *WeddingService) Create(ctx context.Context, sessionID string, in WeddingInput) (*entity.WeddingProfile, error) {
	user, err := s.Auth.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	_, err = s.Weddings.FindOneBy(ctx, "user_id", user.ID)
	if err == nil {
		return nil, ErrWeddingExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	w := in.toProfile(uuid.NewString(), user.ID, now, now)
	if err := s.Weddings.Put(ctx, w); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"wedding_id": w.ID, "user_id": user.ID}).Info("wedding card created")
	}
	return &w, nil
}

// Update replaces the caller's card with the supplied fields. Only id,
// user_id and created_at survive from the previous revision; updated_at is
// re-stamped.
func (s *WeddingService) Update(ctx context.Context, sessionID string, in WeddingInput) (*entity.WeddingProfile, error) {
	user, err := s.Auth.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Weddings.FindOneBy(ctx, "user_id", user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}

	w := in.toProfile(existing.ID, user.ID, existing.CreatedAt, time.Now().UTC())
	if err := s.Weddings.Put(ctx, w); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetPrivate returns the caller's own card, user_id included.
func (s *WeddingService) GetPrivate(ctx context.Context, sessionID string) (*entity.WeddingProfile, error) {
	user, err := s.Auth.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	w, err := s.Weddings.FindOneBy(ctx, "user_id", user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetPublicByID looks a card up by record id, no session needed.
func (s *WeddingService) GetPublicByID(ctx context.Context, weddingID string) (*entity.PublicWeddingProfile, error) {
	w, err := s.Weddings.GetByID(ctx, weddingID)
	return publicResult(w, err)
}

// GetPublicByCustomURL looks a card up by its slug. The empty slug never
// matches, even though cards without one store it as "".
func (s *WeddingService) GetPublicByCustomURL(ctx context.Context, customURL string) (*entity.PublicWeddingProfile, error) {
	if customURL == "" {
		return nil, ErrWeddingNotFound
	}
	w, err := s.Weddings.FindOneBy(ctx, "custom_url", customURL)
	return publicResult(w, err)
}

// GetPublicByUserID looks a card up by its owner's id.
func (s *WeddingService) GetPublicByUserID(ctx context.Context, userID string) (*entity.PublicWeddingProfile, error) {
	w, err := s.Weddings.FindOneBy(ctx, "user_id", userID)
	return publicResult(w, err)
}

func publicResult(w entity.WeddingProfile, err error) (*entity.PublicWeddingProfile, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}
	pub := w.Public()
	return &pub, nil
}
