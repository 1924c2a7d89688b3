package services

import (
	"errors"
	"sort"

	"homestay-backend/models"
	"homestay-backend/store"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	store *store.Store
}

func NewReviewService(st *store.Store) *ReviewService {
	return &ReviewService{store: st}
}

// List returns reviews newest first.
func (s *ReviewService) List() ([]*models.Review, error) {
	reviews, err := s.store.Reviews.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *ReviewService) Featured() ([]*models.Review, error) {
	return s.store.Reviews.Find(func(r *models.Review) bool { return r.Featured })
}

// Create stores a review, denormalizing the room name from the current room
// record when the room still exists.
func (s *ReviewService) Create(review *models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if review.RoomName == "" && review.RoomID != "" {
		if room, ok, err := s.store.Rooms.Get(review.RoomID); err == nil && ok {
			review.RoomName = room.Name
		}
	}
	created, err := s.store.Reviews.Create(review)
	if err != nil {
		return nil, err
	}
	_, _ = s.store.Notifications.Create(&models.Notification{
		Title:   "New review",
		Message: created.GuestName + " left a review",
		Type:    models.NotifyReview,
	})
	return created, nil
}

// Reply records the owner's response on a review.
func (s *ReviewService) Reply(id, reply string) (*models.Review, bool, error) {
	return s.store.Reviews.Update(id, map[string]any{"reply": reply})
}

// SetFeatured toggles whether a review appears on the home page.
func (s *ReviewService) SetFeatured(id string, featured bool) (*models.Review, bool, error) {
	return s.store.Reviews.Update(id, map[string]any{"featured": featured})
}
