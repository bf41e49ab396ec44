package Ledgers

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// ErrInvalidRating rejects ratings outside the 1–5 range.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ReviewLedger owns the append-only reviews collection.
type ReviewLedger struct {
	store Storage.Store
	log   *zap.Logger
}

func NewReviewLedger(store Storage.Store) *ReviewLedger {
	return &ReviewLedger{store: store, log: Utils.GetLogger()}
}

func (l *ReviewLedger) load(ctx context.Context) ([]Models.Review, error) {
	var reviews []Models.Review
	if err := l.store.Read(ctx, Storage.CollectionReviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByDoctor returns the doctor's reviews, most recent first.
func (l *ReviewLedger) ListByDoctor(ctx context.Context, doctorID string) ([]Models.Review, error) {
	reviews, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []Models.Review
	for _, review := range reviews {
		if review.DoctorID == doctorID {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

// Add assigns an id and creation timestamp and appends the review. Nothing
// prevents a second review against the same appointment; only the rating
// range is enforced here.
func (l *ReviewLedger) Add(ctx context.Context, review Models.Review) (Models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return Models.Review{}, ErrInvalidRating
	}

	reviews, err := l.load(ctx)
	if err != nil {
		return Models.Review{}, err
	}

	review.ID = uuid.New().String()
	review.Date = time.Now().Format(time.RFC3339)

	reviews = append(reviews, review)
	if err := l.store.Write(ctx, Storage.CollectionReviews, reviews); err != nil {
		return Models.Review{}, err
	}
	l.log.Debug("review added",
		zap.String("doctorId", review.DoctorID), zap.Int("rating", review.Rating))
	return review, nil
}

// AverageForDoctor computes the mean rating, zero when unreviewed.
func (l *ReviewLedger) AverageForDoctor(ctx context.Context, doctorID string) (float64, int, error) {
	reviews, err := l.ListByDoctor(ctx, doctorID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	return float64(total) / float64(len(reviews)), len(reviews), nil
}
