package Ledgers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
)

func TestAddReview(t *testing.T) {
	ledger := NewReviewLedger(Storage.NewMemoryStore())
	ctx := context.Background()

	review, err := ledger.Add(ctx, Models.Review{
		DoctorID: "1", UserID: "u1", UserName: "Alice", Rating: 5, Comment: "great",
	})
	require.NoError(t, err)
	require.NotEmpty(t, review.ID)

	_, err = time.Parse(time.RFC3339, review.Date)
	require.NoError(t, err, "creation timestamp must be RFC3339")

	listed, err := ledger.ListByDoctor(ctx, "1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, review, listed[0])
}

func TestAddReviewRatingBounds(t *testing.T) {
	ledger := NewReviewLedger(Storage.NewMemoryStore())
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := ledger.Add(ctx, Models.Review{DoctorID: "1", Rating: rating})
		require.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		_, err := ledger.Add(ctx, Models.Review{DoctorID: "1", Rating: rating})
		require.NoError(t, err, "rating %d", rating)
	}
}

func TestListByDoctorFiltersAndSortsByRecency(t *testing.T) {
	store := Storage.NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seeded := []Models.Review{
		{ID: "r1", DoctorID: "1", Rating: 4, Date: base.Format(time.RFC3339)},
		{ID: "r2", DoctorID: "2", Rating: 3, Date: base.Add(time.Hour).Format(time.RFC3339)},
		{ID: "r3", DoctorID: "1", Rating: 5, Date: base.Add(2 * time.Hour).Format(time.RFC3339)},
		{ID: "r4", DoctorID: "1", Rating: 2, Date: base.Add(time.Minute).Format(time.RFC3339)},
	}
	require.NoError(t, store.Write(ctx, Storage.CollectionReviews, seeded))

	ledger := NewReviewLedger(store)
	listed, err := ledger.ListByDoctor(ctx, "1")
	require.NoError(t, err)

	var got []string
	for _, review := range listed {
		got = append(got, review.ID)
	}
	require.Equal(t, []string{"r3", "r4", "r1"}, got)
}

// Nothing stops a second review referencing the same appointment: the
// ledger is append-only with no per-appointment uniqueness.
func TestSecondReviewPermitted(t *testing.T) {
	ledger := NewReviewLedger(Storage.NewMemoryStore())
	ctx := context.Background()

	_, err := ledger.Add(ctx, Models.Review{DoctorID: "1", UserID: "u1", Rating: 5})
	require.NoError(t, err)
	_, err = ledger.Add(ctx, Models.Review{DoctorID: "1", UserID: "u1", Rating: 1})
	require.NoError(t, err)

	listed, err := ledger.ListByDoctor(ctx, "1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestAverageForDoctor(t *testing.T) {
	ledger := NewReviewLedger(Storage.NewMemoryStore())
	ctx := context.Background()

	average, count, err := ledger.AverageForDoctor(ctx, "1")
	require.NoError(t, err)
	require.Zero(t, average)
	require.Zero(t, count)

	for _, rating := range []int{2, 3, 4} {
		_, err := ledger.Add(ctx, Models.Review{DoctorID: "1", Rating: rating})
		require.NoError(t, err)
	}
	average, count, err = ledger.AverageForDoctor(ctx, "1")
	require.NoError(t, err)
	require.InDelta(t, 3.0, average, 0.0001)
	require.Equal(t, 3, count)
}
