package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"saharaweb/internal/bookings/mocks"
	"saharaweb/internal/models"
	"saharaweb/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolverRigBookings(t *testing.T) {
	t.Parallel()

	rig := &models.Rig{ID: 1, Name: "R1", Type: models.RigType{ID: 10, Name: "T1"}}
	from := day
	to := day.AddDate(0, 0, 1)

	found := []models.Booking{
		booking(1, models.ResourceRig, at(10, 0), at(11, 0)),
		booking(2, models.ResourceRigType, at(10, 15), at(10, 45)),
		booking(3, models.ResourceRigType, at(12, 0), at(13, 0)),
	}

	rigs := mocks.NewRigFinder(t)
	rigs.On("FindRigByName", mock.Anything, "R1").Return(rig, nil)

	querier := mocks.NewBookingsQuerier(t)
	querier.On("QueryBookings", mock.Anything, rig, from, to).Return(found, nil)

	resolved, err := NewResolver(rigs, querier).RigBookings(context.Background(), "R1", from, to)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3}, ids(resolved))
}

func TestResolverRigNotFound(t *testing.T) {
	t.Parallel()

	rigs := mocks.NewRigFinder(t)
	rigs.On("FindRigByName", mock.Anything, "nope").
		Return(nil, fmt.Errorf("storage.postgres.FindRigByName: %w", storage.ErrRigNotFound))

	querier := mocks.NewBookingsQuerier(t)

	_, err := NewResolver(rigs, querier).RigBookings(context.Background(), "nope", day, day.AddDate(0, 0, 7))

	assert.ErrorIs(t, err, storage.ErrRigNotFound)
	querier.AssertNotCalled(t, "QueryBookings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolverQueryError(t *testing.T) {
	t.Parallel()

	rig := &models.Rig{ID: 1, Name: "R1", Type: models.RigType{ID: 10}}
	dbErr := errors.New("connection refused")

	rigs := mocks.NewRigFinder(t)
	rigs.On("FindRigByName", mock.Anything, "R1").Return(rig, nil)

	querier := mocks.NewBookingsQuerier(t)
	querier.On("QueryBookings", mock.Anything, rig, mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := NewResolver(rigs, querier).RigBookings(context.Background(), "R1", day, day.AddDate(0, 0, 1))

	assert.ErrorIs(t, err, dbErr)
}
