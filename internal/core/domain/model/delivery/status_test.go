package delivery_test

import (
	"testing"

	"dispatch/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	valid := []delivery.Status{
		delivery.StatusCreated,
		delivery.StatusPendingAssignment,
		delivery.StatusAssigned,
		delivery.StatusInTransit,
		delivery.StatusCompleted,
		delivery.StatusFailed,
		delivery.StatusCanceled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, delivery.StatusUnknown.Validate())
	require.Error(t, delivery.Status(99).Validate())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Created", delivery.StatusCreated.String())
	assert.Equal(t, "PendingAssignment", delivery.StatusPendingAssignment.String())
	assert.Equal(t, "InTransit", delivery.StatusInTransit.String())
	assert.Equal(t, "Unknown", delivery.Status(99).String())
}

func TestStatusTransitions(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.StatusCreated, delivery.StatusPendingAssignment} {
			next, err := s.Assign()
			require.NoError(t, err, s.String())
			assert.Equal(t, delivery.StatusAssigned, next)
		}

		for _, s := range []delivery.Status{
			delivery.StatusAssigned,
			delivery.StatusInTransit,
			delivery.StatusCompleted,
			delivery.StatusFailed,
			delivery.StatusCanceled,
		} {
			_, err := s.Assign()
			require.Error(t, err, s.String())
		}
	})

	t.Run("pick up only from Assigned", func(t *testing.T) {
		next, err := delivery.StatusAssigned.PickUp()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, next)

		_, err = delivery.StatusCreated.PickUp()
		require.Error(t, err)
	})

	t.Run("complete only from InTransit", func(t *testing.T) {
		next, err := delivery.StatusInTransit.Complete()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCompleted, next)

		_, err = delivery.StatusAssigned.Complete()
		require.Error(t, err)
	})

	t.Run("cancel assignment only from Assigned", func(t *testing.T) {
		next, err := delivery.StatusAssigned.CancelAssignment()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusPendingAssignment, next)

		_, err = delivery.StatusInTransit.CancelAssignment()
		require.Error(t, err)
	})

	t.Run("fail blocked from the other final states", func(t *testing.T) {
		_, err := delivery.StatusCompleted.Fail()
		require.Error(t, err)
		_, err = delivery.StatusCanceled.Fail()
		require.Error(t, err)

		next, err := delivery.StatusInTransit.Fail()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusFailed, next)
	})

	t.Run("cancel blocked from the other final states", func(t *testing.T) {
		_, err := delivery.StatusCompleted.Cancel()
		require.Error(t, err)
		_, err = delivery.StatusFailed.Cancel()
		require.Error(t, err)

		next, err := delivery.StatusCreated.Cancel()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCanceled, next)
	})
}

func TestStatusValidateCanHaveAgent(t *testing.T) {
	t.Run("agent required in active assigned states", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.StatusAssigned,
			delivery.StatusInTransit,
			delivery.StatusCompleted,
		} {
			require.NoError(t, s.ValidateCanHaveAgent(true), s.String())
			require.Error(t, s.ValidateCanHaveAgent(false), s.String())
		}
	})

	t.Run("agent forbidden before assignment", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.StatusCreated, delivery.StatusPendingAssignment} {
			require.NoError(t, s.ValidateCanHaveAgent(false), s.String())
			require.Error(t, s.ValidateCanHaveAgent(true), s.String())
		}
	})

	t.Run("final states keep agent history optionally", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.StatusFailed, delivery.StatusCanceled} {
			require.NoError(t, s.ValidateCanHaveAgent(true), s.String())
			require.NoError(t, s.ValidateCanHaveAgent(false), s.String())
		}
	})
}
