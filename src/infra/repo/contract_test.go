package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/src/core/domain"
	"phonebook/src/core/ports"
)

// testContactRepository runs the behaviour every ContactRepository shares.
// newRepo must return an empty store on each call.
func testContactRepository(t *testing.T, newRepo func(t *testing.T) ports.ContactRepository) {
	t.Run("crud", func(t *testing.T) {
		ctx := context.Background()
		r := newRepo(t)

		all, err := r.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		john, err := r.Create(ctx, domain.NewContact("John Doe", "1234567890"))
		require.NoError(t, err)
		jane, err := r.Create(ctx, domain.NewContact("Jane Doe", "0987654321"))
		require.NoError(t, err)
		assert.True(t, john.IsPersisted())
		assert.Greater(t, jane.ID, john.ID)

		got, err := r.GetByID(ctx, john.ID)
		require.NoError(t, err)
		assert.Equal(t, john, got)

		all, err = r.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Contact{*john, *jane}, all)

		require.NoError(t, r.Update(ctx, john.ID, &domain.Contact{Name: "John Updated", PhoneNumber: "9876543210"}))
		got, err = r.GetByID(ctx, john.ID)
		require.NoError(t, err)
		assert.Equal(t, &domain.Contact{ID: john.ID, Name: "John Updated", PhoneNumber: "9876543210"}, got)

		require.NoError(t, r.Delete(ctx, john.ID))
		_, err = r.GetByID(ctx, john.ID)
		assert.True(t, domain.IsNotFound(err))

		all, err = r.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Contact{*jane}, all)

		third, err := r.Create(ctx, domain.NewContact("Third", "555"))
		require.NoError(t, err)
		assert.Greater(t, third.ID, jane.ID, "ids are not reused after delete")
	})

	t.Run("missing id", func(t *testing.T) {
		ctx := context.Background()
		r := newRepo(t)

		for _, id := range []int64{99, 0, -1} {
			_, err := r.GetByID(ctx, id)
			assert.True(t, domain.IsNotFound(err), "get %d", id)
			assert.True(t, domain.IsNotFound(r.Update(ctx, id, domain.NewContact("x", "1"))), "update %d", id)
			assert.True(t, domain.IsNotFound(r.Delete(ctx, id)), "delete %d", id)
		}
	})

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Health(context.Background()))
	})
}
