package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripStore_Delete(t *testing.T) {
	t.Run("issues a real DELETE, not a soft-delete UPDATE", func(t *testing.T) {
		db, mock := newTestDB(t)
		st := NewTripStore(db)

		mock.ExpectExec(`DELETE FROM "trips" WHERE "trips"\."id" = .+`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := st.Delete(5)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
