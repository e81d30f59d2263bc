package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyupgames/onlyup-backend/internal/apperror"
	"github.com/onlyupgames/onlyup-backend/internal/entity"
	"github.com/onlyupgames/onlyup-backend/testing/suite"
)

func testRecord(id string) *entity.Record {
	return &entity.Record{
		ID:     id,
		Winner: entity.PlayerX,
		Scores: map[string]int{
			entity.PlayerX: 5,
			entity.PlayerO: 3,
		},
		MoveCount:  entity.TotalCells,
		FinishedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestArchiveRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	archive := NewArchiveRepository(st.Storage)

	// Given: a finished game record
	record := testRecord("abc123")

	// When: saving it
	err := archive.Save(ctx, record)

	// Then: no error is returned and the record can be read back
	require.NoError(t, err)

	stored, err := archive.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, stored.ID)
	assert.Equal(t, record.Winner, stored.Winner)
	assert.Equal(t, record.Scores, stored.Scores)
	assert.Equal(t, record.MoveCount, stored.MoveCount)
	assert.True(t, record.FinishedAt.Equal(stored.FinishedAt))
}

func TestArchiveRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		archive := NewArchiveRepository(st.Storage)

		record := testRecord("abc123")
		require.NoError(t, archive.Save(ctx, record))

		// When: fetching an existing record
		stored, err := archive.GetByID(ctx, record.ID)

		// Then: the stored record matches the saved one
		require.NoError(t, err)
		assert.Equal(t, record.Winner, stored.Winner)
		assert.Equal(t, record.Scores, stored.Scores)
		assert.Equal(t, record.MoveCount, stored.MoveCount)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		archive := NewArchiveRepository(st.Storage)

		// When: fetching a record that was never saved
		stored, err := archive.GetByID(ctx, "missing")

		// Then: the not-found sentinel is returned
		require.ErrorIs(t, err, apperror.ErrRecordNotFound)
		assert.Nil(t, stored)
	})
}

func TestArchiveRepository_ListIDs(t *testing.T) {
	ctx, st := suite.New(t)

	archive := NewArchiveRepository(st.Storage)

	// Given: two archived games
	require.NoError(t, archive.Save(ctx, testRecord("first")))
	require.NoError(t, archive.Save(ctx, testRecord("second")))

	// When: listing the archive
	ids, err := archive.ListIDs(ctx)

	// Then: both IDs are indexed
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first", "second"}, ids)
}

func TestArchiveRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	archive := NewArchiveRepository(st.Storage)

	record := testRecord("abc123")
	require.NoError(t, archive.Save(ctx, record))

	// When: deleting the record
	err := archive.DeleteByID(ctx, record.ID)

	// Then: it is gone from both the store and the index
	require.NoError(t, err)

	_, err = archive.GetByID(ctx, record.ID)
	require.ErrorIs(t, err, apperror.ErrRecordNotFound)

	ids, err := archive.ListIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, record.ID)
}
