package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"CeibaCheckIn/mocks"
	"CeibaCheckIn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestCache_Load_Miss(t *testing.T) {
	rdb, rmock := mocks.NewRedisMock()
	repo := NewGuestCache(rdb, "guests")

	rmock.ExpectGet("guests").RedisNil()

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotStored)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestGuestCache_Load_Hit(t *testing.T) {
	rdb, rmock := mocks.NewRedisMock()
	repo := NewGuestCache(rdb, "guests")

	rmock.ExpectGet("guests").SetVal(`[{"name":"Ana López","day1":"Jaguar","day2":"","attended":true}]`)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Guest{{Name: "Ana López", Day1: "Jaguar", Attended: true}}, got)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestGuestCache_Load_StoredEmptyList(t *testing.T) {
	rdb, rmock := mocks.NewRedisMock()
	repo := NewGuestCache(rdb, "guests")

	rmock.ExpectGet("guests").SetVal(`[]`)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGuestCache_Load_CorruptValue(t *testing.T) {
	rdb, rmock := mocks.NewRedisMock()
	repo := NewGuestCache(rdb, "guests")

	rmock.ExpectGet("guests").SetVal(`{not json`)

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
	assert.False(t, IsNotStored(err))
}

func TestGuestCache_Save(t *testing.T) {
	rdb, rmock := mocks.NewRedisMock()
	repo := NewGuestCache(rdb, "guests")

	guests := []models.Guest{{Name: "Ana López", Day2: "Tapir"}}
	b, _ := json.Marshal(guests)
	rmock.ExpectSet("guests", b, 0).SetVal("OK")

	require.NoError(t, repo.Save(context.Background(), guests))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestGuestCache_Save_Error(t *testing.T) {
	rdb, rmock := mocks.NewRedisMock()
	repo := NewGuestCache(rdb, "guests")

	rmock.ExpectSet("guests", []byte(`[]`), 0).SetErr(errors.New("READONLY"))

	err := repo.Save(context.Background(), nil)
	assert.ErrorContains(t, err, "READONLY")
}
