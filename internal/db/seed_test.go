package db

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO channels`).
		WithArgs(pgxmock.AnyArg(), DemoAccountID, "demo-page", "Demo Page", "tok").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for i := 0; i < seedConversations; i++ {
		mock.ExpectExec(`INSERT INTO conversations`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), DemoAccountID, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO campaigns`).
			WithArgs(pgxmock.AnyArg(), DemoAccountID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	require.NoError(t, Seed(context.Background(), mock, "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedStopsOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO channels`).WillReturnError(errors.New("relation does not exist"))

	err = Seed(context.Background(), mock, "tok")
	require.ErrorContains(t, err, "seed channel")
}
