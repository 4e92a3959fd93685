package sql_test

import (
	"context"
	"errors"
	"testing"

	entsql "github.com/syssam/entigen/dialect/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	drv := entsql.OpenDB("mysql", db)
	defer drv.Close()

	mock.ExpectPing()
	require.NoError(t, drv.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err = drv.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entsql.ErrConnection))
}

func TestDriverAccessors(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	drv := entsql.OpenDB("mysql", db)
	defer drv.Close()

	assert.Equal(t, "mysql", drv.Dialect())
	assert.Same(t, db, drv.DB())
}
