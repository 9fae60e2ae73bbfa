package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)
	return gormDB, mock
}

func TestRunLoadRejectsUnreadableExports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "truncated",
			content: `<drugbank xmlns="http://www.drugbank.ca"><drug type="biotech"><name>Half`,
			check: func(t *testing.T, err error) {
				var parseErr *drugbank.ParseError
				assert.True(t, errors.As(err, &parseErr), "got %v", err)
			},
		},
		{
			name:    "empty",
			content: "",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, drugbank.ErrEmptyDocument)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := setupMockDB(t)
			path := filepath.Join(t.TempDir(), "export.xml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			var out bytes.Buffer
			run, err := runLoad(context.Background(), &out, database, path)
			require.Error(t, err)
			assert.Nil(t, run)
			tt.check(t, err)
			assert.Empty(t, out.String())

			// Nothing was sent to the database.
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExtractFileToleratesUnreadableExports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(path, []byte("<drugbank><drug>"), 0o600))

	set, err := extractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, set.Drugs)

	_, err = readExport(context.Background(), path)
	assert.Error(t, err)
}
