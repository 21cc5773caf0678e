package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/migrations"
)

func Test_newDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		name          string
		dialect       migrations.Dialect
		classificator ErrorClassificator
		wantWhere     string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, classificator: NewPostgresErrorClassifier(), wantWhere: "WHERE id = $1"},
		{name: "sqlite", dialect: migrations.DialectSQLite, classificator: NewSQLiteErrorClassifier(), wantWhere: "WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, tt.classificator, logger.Nop())

			query, args, err := db.builder.Select("id").From("posts").Where("id = ?", 1).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.dialect, db.Dialect())
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, []any{1}, args)
		})
	}
}
