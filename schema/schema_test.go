package schema_test

import (
	"testing"

	"github.com/syssam/entigen/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableValidate(t *testing.T) {
	t.Run("valid_table", func(t *testing.T) {
		tbl := schema.Table{
			Name: "user_accounts",
			Columns: []schema.Column{
				{Name: "user_id", DataType: "int", PrimaryKey: true, Ordinal: 1},
				{Name: "username", DataType: "varchar", MaxLength: 50, Ordinal: 2},
			},
		}
		require.NoError(t, tbl.Validate())
	})

	t.Run("empty_column_set_is_valid", func(t *testing.T) {
		tbl := schema.Table{Name: "empty_table"}
		assert.NoError(t, tbl.Validate())
	})

	t.Run("empty_table_name", func(t *testing.T) {
		tbl := schema.Table{Columns: []schema.Column{{Name: "id", Ordinal: 1}}}
		assert.Error(t, tbl.Validate())
	})

	t.Run("duplicate_ordinal", func(t *testing.T) {
		tbl := schema.Table{
			Name: "t",
			Columns: []schema.Column{
				{Name: "a", Ordinal: 1},
				{Name: "b", Ordinal: 1},
			},
		}
		assert.Error(t, tbl.Validate())
	})

	t.Run("decreasing_ordinal", func(t *testing.T) {
		tbl := schema.Table{
			Name: "t",
			Columns: []schema.Column{
				{Name: "a", Ordinal: 2},
				{Name: "b", Ordinal: 1},
			},
		}
		assert.Error(t, tbl.Validate())
	})

	t.Run("empty_column_name", func(t *testing.T) {
		tbl := schema.Table{
			Name:    "t",
			Columns: []schema.Column{{Ordinal: 1}},
		}
		assert.Error(t, tbl.Validate())
	})
}
