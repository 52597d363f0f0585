package migrations

import (
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	decimalPlacesRange = regexp.MustCompile(`decimal_places BETWEEN 0 AND (\d+)`)
	moneyColumn        = regexp.MustCompile(`(?m)^\s*(\w*(?:amount|balance)\w*)\s+NUMERIC\((\d+),(\d+)\)`)
	seededPlaces       = regexp.MustCompile(`\('([A-Z]{3})',[^)]*,\s*(\d+)\)`)
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	b, err := fs.ReadFile(migrationsFS, name)
	require.NoError(t, err)
	return string(b)
}

// Money columns must keep every digit a currency's precision allows, otherwise
// Postgres re-rounds normalized amounts on insert.
func TestMoneyColumnsCoverCurrencyPrecision(t *testing.T) {
	schema := readMigration(t, "000001_init_schema.up.sql")

	m := decimalPlacesRange.FindStringSubmatch(schema)
	require.Len(t, m, 2, "currencies.decimal_places range not found")
	maxPlaces, err := strconv.Atoi(m[1])
	require.NoError(t, err)

	columns := moneyColumn.FindAllStringSubmatch(schema, -1)
	require.NotEmpty(t, columns)
	for _, col := range columns {
		scale, err := strconv.Atoi(col[3])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, scale, maxPlaces, "column %s has scale %d", col[1], scale)
	}

	seed := readMigration(t, "000002_seed_reference_data.up.sql")
	currencies := seededPlaces.FindAllStringSubmatch(seed[:strings.Index(seed, ";")], -1)
	require.NotEmpty(t, currencies)
	for _, c := range currencies {
		places, err := strconv.Atoi(c[2])
		require.NoError(t, err)
		assert.LessOrEqual(t, places, maxPlaces, "currency %s", c[1])
	}
}
