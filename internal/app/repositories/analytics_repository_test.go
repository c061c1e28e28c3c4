package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCompleteQueryCountsAllRoles(t *testing.T) {
	repo := NewAnalyticsRepository(nil)

	for _, column := range []string{"github_link", "linkedin_link"} {
		sql, args, err := repo.linkCompleteQuery(column)
		require.NoError(t, err)

		assert.Contains(t, sql, column+" IS NOT NULL")
		assert.Contains(t, sql, column+" <> $1")
		assert.NotContains(t, sql, "role", "completeness counts cover staff and students alike")
		assert.Equal(t, []interface{}{""}, args)
	}
}
