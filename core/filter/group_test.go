// core/filter/group_test.go
package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdfilter-core/domain"
)

func span(key string, start, end int) domain.Hit {
	return domain.Hit{Key: key, Type: key, Start: start, End: end}
}

func TestGroupOverlappingEmpty(t *testing.T) {
	assert.Empty(t, GroupOverlapping(nil))
	assert.Empty(t, GroupOverlapping([]domain.Hit{}))
}

// Pins the exact boundary behavior of the slack check: with border=100,
// a hit starting at 95 gives 95+10=105 > 100, so it opens a new group.
func TestGroupOverlappingSlackBoundary(t *testing.T) {
	hits := []domain.Hit{
		span("A", 10, 100),
		span("B", 95, 200),
		span("C", 500, 600),
	}

	groups := GroupOverlapping(hits)
	require.Len(t, groups, 3)
	assert.Equal(t, "A", groups[0][0].Key)
	assert.Equal(t, "B", groups[1][0].Key)
	assert.Equal(t, "C", groups[2][0].Key)
}

func TestGroupOverlappingJoinsWithinSlack(t *testing.T) {
	hits := []domain.Hit{
		span("A", 0, 100),
		span("B", 90, 200), // 90+10 <= 100 joins
		span("C", 205, 300),
	}

	groups := GroupOverlapping(hits)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "C", groups[1][0].Key)
}

// The border tracks the running max end, so a short hit contained in a long
// one does not shrink the group.
func TestGroupOverlappingBorderIsMaxEnd(t *testing.T) {
	hits := []domain.Hit{
		span("A", 0, 500),
		span("B", 100, 150),
		span("C", 400, 600),
	}

	groups := GroupOverlapping(hits)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)
}

func TestGroupOverlappingSortsInput(t *testing.T) {
	hits := []domain.Hit{
		span("C", 500, 600),
		span("A", 0, 100),
		span("B", 50, 150),
	}

	groups := GroupOverlapping(hits)
	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0][0].Key)
	assert.Equal(t, "B", groups[0][1].Key)
}

// Every input hit must land in exactly one group.
func TestGroupOverlappingPartitionsInput(t *testing.T) {
	hits := []domain.Hit{
		span("A", 0, 100),
		span("B", 95, 130),
		span("C", 105, 300),
		span("D", 320, 400),
		span("E", 395, 480),
	}

	groups := GroupOverlapping(hits)
	total := 0
	seen := map[string]int{}
	for _, g := range groups {
		require.NotEmpty(t, g)
		total += len(g)
		for _, h := range g {
			seen[h.Key]++
		}
	}
	assert.Equal(t, len(hits), total)
	for _, h := range hits {
		assert.Equal(t, 1, seen[h.Key], "hit %s", h.Key)
	}
}

func TestForEachGroupStopsOnError(t *testing.T) {
	hits := []domain.Hit{
		span("A", 0, 100),
		span("B", 200, 300),
	}

	boom := errors.New("boom")
	calls := 0
	err := ForEachGroup(hits, func([]domain.Hit) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
