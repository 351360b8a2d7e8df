package store_test

import (
	"context"
	"testing"

	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_List(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	routeStore := store.NewRoute(createTestDB(t, "routes_list"))

	testCases := [...]struct {
		desc        string
		filter      service.ListRoutesFilter
		expectedIDs []int
	}{
		{
			desc:        "positive: all routes returned without filter",
			expectedIDs: []int{1, 2},
		},
		{
			desc:        "positive: routes matched case-insensitively",
			filter:      service.ListRoutesFilter{Source: "HYDERABAD", Destination: "bangalore"},
			expectedIDs: []int{1, 2},
		},
		{
			desc:   "positive: no routes for unknown destination",
			filter: service.ListRoutesFilter{Source: "Hyderabad", Destination: "Chennai"},
		},
		{
			desc:        "positive: first page",
			filter:      service.ListRoutesFilter{Pagination: &service.Pagination{Page: 1, Limit: 1}},
			expectedIDs: []int{1},
		},
		{
			desc:        "positive: second page with search filter",
			filter:      service.ListRoutesFilter{Source: "hyderabad", Destination: "Bangalore", Pagination: &service.Pagination{Page: 2, Limit: 1}},
			expectedIDs: []int{2},
		},
		{
			desc:   "positive: page after the last one is empty",
			filter: service.ListRoutesFilter{Pagination: &service.Pagination{Page: 3, Limit: 1}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			routes, err := routeStore.List(ctx, tc.filter)
			require.NoError(t, err)

			var ids []int
			for _, route := range routes {
				ids = append(ids, route.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestRoute_Get(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	routeStore := store.NewRoute(createTestDB(t, "routes_get"))

	t.Run("positive: seeded route returned with all fields", func(t *testing.T) {
		t.Parallel()

		route, err := routeStore.Get(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, route)

		assert.Equal(t, "TGSRTC Express", route.Operator)
		assert.Equal(t, "Hyderabad", route.From)
		assert.Equal(t, "Bangalore", route.To)
		assert.Equal(t, "2025-10-19", route.Date)
		assert.Equal(t, "45.00", route.Price)
		assert.Equal(t, "40.00", route.DiscountPrice)
		assert.Equal(t, 4.5, route.Rating)
		assert.Equal(t, 234, route.Reviews)
		assert.Equal(t, []string{"WiFi", "Charging Port", "Water Bottle"}, []string(route.Amenities))
	})

	t.Run("negative: unknown route returns nil", func(t *testing.T) {
		t.Parallel()

		route, err := routeStore.Get(ctx, 100)
		require.NoError(t, err)
		assert.Nil(t, route)
	})
}
