package panelsdk_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/eventfest/panel/pkg/panelsdk"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("categories unwrap", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/admin/get-category", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"category": [
					{"_id": "c1", "name": "Technology", "slug": "technology",
					 "subCategoryCount": 3, "isActive": true, "isFeatured": false}
				]
			}`))
		}, &stubSessions{token: "tok.en.sig"})

		categories, err := client.Categories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)
		require.Equal(t, "Technology", categories[0].Name)
		require.Equal(t, 3, categories[0].SubCategoryCount)
	})

	t.Run("sub-categories are scoped to a category", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/admin/get-sub-category/c1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"subCategories": [{"_id": "s1", "name": "AI", "isActive": true}]}`))
		}, &stubSessions{token: "tok.en.sig"})

		subs, err := client.SubCategories(context.Background(), "c1")
		require.NoError(t, err)
		require.Len(t, subs, 1)
		require.Equal(t, "AI", subs[0].Name)
	})

	t.Run("cities unwrap the data envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [{"_id": "city1", "city": "Pune", "is_active": true}]}`))
		}, &stubSessions{token: "tok.en.sig"})

		cities, err := client.Cities(context.Background())
		require.NoError(t, err)
		require.Len(t, cities, 1)
		require.True(t, cities[0].IsActive)
	})

	t.Run("edit city requires an id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request should be dispatched")
		}, &stubSessions{})

		_, err := client.EditCity(context.Background(), "", panelsdk.CityForm{})
		require.Error(t, err)
	})
}
