package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAdminCatalogRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router)

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /admin/categories",
		"PATCH /admin/categories/:id",
		"DELETE /admin/categories/:id",
		"POST /admin/subcategories",
		"PATCH /admin/subcategories/:id",
		"DELETE /admin/subcategories/:id",
		"POST /admin/services",
		"PATCH /admin/services/:id",
		"DELETE /admin/services/:id",
	}
	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}
