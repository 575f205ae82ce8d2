package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func catalogAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewCategoryController()

	router := gin.New()
	router.PATCH("/admin/categories/:id", ctrl.UpdateCategory)
	router.DELETE("/admin/categories/:id", ctrl.DeleteCategory)
	router.PATCH("/admin/subcategories/:id", ctrl.UpdateSubcategory)
	router.DELETE("/admin/subcategories/:id", ctrl.DeleteSubcategory)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogAdminRejectsMalformedID(t *testing.T) {
	router := catalogAdminRouter()

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPatch, "/admin/categories/not-a-uuid", `{"name":"Plumbing","slug":"plumbing"}`},
		{http.MethodDelete, "/admin/categories/not-a-uuid", ""},
		{http.MethodPatch, "/admin/subcategories/not-a-uuid", `{"categoryId":"` + uuid.New().String() + `","name":"Drains","slug":"drains"}`},
		{http.MethodDelete, "/admin/subcategories/not-a-uuid", ""},
	}
	for _, tc := range cases {
		w := doJSON(router, tc.method, tc.path, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: status = %d, want 400", tc.method, tc.path, w.Code)
		}
	}
}

func TestUpdateSubcategoryRejectsBadBody(t *testing.T) {
	router := catalogAdminRouter()
	id := uuid.New().String()

	// missing required fields
	w := doJSON(router, http.MethodPatch, "/admin/subcategories/"+id, `{"name":"Drains"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status = %d, want 400", w.Code)
	}

	// parent category id must be a UUID
	w = doJSON(router, http.MethodPatch, "/admin/subcategories/"+id,
		`{"categoryId":"nope","name":"Drains","slug":"drains"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad parent id: status = %d, want 400", w.Code)
	}
}
