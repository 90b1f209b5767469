package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eugene-eats-backend/models"

	"github.com/google/uuid"
)

func TestGetCategoriesList(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	seedCategory(db, "Pizza")
	seedCategory(db, "Coffee")
	seedCategory(db, "Food Trucks")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	result := parseResponseArray(w)
	if len(result) != 3 {
		t.Errorf("expected 3 categories, got %d", len(result))
	}
}

func TestGetCategoriesEmpty(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	result := parseResponseArray(w)
	if len(result) != 0 {
		t.Errorf("expected 0 categories on fresh DB, got %d", len(result))
	}
}

func TestGetCategoryByIDWithBusinesses(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	cat := seedCategory(db, "Breweries")
	seedBusiness(db, "Hop Valley", cat.ID)
	seedBusiness(db, "Ninkasi", cat.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", fmt.Sprintf("/api/categories/%s", cat.ID), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["name"] != "Breweries" {
		t.Errorf("expected name 'Breweries', got %v", resp["name"])
	}

	businesses, ok := resp["businesses"].([]interface{})
	if !ok {
		t.Fatal("expected businesses array in response")
	}
	if len(businesses) != 2 {
		t.Errorf("expected 2 businesses in category, got %d", len(businesses))
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", fmt.Sprintf("/api/categories/%s", uuid.New()), nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["error"] != "Category not found" {
		t.Errorf("expected 'Category not found', got %v", resp["error"])
	}
}

func TestCreateCategory(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	body := map[string]interface{}{
		"name":        "Bakeries",
		"icon":        "croissant",
		"description": "Fresh bread and pastries",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/categories", body, adminToken))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["name"] != "Bakeries" {
		t.Errorf("expected name 'Bakeries', got %v", resp["name"])
	}

	var count int64
	db.Model(&models.Category{}).Where("name = ?", "Bakeries").Count(&count)
	if count != 1 {
		t.Error("expected category to be saved in database")
	}
}

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, token := seedTestUser(db, "viewer@test.com", "viewer")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/categories", map[string]interface{}{"name": "Nope"}, token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCategoryInvalidBody(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)
	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/categories", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateCategory(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")
	cat := seedCategory(db, "Old Category Name")

	body := map[string]interface{}{
		"name":        "Updated Category Name",
		"description": "Updated description",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", fmt.Sprintf("/api/admin/categories/%s", cat.ID), body, adminToken))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["name"] != "Updated Category Name" {
		t.Errorf("expected updated name, got %v", resp["name"])
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)
	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	req := authRequest("PUT", "/api/admin/categories/"+uuid.New().String(),
		map[string]interface{}{"name": "Ghost"}, adminToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteCategorySuccess(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")
	cat := seedCategory(db, "Delete Me")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", fmt.Sprintf("/api/admin/categories/%s", cat.ID), nil, adminToken))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Category{}).Where("id = ?", cat.ID).Count(&count)
	if count != 0 {
		t.Error("expected category to be soft deleted")
	}
}

func TestDeleteCategoryWithBusinessesFails(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")
	cat := seedCategory(db, "Category With Businesses")
	seedBusiness(db, "Linked Business", cat.ID)
	seedBusiness(db, "Another Linked Business", cat.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", fmt.Sprintf("/api/admin/categories/%s", cat.ID), nil, adminToken))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["error"] != "Cannot delete category with associated businesses" {
		t.Errorf("expected dependency error, got %v", resp["error"])
	}
	bizCount, ok := resp["business_count"].(float64)
	if !ok || int(bizCount) != 2 {
		t.Errorf("expected business_count 2, got %v", resp["business_count"])
	}

	// Category must still exist
	var count int64
	db.Model(&models.Category{}).Where("id = ?", cat.ID).Count(&count)
	if count != 1 {
		t.Error("expected category to survive a blocked delete")
	}
}
