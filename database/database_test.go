package database

import (
	"os"
	"testing"

	"eugene-eats-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	// SQLite-compatible DDL; AutoMigrate emits PostgreSQL-specific defaults
	// like gen_random_uuid() that SQLite cannot parse.
	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY, "email" TEXT NOT NULL UNIQUE, "password" TEXT NOT NULL,
			"name" TEXT, "role" TEXT DEFAULT 'admin',
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "categories" (
			"id" TEXT PRIMARY KEY, "name" TEXT NOT NULL UNIQUE, "icon" TEXT, "description" TEXT,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "businesses" (
			"id" TEXT PRIMARY KEY, "name" TEXT NOT NULL, "slug" TEXT NOT NULL UNIQUE,
			"description" TEXT, "address" TEXT, "phone" TEXT, "website" TEXT, "image_url" TEXT,
			"category_id" TEXT NOT NULL, "is_featured" INTEGER DEFAULT 0, "is_active" INTEGER DEFAULT 1,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "business_hours" (
			"id" TEXT PRIMARY KEY, "business_id" TEXT NOT NULL, "day_of_week" INTEGER NOT NULL,
			"is_closed" INTEGER DEFAULT 0, "is_24_hours" INTEGER DEFAULT 0,
			"open_time" TEXT, "close_time" TEXT,
			"created_at" DATETIME, "updated_at" DATETIME
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_business_hours_day ON "business_hours"("business_id","day_of_week")`,
	}
	for _, sql := range tables {
		if err := db.Exec(sql).Error; err != nil {
			t.Fatal(err)
		}
	}

	return db
}

func seedBusinessRow(t *testing.T, db *gorm.DB) models.Business {
	cat := models.Category{Name: "Pizza"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	biz := models.Business{Name: "Track Town Pizza", Slug: "track-town-pizza", CategoryID: cat.ID, IsActive: true}
	if err := db.Create(&biz).Error; err != nil {
		t.Fatal(err)
	}
	return biz
}

func TestCreateDefaultAdmin(t *testing.T) {
	db := setupTestDB(t)
	os.Setenv("ADMIN_EMAIL", "admin@test.com")
	os.Setenv("ADMIN_PASSWORD", "secret123")
	defer os.Unsetenv("ADMIN_EMAIL")
	defer os.Unsetenv("ADMIN_PASSWORD")

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("CreateDefaultAdmin failed: %v", err)
	}

	var admin models.User
	if err := db.Where("email = ?", "admin@test.com").First(&admin).Error; err != nil {
		t.Fatal("admin user not created")
	}
	if admin.Role != "admin" {
		t.Errorf("expected role admin, got %s", admin.Role)
	}
	if admin.Password == "secret123" {
		t.Error("password stored in plaintext")
	}

	// Second run is a no-op
	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("second CreateDefaultAdmin failed: %v", err)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user after rerun, got %d", count)
	}
}

func TestSeedStarterCategoriesIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := SeedStarterCategories(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var first int64
	db.Model(&models.Category{}).Count(&first)
	if first == 0 {
		t.Fatal("expected starter categories to be created")
	}

	if err := SeedStarterCategories(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	var second int64
	db.Model(&models.Category{}).Count(&second)
	if second != first {
		t.Errorf("seed is not idempotent: %d then %d categories", first, second)
	}
}

func TestDefaultScheduleCoversWholeWeek(t *testing.T) {
	biz := seedBusinessRow(t, setupTestDB(t))

	week := DefaultSchedule(biz.ID)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	for i, day := range week {
		if day.DayOfWeek != i {
			t.Errorf("day %d has day_of_week %d", i, day.DayOfWeek)
		}
		if day.IsClosed || day.Is24Hours {
			t.Errorf("day %d should default to timed hours", i)
		}
		if day.OpenTime == nil || *day.OpenTime != DefaultOpenTime {
			t.Errorf("day %d open time = %v", i, day.OpenTime)
		}
		if day.CloseTime == nil || *day.CloseTime != DefaultCloseTime {
			t.Errorf("day %d close time = %v", i, day.CloseTime)
		}
	}
}

func TestReplaceScheduleRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	biz := seedBusinessRow(t, db)

	saved, err := ReplaceSchedule(db, biz.ID, DefaultSchedule(biz.ID))
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(saved) != 7 {
		t.Fatalf("expected 7 rows back, got %d", len(saved))
	}

	loaded, err := LoadSchedule(db, biz.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(loaded))
	}
	for i, row := range loaded {
		if row.DayOfWeek != i {
			t.Errorf("rows not ordered by day: index %d has day %d", i, row.DayOfWeek)
		}
		if row.OpenTime == nil || *row.OpenTime != DefaultOpenTime {
			t.Errorf("day %d open time = %v after round trip", i, row.OpenTime)
		}
	}
}

func TestReplaceScheduleOverwritesPreviousWeek(t *testing.T) {
	db := setupTestDB(t)
	biz := seedBusinessRow(t, db)

	if _, err := ReplaceSchedule(db, biz.ID, DefaultSchedule(biz.ID)); err != nil {
		t.Fatal(err)
	}

	// Resubmit a shorter week: Monday only, closed.
	replacement := []models.BusinessHours{{DayOfWeek: 1, IsClosed: true}}
	saved, err := ReplaceSchedule(db, biz.ID, replacement)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected the old week to be gone, got %d rows", len(saved))
	}
	if saved[0].DayOfWeek != 1 || !saved[0].IsClosed {
		t.Errorf("unexpected surviving row %+v", saved[0])
	}
}

func TestReplaceScheduleRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	biz := seedBusinessRow(t, db)

	if _, err := ReplaceSchedule(db, biz.ID, DefaultSchedule(biz.ID)); err != nil {
		t.Fatal(err)
	}

	// Duplicate day_of_week trips the unique index mid-insert; the whole
	// replace must roll back and leave the prior week intact.
	bad := []models.BusinessHours{
		{DayOfWeek: 2, IsClosed: true},
		{DayOfWeek: 2, IsClosed: true},
	}
	if _, err := ReplaceSchedule(db, biz.ID, bad); err == nil {
		t.Fatal("expected replace to fail on duplicate day")
	}

	loaded, err := LoadSchedule(db, biz.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 7 {
		t.Errorf("prior schedule lost: expected 7 rows, got %d", len(loaded))
	}
}

func TestLoadSchedulePartialWeek(t *testing.T) {
	db := setupTestDB(t)
	biz := seedBusinessRow(t, db)

	open, close := "08:00", "14:00"
	partial := []models.BusinessHours{
		{DayOfWeek: 6, OpenTime: &open, CloseTime: &close},
		{DayOfWeek: 0, IsClosed: true},
	}
	if _, err := ReplaceSchedule(db, biz.ID, partial); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSchedule(db, biz.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(loaded))
	}
	if loaded[0].DayOfWeek != 0 || loaded[1].DayOfWeek != 6 {
		t.Errorf("rows not ordered by day_of_week: %+v", loaded)
	}
}
