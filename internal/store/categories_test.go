package store

import (
	"context"
	"testing"

	"comanda/internal/db"
)

func TestCreateAndGetCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	category, err := CreateCategory(ctx, database, "Desserts")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.Name != "Desserts" {
		t.Errorf("expected name 'Desserts', got %q", category.Name)
	}

	got, err := GetCategory(ctx, database, category.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got == nil || got.Name != "Desserts" {
		t.Errorf("expected 'Desserts', got %+v", got)
	}

	missing, err := GetCategory(ctx, database, "no-such-category")
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing category")
	}
}

func TestListCategories(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateCategory(ctx, database, "Drinks")
	CreateCategory(ctx, database, "Pizzas")

	categories, err := ListCategories(ctx, database)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}
}
