package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	"github.com/adityakumar2809/recipe-app-api/internal/store"
)

func makeTestTag(id, userID, name string) *domain.Tag {
	now := time.Now().UTC()
	return &domain.Tag{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAndGetTag(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-t1", "tags@example.com")

	tag := makeTestTag("tag-1", "user-t1", "Vegan")
	if err := s.CreateTag(ctx, tag); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	got, err := s.GetTag(ctx, "tag-1")
	if err != nil {
		t.Fatalf("GetTag: %v", err)
	}
	if got.Name != "Vegan" {
		t.Errorf("Name: got %q, want %q", got.Name, "Vegan")
	}
	if got.UserID != "user-t1" {
		t.Errorf("UserID: got %q, want %q", got.UserID, "user-t1")
	}
	if got.CreatedAt.Unix() != tag.CreatedAt.Unix() {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, tag.CreatedAt)
	}
}

func TestGetTag_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetTag(ctx, "nonexistent")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *store.Error, got %T: %v", err, err)
	}
	if storeErr.Code != store.ErrNotFound.Code {
		t.Errorf("expected status %d, got %d", store.ErrNotFound.Code, storeErr.Code)
	}
}

func TestListUserTags_OrderedByNameDesc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-t2", "tags2@example.com")

	names := []struct {
		id   string
		name string
	}{
		{"tag-l1", "Breakfast"},
		{"tag-l2", "Vegan"},
		{"tag-l3", "Dessert"},
	}
	for _, td := range names {
		if err := s.CreateTag(ctx, makeTestTag(td.id, "user-t2", td.name)); err != nil {
			t.Fatalf("CreateTag(%s): %v", td.id, err)
		}
	}

	got, err := s.ListUserTags(ctx, "user-t2", false)
	if err != nil {
		t.Fatalf("ListUserTags: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(got))
	}

	// Reverse-alphabetical: Vegan, Dessert, Breakfast.
	want := []string{"Vegan", "Dessert", "Breakfast"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("item %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestListUserTags_ScopedToUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-t3", "tags3@example.com")
	insertTestUser(t, s, "user-t4", "tags4@example.com")

	if err := s.CreateTag(ctx, makeTestTag("tag-mine", "user-t3", "Comfort Food")); err != nil {
		t.Fatalf("CreateTag mine: %v", err)
	}
	if err := s.CreateTag(ctx, makeTestTag("tag-theirs", "user-t4", "Fruity")); err != nil {
		t.Fatalf("CreateTag theirs: %v", err)
	}

	got, err := s.ListUserTags(ctx, "user-t3", false)
	if err != nil {
		t.Fatalf("ListUserTags: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(got))
	}
	if got[0].ID != "tag-mine" {
		t.Errorf("got %q, want %q", got[0].ID, "tag-mine")
	}
}

func TestListUserTags_AssignedOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-t5", "tags5@example.com")

	assigned := makeTestTag("tag-a1", "user-t5", "Dinner")
	unassigned := makeTestTag("tag-a2", "user-t5", "Lunch")
	if err := s.CreateTag(ctx, assigned); err != nil {
		t.Fatalf("CreateTag assigned: %v", err)
	}
	if err := s.CreateTag(ctx, unassigned); err != nil {
		t.Fatalf("CreateTag unassigned: %v", err)
	}

	r := makeTestRecipe("recipe-ta1", "user-t5", "Coriander eggs on toast")
	r.TagIDs = []string{"tag-a1"}
	if err := s.CreateRecipe(ctx, r); err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	got, err := s.ListUserTags(ctx, "user-t5", true)
	if err != nil {
		t.Fatalf("ListUserTags(assignedOnly): %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 assigned tag, got %d", len(got))
	}
	if got[0].ID != "tag-a1" {
		t.Errorf("got %q, want %q", got[0].ID, "tag-a1")
	}
}

func TestListUserTags_AssignedOnlyDeduplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-t6", "tags6@example.com")

	tag := makeTestTag("tag-dd1", "user-t6", "Eggs")
	if err := s.CreateTag(ctx, tag); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	// Two recipes both reference the tag; it must appear once.
	for _, rid := range []string{"recipe-dd1", "recipe-dd2"} {
		r := makeTestRecipe(rid, "user-t6", "Eggs benedict")
		r.TagIDs = []string{"tag-dd1"}
		if err := s.CreateRecipe(ctx, r); err != nil {
			t.Fatalf("CreateRecipe(%s): %v", rid, err)
		}
	}

	got, err := s.ListUserTags(ctx, "user-t6", true)
	if err != nil {
		t.Fatalf("ListUserTags(assignedOnly): %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected deduplicated result of 1 tag, got %d", len(got))
	}
}

func TestGetTagsByIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-t7", "tags7@example.com")

	if err := s.CreateTag(ctx, makeTestTag("tag-b1", "user-t7", "Spicy")); err != nil {
		t.Fatalf("CreateTag b1: %v", err)
	}
	if err := s.CreateTag(ctx, makeTestTag("tag-b2", "user-t7", "Mild")); err != nil {
		t.Fatalf("CreateTag b2: %v", err)
	}

	got, err := s.GetTagsByIDs(ctx, []string{"tag-b1", "tag-b2", "tag-missing"})
	if err != nil {
		t.Fatalf("GetTagsByIDs: %v", err)
	}
	// Missing ids are silently absent.
	if len(got) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(got))
	}

	got, err = s.GetTagsByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("GetTagsByIDs(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for nil ids, got %d", len(got))
	}
}
