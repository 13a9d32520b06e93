package repositories

import (
	"testing"

	"github.com/google/uuid"
)

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepo()

	u := repo.Create("shopkeeper", "hash")
	if u.ID == uuid.Nil {
		t.Error("Create() did not assign an id")
	}
	if u.CreatedAt.IsZero() {
		t.Error("Create() did not stamp created_at")
	}

	byID, ok := repo.GetByID(u.ID)
	if !ok || byID.Username != "shopkeeper" {
		t.Errorf("GetByID() = %+v, %v; want the created user", byID, ok)
	}

	byName, ok := repo.GetByUsername("shopkeeper")
	if !ok || byName.ID != u.ID {
		t.Errorf("GetByUsername() = %+v, %v; want the created user", byName, ok)
	}
}

func TestUserLookupUnknown(t *testing.T) {
	repo := NewUserRepo()

	if _, ok := repo.GetByID(uuid.New()); ok {
		t.Error("GetByID(unknown) reported found")
	}
	if _, ok := repo.GetByUsername("nobody"); ok {
		t.Error("GetByUsername(unknown) reported found")
	}
}
