package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/adlaunch/backend/internal/models"
)

func TestCreateAssignsDerivedFields(t *testing.T) {
	repo := NewCampaignRepo()

	desc := "Handmade organic soaps"
	c := repo.Create(CreateCampaignInput{
		Name:               "Organic Soaps Campaign",
		Objective:          models.ObjectiveSales,
		Budget:             5000,
		AdCopy:             "Buy now!",
		ProductDescription: &desc,
		TargetLocation:     "All India",
		AgeFrom:            18,
		AgeTo:              65,
		Gender:             models.GenderAll,
	})

	if !regexp.MustCompile(`^AD-\d{4}-\d{6}$`).MatchString(c.ID) {
		t.Errorf("Create() id = %q, want AD-<year>-<6 digits>", c.ID)
	}
	if c.Reach != 50000 {
		t.Errorf("Create() reach = %d, want 50000", c.Reach)
	}
	if c.Status != models.StatusActive {
		t.Errorf("Create() status = %q, want %q (default)", c.Status, models.StatusActive)
	}
	if c.CreatedAt.IsZero() {
		t.Error("Create() did not stamp createdAt")
	}
	if c.ImageURL != nil {
		t.Errorf("Create() imageUrl = %v, want nil", *c.ImageURL)
	}
}

func TestCreateReachIsTenTimesBudget(t *testing.T) {
	repo := NewCampaignRepo()

	for _, budget := range []int{500, 750, 1000, 5000, 99999} {
		c := repo.Create(CreateCampaignInput{
			Objective:      models.ObjectiveTraffic,
			Budget:         budget,
			AdCopy:         "Visit us!",
			TargetLocation: "Mumbai",
			AgeFrom:        18,
			AgeTo:          65,
			Gender:         models.GenderAll,
		})
		if c.Reach != budget*10 {
			t.Errorf("Create(budget=%d) reach = %d, want %d", budget, c.Reach, budget*10)
		}
	}
}

func TestCreateKeepsExplicitStatus(t *testing.T) {
	repo := NewCampaignRepo()

	c := repo.Create(CreateCampaignInput{
		Objective:      models.ObjectiveSales,
		Budget:         1000,
		AdCopy:         "x",
		TargetLocation: "Delhi",
		AgeFrom:        18,
		AgeTo:          25,
		Gender:         models.GenderAll,
		Status:         models.StatusPaused,
	})

	if c.Status != models.StatusPaused {
		t.Errorf("Create() status = %q, want %q", c.Status, models.StatusPaused)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewCampaignRepo()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Hour)}
	i := 0
	repo.now = func() time.Time {
		ts := times[i]
		i++
		return ts
	}

	c1 := repo.Create(CreateCampaignInput{Objective: models.ObjectiveSales, Budget: 500, AdCopy: "a", TargetLocation: "Pune", AgeFrom: 18, AgeTo: 25, Gender: models.GenderAll})
	c2 := repo.Create(CreateCampaignInput{Objective: models.ObjectiveTraffic, Budget: 600, AdCopy: "b", TargetLocation: "Pune", AgeFrom: 18, AgeTo: 25, Gender: models.GenderAll})

	list := repo.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d campaigns, want 2", len(list))
	}
	if list[0].ID != c2.ID || list[1].ID != c1.ID {
		t.Errorf("List() order = [%s, %s], want [%s, %s]", list[0].ID, list[1].ID, c2.ID, c1.ID)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewCampaignRepo()

	if _, ok := repo.GetByID("AD-2025-000000"); ok {
		t.Error("GetByID(unknown) reported found")
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo := NewCampaignRepo()

	created := repo.Create(CreateCampaignInput{
		Objective:      models.ObjectiveSales,
		Budget:         2000,
		AdCopy:         "original copy",
		TargetLocation: "Chennai",
		AgeFrom:        25,
		AgeTo:          45,
		Gender:         models.GenderFemale,
	})

	status := models.StatusPaused
	updated, ok := repo.Update(created.ID, CampaignUpdate{Status: &status})
	if !ok {
		t.Fatal("Update() reported not found for existing campaign")
	}

	if updated.Status != models.StatusPaused {
		t.Errorf("Update() status = %q, want %q", updated.Status, models.StatusPaused)
	}
	if updated.AdCopy != "original copy" || updated.Budget != 2000 || updated.TargetLocation != "Chennai" {
		t.Error("Update() touched fields outside the partial update")
	}
}

func TestUpdateLeavesReachStale(t *testing.T) {
	repo := NewCampaignRepo()

	created := repo.Create(CreateCampaignInput{
		Objective:      models.ObjectiveSales,
		Budget:         1000,
		AdCopy:         "x",
		TargetLocation: "Delhi",
		AgeFrom:        18,
		AgeTo:          25,
		Gender:         models.GenderAll,
	})

	budget := 9000
	updated, ok := repo.Update(created.ID, CampaignUpdate{Budget: &budget})
	if !ok {
		t.Fatal("Update() reported not found for existing campaign")
	}

	// Reach is derived once at creation and intentionally not recomputed.
	if updated.Budget != 9000 {
		t.Errorf("Update() budget = %d, want 9000", updated.Budget)
	}
	if updated.Reach != 10000 {
		t.Errorf("Update() reach = %d, want 10000 (stale creation-time value)", updated.Reach)
	}
}

func TestUpdateUnknown(t *testing.T) {
	repo := NewCampaignRepo()

	status := models.StatusPaused
	if _, ok := repo.Update("AD-2025-999999", CampaignUpdate{Status: &status}); ok {
		t.Error("Update(unknown) reported found")
	}
}

func TestDelete(t *testing.T) {
	repo := NewCampaignRepo()

	c := repo.Create(CreateCampaignInput{Objective: models.ObjectiveSales, Budget: 500, AdCopy: "x", TargetLocation: "Jaipur", AgeFrom: 18, AgeTo: 25, Gender: models.GenderAll})

	if !repo.Delete(c.ID) {
		t.Error("Delete(existing) = false, want true")
	}
	if _, ok := repo.GetByID(c.ID); ok {
		t.Error("campaign still present after Delete")
	}
	if repo.Delete(c.ID) {
		t.Error("Delete(already deleted) = true, want false")
	}
	if repo.Delete("AD-2025-000000") {
		t.Error("Delete(unknown) = true, want false")
	}
}

func TestSeedDemo(t *testing.T) {
	repo := NewCampaignRepo()
	repo.SeedDemo()

	list := repo.List()
	if len(list) != 3 {
		t.Fatalf("SeedDemo() loaded %d campaigns, want 3", len(list))
	}

	// Newest first
	wantOrder := []string{"AD-2024-001234", "AD-2024-001233", "AD-2024-001232"}
	for i, want := range wantOrder {
		if list[i].ID != want {
			t.Errorf("List()[%d].ID = %q, want %q", i, list[i].ID, want)
		}
	}
}

func TestMutatingReturnedCampaignDoesNotAffectStore(t *testing.T) {
	repo := NewCampaignRepo()

	c := repo.Create(CreateCampaignInput{Objective: models.ObjectiveSales, Budget: 500, AdCopy: "x", TargetLocation: "Pune", AgeFrom: 18, AgeTo: 25, Gender: models.GenderAll})
	c.Budget = 0

	stored, _ := repo.GetByID(c.ID)
	if stored.Budget != 500 {
		t.Errorf("stored budget = %d after caller mutation, want 500", stored.Budget)
	}
}
