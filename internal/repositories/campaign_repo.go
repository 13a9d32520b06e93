package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/adlaunch/backend/internal/models"
)

// CampaignRepo is a process-local campaign store. Records live for the
// lifetime of one server process; durability is out of scope.
type CampaignRepo struct {
	mu        sync.RWMutex
	campaigns map[string]*models.Campaign
	now       func() time.Time
}

func NewCampaignRepo() *CampaignRepo {
	return &CampaignRepo{
		campaigns: make(map[string]*models.Campaign),
		now:       time.Now,
	}
}

// CreateCampaignInput carries the caller-supplied fields of a new campaign.
// ID, reach and creation time are always assigned by the store.
type CreateCampaignInput struct {
	Name               string
	Objective          string
	Budget             int
	AdCopy             string
	ProductDescription *string
	ImageURL           *string
	TargetLocation     string
	AgeFrom            int
	AgeTo              int
	Gender             string
	Status             string
}

func (r *CampaignRepo) Create(in CreateCampaignInput) *models.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	c := &models.Campaign{
		ID:                 models.NewCampaignID(now),
		Name:               in.Name,
		Objective:          in.Objective,
		Budget:             in.Budget,
		AdCopy:             in.AdCopy,
		ProductDescription: in.ProductDescription,
		ImageURL:           in.ImageURL,
		TargetLocation:     in.TargetLocation,
		AgeFrom:            in.AgeFrom,
		AgeTo:              in.AgeTo,
		Gender:             in.Gender,
		Status:             status,
		Reach:              models.Reach(in.Budget),
		CreatedAt:          now,
	}

	r.campaigns[c.ID] = c
	return copyCampaign(c)
}

func (r *CampaignRepo) GetByID(id string) (*models.Campaign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.campaigns[id]
	if !ok {
		return nil, false
	}
	return copyCampaign(c), true
}

// List returns all campaigns, newest first.
func (r *CampaignRepo) List() []models.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CampaignUpdate holds a partial update; nil fields are left untouched.
// Reach is deliberately absent: it is derived once at creation and goes
// stale after a budget edit.
type CampaignUpdate struct {
	Name               *string
	Objective          *string
	Budget             *int
	AdCopy             *string
	ProductDescription *string
	ImageURL           *string
	TargetLocation     *string
	AgeFrom            *int
	AgeTo              *int
	Gender             *string
	Status             *string
}

// Update merges the given fields into an existing campaign. An unknown id
// is not an error; the second return value reports whether a record was
// found.
func (r *CampaignRepo) Update(id string, u CampaignUpdate) (*models.Campaign, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[id]
	if !ok {
		return nil, false
	}

	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Objective != nil {
		c.Objective = *u.Objective
	}
	if u.Budget != nil {
		c.Budget = *u.Budget
	}
	if u.AdCopy != nil {
		c.AdCopy = *u.AdCopy
	}
	if u.ProductDescription != nil {
		c.ProductDescription = u.ProductDescription
	}
	if u.ImageURL != nil {
		c.ImageURL = u.ImageURL
	}
	if u.TargetLocation != nil {
		c.TargetLocation = *u.TargetLocation
	}
	if u.AgeFrom != nil {
		c.AgeFrom = *u.AgeFrom
	}
	if u.AgeTo != nil {
		c.AgeTo = *u.AgeTo
	}
	if u.Gender != nil {
		c.Gender = *u.Gender
	}
	if u.Status != nil {
		c.Status = *u.Status
	}

	return copyCampaign(c), true
}

// Delete removes a campaign and reports whether it existed.
func (r *CampaignRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return false
	}
	delete(r.campaigns, id)
	return true
}

func copyCampaign(c *models.Campaign) *models.Campaign {
	out := *c
	return &out
}

func strPtr(s string) *string { return &s }

// SeedDemo loads sample campaigns so a fresh deployment has something on
// the dashboard. Called from main, never from the constructor, so tests
// always start from an empty store.
func (r *CampaignRepo) SeedDemo() {
	samples := []*models.Campaign{
		{
			ID:                 "AD-2024-001234",
			Name:               "Organic Soaps Campaign",
			Objective:          models.ObjectiveSales,
			Budget:             5000,
			AdCopy:             "Pamper yourself with nature's best! Our organic soaps are gentle on your skin and kind to the planet. Order yours today! 🛒",
			ProductDescription: strPtr("Handmade organic soaps with natural ingredients"),
			TargetLocation:     "All India",
			AgeFrom:            18,
			AgeTo:              65,
			Gender:             models.GenderAll,
			Status:             models.StatusActive,
			Reach:              50000,
			CreatedAt:          time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:                 "AD-2024-001233",
			Name:               "Summer Collection",
			Objective:          models.ObjectiveAwareness,
			Budget:             2500,
			AdCopy:             "Discover our latest summer collection! Fresh styles for the sunny season.",
			ProductDescription: strPtr("Summer clothing collection"),
			TargetLocation:     "Mumbai",
			AgeFrom:            25,
			AgeTo:              45,
			Gender:             models.GenderAll,
			Status:             models.StatusActive,
			Reach:              25000,
			CreatedAt:          time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:                 "AD-2024-001232",
			Name:               "Holiday Special",
			Objective:          models.ObjectiveTraffic,
			Budget:             5000,
			AdCopy:             "Don't miss our holiday special offers! Visit our website for amazing deals.",
			ProductDescription: strPtr("Holiday promotional offers"),
			TargetLocation:     "Delhi",
			AgeFrom:            18,
			AgeTo:              55,
			Gender:             models.GenderAll,
			Status:             models.StatusCompleted,
			Reach:              50000,
			CreatedAt:          time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC),
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range samples {
		r.campaigns[c.ID] = c
	}
}
