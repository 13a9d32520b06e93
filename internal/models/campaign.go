package models

import "time"

// Campaign objectives
const (
	ObjectiveAwareness = "awareness"
	ObjectiveTraffic   = "traffic"
	ObjectiveSales     = "sales"
)

// Campaign statuses
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// Audience genders
const (
	GenderAll    = "all"
	GenderMale   = "male"
	GenderFemale = "female"
)

type Campaign struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Objective          string    `json:"objective"`
	Budget             int       `json:"budget"`
	AdCopy             string    `json:"adCopy"`
	ProductDescription *string   `json:"productDescription"`
	ImageURL           *string   `json:"imageUrl"`
	TargetLocation     string    `json:"targetLocation"`
	AgeFrom            int       `json:"ageFrom"`
	AgeTo              int       `json:"ageTo"`
	Gender             string    `json:"gender"`
	Status             string    `json:"status"`
	Reach              int       `json:"reach"`
	CreatedAt          time.Time `json:"createdAt"`
}

// TargetLocations is the predefined audience location list. A campaign may
// still carry a free-form location supplied by the user.
var TargetLocations = []string{
	"All India", "Mumbai", "Delhi", "Bangalore", "Chennai",
	"Hyderabad", "Pune", "Kolkata", "Ahmedabad", "Jaipur",
}

// AgeBrackets are the selectable bounds for the audience age range.
var AgeBrackets = []int{18, 25, 35, 45, 55, 65}

func IsValidObjective(s string) bool {
	switch s {
	case ObjectiveAwareness, ObjectiveTraffic, ObjectiveSales:
		return true
	}
	return false
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

func IsValidGender(s string) bool {
	switch s {
	case GenderAll, GenderMale, GenderFemale:
		return true
	}
	return false
}

// ObjectiveLabel maps an objective to its display label. Unknown values get
// an explicit default rather than an empty string.
func ObjectiveLabel(objective string) string {
	switch objective {
	case ObjectiveAwareness:
		return "Brand Awareness"
	case ObjectiveTraffic:
		return "Website Traffic"
	case ObjectiveSales:
		return "Sales"
	default:
		return "General Marketing"
	}
}

// StatusColor maps a status to the dashboard badge color.
func StatusColor(status string) string {
	switch status {
	case StatusActive:
		return "green"
	case StatusPaused:
		return "yellow"
	case StatusCompleted:
		return "gray"
	default:
		return "gray"
	}
}
