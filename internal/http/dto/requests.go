package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name               string  `json:"name"`
	Objective          string  `json:"objective"`
	Budget             int     `json:"budget"`
	AdCopy             string  `json:"adCopy"`
	ProductDescription *string `json:"productDescription,omitempty"`
	ImageURL           *string `json:"imageUrl,omitempty"`
	TargetLocation     string  `json:"targetLocation"`
	AgeFrom            int     `json:"ageFrom"`
	AgeTo              int     `json:"ageTo"`
	Gender             string  `json:"gender"`
	Status             string  `json:"status,omitempty"`
}

type UpdateCampaignRequest struct {
	Name               *string `json:"name,omitempty"`
	Objective          *string `json:"objective,omitempty"`
	Budget             *int    `json:"budget,omitempty"`
	AdCopy             *string `json:"adCopy,omitempty"`
	ProductDescription *string `json:"productDescription,omitempty"`
	ImageURL           *string `json:"imageUrl,omitempty"`
	TargetLocation     *string `json:"targetLocation,omitempty"`
	AgeFrom            *int    `json:"ageFrom,omitempty"`
	AgeTo              *int    `json:"ageTo,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	Status             *string `json:"status,omitempty"`
}

// Ad copy

type GenerateAdCopyRequest struct {
	ProductDescription string `json:"productDescription"`
	Objective          string `json:"objective"`
}
