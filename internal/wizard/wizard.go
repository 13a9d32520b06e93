package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/adlaunch/backend/internal/models"
	"github.com/adlaunch/backend/internal/repositories"
	"github.com/adlaunch/backend/internal/services"
	"go.uber.org/zap"
)

// Step is a position in the campaign-creation flow. The flow is linear:
// Welcome -> Objective -> Budget -> Creative -> Audience -> Preview, then
// Success after a launch.
type Step int

const (
	StepWelcome Step = iota
	StepObjective
	StepBudget
	StepCreative
	StepAudience
	StepPreview
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepObjective:
		return "objective"
	case StepBudget:
		return "budget"
	case StepCreative:
		return "creative"
	case StepAudience:
		return "audience"
	case StepPreview:
		return "preview"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// MinBudget is the lowest accepted campaign budget in rupees.
const MinBudget = 500

var (
	ErrObjectiveRequired   = errors.New("please select an objective")
	ErrBudgetTooLow        = errors.New("please set a budget of at least ₹500")
	ErrDescriptionRequired = errors.New("please describe your product or service")
	ErrAdCopyRequired      = errors.New("please generate and select ad copy")
	ErrLocationRequired    = errors.New("please select a target location")
	ErrNotAtPreview        = errors.New("campaign can only be launched from the preview step")
	ErrNoNextStep          = errors.New("no next step from here")
	ErrBusy                = errors.New("a request is already in flight")
)

// Draft is the in-progress campaign under construction. It is owned by one
// wizard session and is never partially persisted; only a fully validated
// draft becomes a campaign.
type Draft struct {
	Objective          string
	Budget             int
	ProductDescription string
	AdCopy             string
	ImageAttached      bool
	TargetLocation     string
	AgeFrom            int
	AgeTo              int
	Gender             string
	AutoAudience       bool
}

func NewDraft() Draft {
	return Draft{
		Budget:         5000,
		TargetLocation: "All India",
		AgeFrom:        18,
		AgeTo:          65,
		Gender:         models.GenderAll,
	}
}

// Suggester is the ad-copy dependency of the creative step.
type Suggester interface {
	Suggest(ctx context.Context, productDescription, objective string) ([]string, error)
}

// Wizard drives one campaign-creation session.
type Wizard struct {
	mu        sync.Mutex
	step      Step
	draft     Draft
	busy      bool
	launched  *models.Campaign
	campaigns *repositories.CampaignRepo
	suggester Suggester
	log       *zap.Logger
}

func New(campaigns *repositories.CampaignRepo, suggester Suggester, log *zap.Logger) *Wizard {
	return &Wizard{
		step:      StepWelcome,
		draft:     NewDraft(),
		campaigns: campaigns,
		suggester: suggester,
		log:       log,
	}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns the mutable draft. Field edits go through it directly; the
// wizard only gates step transitions, matching a form that accepts any
// input until Next is clicked.
func (w *Wizard) Draft() *Draft {
	return &w.draft
}

// Launched returns the persisted campaign after a successful finalize.
func (w *Wizard) Launched() *models.Campaign {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.launched
}

// Start moves from the welcome screen into the first step.
func (w *Wizard) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepWelcome {
		w.step = StepObjective
	}
}

// Next validates the active step and advances on success. On a validation
// failure the step is unchanged and the error describes the missing field.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step < StepObjective || w.step >= StepPreview {
		return ErrNoNextStep
	}
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back moves one step toward the start. It is a no-op on the first step
// and the welcome screen.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepObjective && w.step <= StepPreview {
		w.step--
	}
}

func (w *Wizard) validateStep(step Step) error {
	switch step {
	case StepObjective:
		if !models.IsValidObjective(w.draft.Objective) {
			return ErrObjectiveRequired
		}
	case StepBudget:
		if w.draft.Budget < MinBudget {
			return ErrBudgetTooLow
		}
	case StepCreative:
		if strings.TrimSpace(w.draft.ProductDescription) == "" {
			return ErrDescriptionRequired
		}
		if strings.TrimSpace(w.draft.AdCopy) == "" {
			return ErrAdCopyRequired
		}
	case StepAudience:
		if w.draft.TargetLocation == "" {
			return ErrLocationRequired
		}
	}
	return nil
}

// Finalize packages the draft into a creation request and hands it to the
// store. On success the wizard holds the persisted campaign and moves to
// Success; on failure it stays in Preview.
func (w *Wizard) Finalize(ctx context.Context) (*models.Campaign, error) {
	w.mu.Lock()
	if w.step != StepPreview {
		w.mu.Unlock()
		return nil, ErrNotAtPreview
	}
	if w.busy {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	// Re-run every gate so a draft mutated after passing a step can never
	// be persisted invalid.
	for s := StepObjective; s <= StepAudience; s++ {
		if err := w.validateStep(s); err != nil {
			w.mu.Unlock()
			return nil, err
		}
	}
	w.busy = true
	draft := w.draft
	w.mu.Unlock()

	in := repositories.CreateCampaignInput{
		Name:               models.CampaignName(draft.ProductDescription),
		Objective:          draft.Objective,
		Budget:             draft.Budget,
		AdCopy:             draft.AdCopy,
		ProductDescription: &draft.ProductDescription,
		TargetLocation:     draft.TargetLocation,
		AgeFrom:            draft.AgeFrom,
		AgeTo:              draft.AgeTo,
		Gender:             draft.Gender,
		Status:             models.StatusActive,
	}
	if draft.ImageAttached {
		placeholder := "uploaded-image.jpg"
		in.ImageURL = &placeholder
	}

	campaign := w.campaigns.Create(in)

	w.mu.Lock()
	w.busy = false
	w.launched = campaign
	w.step = StepSuccess
	w.mu.Unlock()

	w.log.Info("campaign launched",
		zap.String("campaign_id", campaign.ID),
		zap.Int("budget", campaign.Budget),
	)
	return campaign, nil
}

// SuggestAdCopy fetches ad-copy variants for the creative step. When the
// generator fails the deterministic templates are substituted and templated
// reports that to the caller, so the UI can say the options are suggested
// rather than AI-generated.
func (w *Wizard) SuggestAdCopy(ctx context.Context) (copies []string, templated bool, err error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, false, ErrBusy
	}
	description := strings.TrimSpace(w.draft.ProductDescription)
	objective := w.draft.Objective
	if description == "" {
		w.mu.Unlock()
		return nil, false, ErrDescriptionRequired
	}
	w.busy = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	copies, genErr := w.suggester.Suggest(ctx, description, objective)
	if genErr != nil {
		w.log.Warn("falling back to templated ad copy", zap.Error(genErr))
		return services.FallbackAdCopies(description, objective), true, nil
	}
	return copies, false, nil
}

// Reset clears the draft back to defaults and returns to the welcome
// screen ("create another").
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = NewDraft()
	w.launched = nil
	w.step = StepWelcome
}
