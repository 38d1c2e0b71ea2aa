package models

// Wizard steps, in order. The commit happens on the transition out of
// StepLocation: a shop record exists before StepComplete is reachable.
type WizardStep int

const (
	StepWelcome WizardStep = iota
	StepShopDetails
	StepLocation
	StepComplete
)

func (s WizardStep) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepShopDetails:
		return "shop-details"
	case StepLocation:
		return "location"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

func (s WizardStep) Valid() bool {
	return s >= StepWelcome && s <= StepComplete
}

type WizardStateResponse struct {
	Step   WizardStep       `json:"step"`
	Status OnboardingStatus `json:"status"`
}

type WizardAdvanceRequest struct {
	Step WizardStep   `json:"step"`
	Shop ShopFormData `json:"shop"`
}

type WizardBackRequest struct {
	Step WizardStep `json:"step"`
}

type WizardAdvanceResponse struct {
	Step WizardStep `json:"step"`
	Shop *Shop      `json:"shop,omitempty"`
}

type CompleteOnboardingResponse struct {
	Success    bool   `json:"success"`
	RedirectTo string `json:"redirect_to,omitempty"`
}
