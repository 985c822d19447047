package dto

import "talentlink/internal/models"

// ClientDashboard is the client workspace snapshot: the profile plus the
// owned projects, received proposals and matching contracts.
type ClientDashboard struct {
	Profile    *models.Profile    `json:"profile,omitempty"`
	Projects   []models.Project   `json:"projects"`
	Proposals  []models.Proposal  `json:"proposals"`
	Contracts  []models.Contract  `json:"contracts"`
	ActiveView string             `json:"active_view"`
	// Failed lists collections whose fetch failed; the rest of the snapshot
	// is still usable.
	Failed []string `json:"failed,omitempty"`
}

// FreelancerDashboard adds browsable projects (with the in-memory filter
// applied) and the reviews written about this freelancer.
type FreelancerDashboard struct {
	Profile   *models.Profile   `json:"profile,omitempty"`
	Projects  []models.Project  `json:"projects"`
	Proposals []models.Proposal `json:"proposals"`
	Contracts []models.Contract `json:"contracts"`
	Reviews   []models.Review   `json:"reviews"`
	Failed    []string          `json:"failed,omitempty"`
}

// ProjectDraft is the post-project form. Title and description are the
// required fields; everything else is free text.
type ProjectDraft struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Budget      string   `json:"budget"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
}

// ProposalDecision accepts or rejects a pending proposal.
type ProposalDecision struct {
	Status models.ProposalStatus `json:"status" validate:"required,proposal-status"`
}

// ProposalDraft is the freelancer's bid form; description and price are
// both required before a submit is allowed.
type ProposalDraft struct {
	Project     int    `json:"project" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
}

// ReviewDraft reviews the freelancer of a completed contract. The reviewee
// id is resolved by name from the profile list, not taken from the caller.
type ReviewDraft struct {
	ContractID int    `json:"contract_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// ProfileDraft carries edited profile fields; nil means "keep current".
// The merged result goes upstream as a full-resource PUT.
type ProfileDraft struct {
	UserName     *string  `json:"user_name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Portfolio    *string  `json:"portfolio,omitempty"`
	HourlyRate   *string  `json:"hourly_rate,omitempty"`
	Availability *string  `json:"availability,omitempty" validate:"omitempty,availability"`
	SkillNames   []string `json:"skill_names,omitempty"`
}

// ProjectFilter narrows the already-fetched project list in memory.
type ProjectFilter struct {
	Skill     string `json:"skill"`
	MaxBudget string `json:"max_budget"`
	Duration  string `json:"duration"`
}
