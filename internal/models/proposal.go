package models

// Proposal is a freelancer's bid on a project. project_title and
// freelancer_name are read-only joins filled in by the marketplace.
type Proposal struct {
	ID             int            `json:"id"`
	Project        int            `json:"project"`
	Freelancer     int            `json:"freelancer"`
	Description    string         `json:"description"`
	Price          string         `json:"price"`
	Status         ProposalStatus `json:"status"`
	ProjectTitle   string         `json:"project_title,omitempty"`
	FreelancerName string         `json:"freelancer_name,omitempty"`
}

// ProposalWrite is the create payload.
type ProposalWrite struct {
	Project     int    `json:"project"`
	Freelancer  int    `json:"freelancer"`
	Description string `json:"description"`
	Price       string `json:"price"`
}
