package models

// Contract is created only as a consequence of a proposal being accepted.
type Contract struct {
	ID             int            `json:"id"`
	Proposal       int            `json:"proposal"`
	ProjectTitle   string         `json:"project_title,omitempty"`
	FreelancerName string         `json:"freelancer_name,omitempty"`
	ClientName     string         `json:"client_name,omitempty"`
	Freelancer     int            `json:"freelancer,omitempty"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	Status         ContractStatus `json:"status"`
	Terms          string         `json:"terms"`
}

// ContractWrite is the create payload posted after a proposal accept.
type ContractWrite struct {
	Proposal       int            `json:"proposal"`
	ProjectTitle   string         `json:"project_title"`
	FreelancerName string         `json:"freelancer_name"`
	ClientName     string         `json:"client_name"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	Status         ContractStatus `json:"status"`
	Terms          string         `json:"terms"`
}
