package models

// Project is a work item posted by a client. Budget travels as a string on
// the wire; unparsable budgets are treated as 0 when filtering.
type Project struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Budget         string  `json:"budget"`
	Duration       string  `json:"duration"`
	Owner          int     `json:"owner"`
	SkillsRequired []Skill `json:"skills_required,omitempty"`
}

// ProjectWrite is the create/update payload. Skills are plain names.
type ProjectWrite struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      string   `json:"budget"`
	Duration    string   `json:"duration"`
	Owner       int      `json:"owner"`
	Skills      []string `json:"skills"`
}
