package models

// Skill is a named skill attached to a profile or a project.
type Skill struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Profile mirrors the marketplace profile record. The marketplace owns it;
// this service never writes it except through a full-resource PUT.
type Profile struct {
	ID           int          `json:"id"`
	UserName     string       `json:"user_name"`
	Email        string       `json:"email"`
	Bio          string       `json:"bio"`
	Portfolio    string       `json:"portfolio"`
	HourlyRate   string       `json:"hourly_rate"`
	Availability Availability `json:"availability"`
	IsClient     bool         `json:"is_client"`
	IsFreelancer bool         `json:"is_freelancer"`
	Skills       []Skill      `json:"skills,omitempty"`
}

// ProfileUpdate is the write shape for PUT /api/profiles/{id}/.
// skill_names is write-only upstream; the server rebuilds the skill rows.
type ProfileUpdate struct {
	UserName     string       `json:"user_name"`
	Email        string       `json:"email"`
	Bio          string       `json:"bio"`
	Portfolio    string       `json:"portfolio"`
	HourlyRate   string       `json:"hourly_rate"`
	Availability Availability `json:"availability"`
	IsClient     bool         `json:"is_client"`
	IsFreelancer bool         `json:"is_freelancer"`
	SkillNames   []string     `json:"skill_names,omitempty"`
}
