package models

// Review is post-contract feedback. There is no update or delete path.
type Review struct {
	ID           int    `json:"id"`
	Reviewer     int    `json:"reviewer"`
	Reviewee     int    `json:"reviewee"`
	Project      int    `json:"project"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewer_name,omitempty"`
	RevieweeName string `json:"reviewee_name,omitempty"`
	ProjectTitle string `json:"project_title,omitempty"`
}

// ReviewWrite is the create payload.
type ReviewWrite struct {
	Reviewer int    `json:"reviewer"`
	Reviewee int    `json:"reviewee"`
	Project  int    `json:"project"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}
