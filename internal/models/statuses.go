package models

type ProposalStatus string
type ContractStatus string
type Availability string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"

	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"

	AvailabilityAvailable Availability = "available"
	AvailabilityPartTime  Availability = "part_time"
	AvailabilityBusy      Availability = "busy"
)

// Valid reports whether the status is a known proposal status.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected:
		return true
	}
	return false
}

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusActive, ContractStatusCompleted:
		return true
	}
	return false
}

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityPartTime, AvailabilityBusy:
		return true
	}
	return false
}
