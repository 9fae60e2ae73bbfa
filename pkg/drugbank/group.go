package drugbank

import "strings"

//go:generate go run github.com/dmarkham/enumer -type Group -trimprefix Group -transform snake -json -output group.gen.go

// Group is a DrugBank approval group.
type Group int

const (
	GroupApproved Group = iota
	GroupExperimental
	GroupIllicit
	GroupInvestigational
	GroupNutraceutical
	GroupVetApproved
	GroupWithdrawn
)

// ParseGroup maps a <group> value to a Group. "veterinary" is accepted for
// vet_approved.
func ParseGroup(s string) (Group, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "veterinary") {
		return GroupVetApproved, nil
	}
	return GroupString(s)
}
