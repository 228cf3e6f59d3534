package avail

import (
	"errors"
	"time"
)

// Party errors.
var (
	ErrPartyNotFound  = errors.New("party not found")
	ErrPartyFull      = errors.New("party is at capacity")
	ErrAlreadyMember  = errors.New("user is already a member")
	ErrEmptyPartyName = errors.New("party name cannot be empty")
)

// DefaultPartyCapacity matches the largest table most groups run with.
const DefaultPartyCapacity = 6

// Party is a group of users coordinating a shared schedule. Membership is
// read-only input to the overlap search; the search never edits a party.
type Party struct {
	ID        string
	Name      string
	HostID    string
	Members   []string // user IDs, host included
	Capacity  int
	CreatedAt time.Time
}

// NewParty creates a party hosted by hostID, with the host as first member.
func NewParty(name, hostID string) (*Party, error) {
	if name == "" {
		return nil, ErrEmptyPartyName
	}
	return &Party{
		Name:      name,
		HostID:    hostID,
		Members:   []string{hostID},
		Capacity:  DefaultPartyCapacity,
		CreatedAt: time.Now(),
	}, nil
}

// HasMember reports whether userID belongs to the party.
func (p *Party) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m == userID {
			return true
		}
	}
	return false
}
