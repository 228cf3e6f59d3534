package avail

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable wraps transport failures against the backing store.
// Loads degrade to an empty week on this error; saves surface it so the
// caller can retry without losing in-memory edits.
var ErrStoreUnavailable = errors.New("availability store unavailable")

// Repository defines the storage interface for availability and parties.
type Repository interface {
	// LoadWeek retrieves one user's availability for the week starting at
	// weekStart. A week with no stored data is an empty Week, not an error.
	LoadWeek(ctx context.Context, userID string, weekStart time.Time) (Week, error)

	// SaveWeek overwrites the stored snapshot for (userID, weekStart) with
	// the full contents of w.
	SaveWeek(ctx context.Context, userID string, weekStart time.Time, w Week) error

	// CreateUser registers a user, generating an ID when id is empty,
	// and returns the user's ID. Existing users get their name updated.
	CreateUser(ctx context.Context, id, name string) (string, error)

	// CreateParty persists a new party and assigns its ID.
	CreateParty(ctx context.Context, p *Party) error

	// GetParty retrieves a party by ID. Returns ErrPartyNotFound if absent.
	GetParty(ctx context.Context, partyID string) (*Party, error)

	// PartyMembers returns the member user IDs of a party.
	PartyMembers(ctx context.Context, partyID string) ([]string, error)

	// AddMember adds a user to a party. Returns ErrPartyFull or
	// ErrAlreadyMember when the join is not possible.
	AddMember(ctx context.Context, partyID, userID string) error

	// ListParties returns every party the user belongs to.
	ListParties(ctx context.Context, userID string) ([]*Party, error)

	// Close releases any resources held by the repository.
	Close() error
}
