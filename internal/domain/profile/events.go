package profile

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the profile domain

// ProfileCreatedEvent is raised when a profile is lazily created
type ProfileCreatedEvent struct {
	ProfileID uuid.UUID
	UserID    string
	CreatedAt time.Time
}

func (e ProfileCreatedEvent) EventName() string {
	return "profile.created"
}

func (e ProfileCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// ReferralRedeemedEvent is raised when a user consumes a referral code
type ReferralRedeemedEvent struct {
	ProfileID  uuid.UUID
	UserID     string
	Code       string
	RedeemedAt time.Time
}

func (e ReferralRedeemedEvent) EventName() string {
	return "profile.referral.redeemed"
}

func (e ReferralRedeemedEvent) OccurredAt() time.Time {
	return e.RedeemedAt
}
