// Package profile contains the personal-health profile aggregate: body
// measurements with a derived BMI, chronic condition tags, a health goal
// and the referral points program.
package profile

import (
	"strings"
	"time"

	"github.com/dishcovery/v1/internal/domain/shared"
	"github.com/google/uuid"
)

// HealthGoal enumerates the supported weight goals
type HealthGoal string

const (
	GoalNone       HealthGoal = ""
	GoalLoseWeight HealthGoal = "lose_weight"
	GoalGainWeight HealthGoal = "gain_weight"
	GoalMaintain   HealthGoal = "maintain"
)

// Chronic condition tags
const (
	ConditionDiabetes     = "dm"
	ConditionHypertension = "htn"
	ConditionDyslipidemia = "hld"
)

// ReferralCodeLength is the length of generated referral codes
const ReferralCodeLength = 8

// Profile represents a user's health profile and referral account.
type Profile struct {
	id                uuid.UUID
	userID            string
	name              string
	age               int
	weightKg          float64
	heightCm          float64
	bmi               float64
	chronicConditions []string
	healthGoal        HealthGoal
	targetWeightKg    float64
	points            int
	referralCode      string
	redeemed          bool
	createdAt         time.Time
	updatedAt         time.Time

	events []shared.DomainEvent
}

// NewProfile creates an empty profile for a user. The referral code is
// generated exactly once here and never reassigned afterwards.
func NewProfile(userID string) (*Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	now := time.Now()
	p := &Profile{
		id:           uuid.New(),
		userID:       userID,
		referralCode: generateReferralCode(),
		createdAt:    now,
		updatedAt:    now,
		events:       []shared.DomainEvent{},
	}

	p.addEvent(ProfileCreatedEvent{
		ProfileID: p.id,
		UserID:    userID,
		CreatedAt: now,
	})

	return p, nil
}

// Reconstruct rebuilds a profile from persistence without raising events.
func Reconstruct(
	id uuid.UUID,
	userID, name string,
	age int,
	weightKg, heightCm, bmi float64,
	chronicConditions []string,
	healthGoal HealthGoal,
	targetWeightKg float64,
	points int,
	referralCode string,
	redeemed bool,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:                id,
		userID:            userID,
		name:              name,
		age:               age,
		weightKg:          weightKg,
		heightCm:          heightCm,
		bmi:               bmi,
		chronicConditions: chronicConditions,
		healthGoal:        healthGoal,
		targetWeightKg:    targetWeightKg,
		points:            points,
		referralCode:      referralCode,
		redeemed:          redeemed,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		events:            []shared.DomainEvent{},
	}
}

// generateReferralCode produces an 8-char uppercase alphanumeric code
// seeded from a fresh UUID.
func generateReferralCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:ReferralCodeLength]
}

// ID returns the profile identifier
func (p *Profile) ID() uuid.UUID { return p.id }

// UserID returns the owning user identifier
func (p *Profile) UserID() string { return p.userID }

// Name returns the display name
func (p *Profile) Name() string { return p.name }

// Age returns the age in years
func (p *Profile) Age() int { return p.age }

// WeightKg returns the body weight in kilograms
func (p *Profile) WeightKg() float64 { return p.weightKg }

// HeightCm returns the body height in centimeters
func (p *Profile) HeightCm() float64 { return p.heightCm }

// BMI returns the derived body mass index
func (p *Profile) BMI() float64 { return p.bmi }

// ChronicConditions returns the chronic condition tags
func (p *Profile) ChronicConditions() []string { return p.chronicConditions }

// HealthGoal returns the configured health goal
func (p *Profile) HealthGoal() HealthGoal { return p.healthGoal }

// TargetWeightKg returns the target weight in kilograms
func (p *Profile) TargetWeightKg() float64 { return p.targetWeightKg }

// Points returns the referral points balance
func (p *Profile) Points() int { return p.points }

// ReferralCode returns the stable referral code
func (p *Profile) ReferralCode() string { return p.referralCode }

// Redeemed reports whether this user has already redeemed a referral code
func (p *Profile) Redeemed() bool { return p.redeemed }

// CreatedAt returns the creation timestamp
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// SetName updates the display name
func (p *Profile) SetName(name string) {
	p.name = strings.TrimSpace(name)
	p.touch()
}

// SetAge updates the age with a plausibility check
func (p *Profile) SetAge(age int) error {
	if age < 0 || age > 130 {
		return ErrImplausibleAge
	}
	p.age = age
	p.touch()
	return nil
}

// SetWeight updates the weight in kilograms and recomputes BMI
func (p *Profile) SetWeight(kg float64) error {
	if kg <= 0 || kg > 500 {
		return ErrImplausibleWeight
	}
	p.weightKg = kg
	p.recomputeBMI()
	p.touch()
	return nil
}

// SetHeight updates the height in centimeters and recomputes BMI
func (p *Profile) SetHeight(cm float64) error {
	if cm <= 0 || cm > 280 {
		return ErrImplausibleHeight
	}
	p.heightCm = cm
	p.recomputeBMI()
	p.touch()
	return nil
}

// SetTargetWeight updates the target weight in kilograms
func (p *Profile) SetTargetWeight(kg float64) error {
	if kg < 0 || kg > 500 {
		return ErrImplausibleWeight
	}
	p.targetWeightKg = kg
	p.touch()
	return nil
}

// SetHealthGoal updates the health goal
func (p *Profile) SetHealthGoal(goal HealthGoal) error {
	switch goal {
	case GoalNone, GoalLoseWeight, GoalGainWeight, GoalMaintain:
		p.healthGoal = goal
		p.touch()
		return nil
	default:
		return ErrInvalidHealthGoal
	}
}

// SetChronicConditions replaces the condition tag set. Unknown tags are
// rejected so downstream scoring never sees a tag it cannot interpret.
func (p *Profile) SetChronicConditions(tags []string) error {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		switch tag {
		case ConditionDiabetes, ConditionHypertension, ConditionDyslipidemia:
			cleaned = append(cleaned, tag)
		default:
			return ErrUnknownCondition
		}
	}
	p.chronicConditions = cleaned
	p.touch()
	return nil
}

// HasCondition reports whether the profile carries the given condition tag
func (p *Profile) HasCondition(tag string) bool {
	for _, c := range p.chronicConditions {
		if c == tag {
			return true
		}
	}
	return false
}

// AwardPoints credits referral points
func (p *Profile) AwardPoints(n int) {
	p.points += n
	p.touch()
}

// MarkRedeemed records that this user has consumed a referral code.
// A user can redeem only once.
func (p *Profile) MarkRedeemed(code string) error {
	if p.redeemed {
		return ErrAlreadyRedeemed
	}
	p.redeemed = true
	p.touch()

	p.addEvent(ReferralRedeemedEvent{
		ProfileID:  p.id,
		UserID:     p.userID,
		Code:       code,
		RedeemedAt: p.updatedAt,
	})
	return nil
}

// recomputeBMI derives BMI from the current measurements. BMI stays zero
// until both weight and height are known.
func (p *Profile) recomputeBMI() {
	if p.weightKg <= 0 || p.heightCm <= 0 {
		p.bmi = 0
		return
	}
	heightM := p.heightCm / 100
	p.bmi = p.weightKg / (heightM * heightM)
}

func (p *Profile) touch() {
	p.updatedAt = time.Now()
}

// Events returns and clears pending domain events
func (p *Profile) Events() []shared.DomainEvent {
	events := p.events
	p.events = []shared.DomainEvent{}
	return events
}

func (p *Profile) addEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}
