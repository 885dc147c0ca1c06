package profile

import "errors"

// Domain errors for profile operations

var (
	ErrEmptyUserID       = errors.New("user id must not be empty")
	ErrImplausibleAge    = errors.New("age must be between 0 and 130")
	ErrImplausibleWeight = errors.New("weight must be between 0 and 500 kg")
	ErrImplausibleHeight = errors.New("height must be between 0 and 280 cm")
	ErrInvalidHealthGoal = errors.New("unknown health goal")
	ErrUnknownCondition  = errors.New("unknown chronic condition tag")
	ErrAlreadyRedeemed   = errors.New("referral code already redeemed by this user")
	ErrProfileNotFound   = errors.New("profile not found")
)
