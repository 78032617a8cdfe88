package createcall

import (
	"errors"

	"bitbucket.org/yellowmessenger/twilio-voice/phonenumber"
)

// ValidateNumbers checks the dialing pair before the call is placed
func ValidateNumbers(to phonenumber.PhoneNumber, from phonenumber.PhoneNumber) error {
	if len(to.E164Format) <= 0 {
		return errors.New("Destination number could not be resolved")
	}
	if len(from.E164Format) <= 0 {
		return errors.New("Caller ID could not be resolved")
	}
	if !to.IsSipUser && to.E164Format == from.E164Format {
		return errors.New("Destination number and caller ID cannot be the same")
	}
	return nil
}
