package domain

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	nameMin    = 3
	nameMax    = 100
	emailMax   = 100
	phoneMin   = 10
	messageMin = 10
	messageMax = 1000
)

// Area code plus an 8 or 9 digit number, e.g. "(11) 98765-4321".
var phonePattern = regexp.MustCompile(`^\(?\d{2}\)?\s?\d{4,5}-?\d{4}$`)

// Validate checks every field and reports all failures at once.
func (p *InquiryParams) Validate() error {
	v := &ValidationError{}

	name := strings.TrimSpace(p.FullName)
	switch n := utf8.RuneCountInString(p.FullName); {
	case n < nameMin:
		v.add("fullName", "name must be at least 3 characters")
	case n > nameMax:
		v.add("fullName", "name must be at most 100 characters")
	case len(strings.Fields(name)) < 2:
		v.add("fullName", "please enter your first and last name")
	}

	if !validEmail(p.Email) {
		v.add("email", "please enter a valid email address like user@domain.com")
	} else if len(p.Email) > emailMax {
		v.add("email", "email must be at most 100 characters")
	}

	if len(p.Phone) < phoneMin || !phonePattern.MatchString(p.Phone) {
		v.add("phone", "please enter a valid phone number with area code")
	}

	if !p.ContactPreference.Valid() {
		v.add("contactPreference", "please select a contact preference")
	}
	if p.BestTime != "" && !p.BestTime.Valid() {
		v.add("bestTime", "unknown time of day")
	}
	if p.VehicleKey == "" {
		v.add("vehicleKey", "vehicle is required")
	}
	if p.VehicleModel == "" {
		v.add("vehicleModel", "vehicle model is required")
	}
	if !p.Subject.Valid() {
		v.add("subject", "please select a subject")
	}

	switch n := utf8.RuneCountInString(p.Message); {
	case n < messageMin:
		v.add("message", "please give more detail (at least 10 characters)")
	case n > messageMax:
		v.add("message", "message exceeds 1000 characters")
	}

	if !p.PrivacyAccepted {
		v.add("privacyAccepted", "the privacy terms must be accepted")
	}

	if len(v.Fields) > 0 {
		return v
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
