package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactPreference is how the customer wants to be reached.
type ContactPreference string

const (
	PreferPhone    ContactPreference = "Phone"
	PreferEmail    ContactPreference = "Email"
	PreferWhatsApp ContactPreference = "WhatsApp"
)

func (p ContactPreference) Valid() bool {
	switch p {
	case PreferPhone, PreferEmail, PreferWhatsApp:
		return true
	}
	return false
}

// BestTime is the customer's preferred time of day.
type BestTime string

const (
	TimeMorning   BestTime = "Morning"
	TimeAfternoon BestTime = "Afternoon"
	TimeEvening   BestTime = "Evening"
	TimeAny       BestTime = "Any"
)

func (b BestTime) Valid() bool {
	switch b {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeAny:
		return true
	}
	return false
}

// Subject is the inquiry topic.
type Subject string

const (
	SubjectGeneral     Subject = "General information"
	SubjectTestDrive   Subject = "Test drive"
	SubjectNegotiation Subject = "Price negotiation"
	SubjectFinancing   Subject = "Financing"
	SubjectOther       Subject = "Other"
)

func (s Subject) Valid() bool {
	switch s {
	case SubjectGeneral, SubjectTestDrive, SubjectNegotiation, SubjectFinancing, SubjectOther:
		return true
	}
	return false
}

// Status tracks an inquiry through the sales team.
type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "In progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// ResponseDeadline is promised on every receipt.
const ResponseDeadline = "24 business hours"

// InquiryParams is a contact form submission.
type InquiryParams struct {
	FullName          string            `json:"fullName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	ContactPreference ContactPreference `json:"contactPreference"`
	BestTime          BestTime          `json:"bestTime,omitempty"`
	VehicleKey        string            `json:"vehicleKey"`
	VehicleModel      string            `json:"vehicleModel"`
	Subject           Subject           `json:"subject"`
	Message           string            `json:"message"`
	Financing         bool              `json:"financing"`
	PrivacyAccepted   bool              `json:"privacyAccepted"`
	Newsletter        bool              `json:"newsletter"`
	ClientIP          string            `json:"-"`
}

// Inquiry is a stored submission.
type Inquiry struct {
	ID                string
	Protocol          string
	FullName          string
	Email             string
	Phone             string
	ContactPreference ContactPreference
	BestTime          BestTime
	VehicleKey        string
	VehicleModel      string
	Subject           Subject
	Message           string
	Financing         bool
	Newsletter        bool
	SubmittedAt       time.Time
	ClientIP          string
	Status            Status
	UpdatedAt         time.Time
}

// NewInquiry builds a New inquiry from validated params. A Financing subject
// always marks the customer as interested in financing.
func NewInquiry(id, protocol string, p InquiryParams, now time.Time) Inquiry {
	bestTime := p.BestTime
	if bestTime == "" {
		bestTime = TimeAny
	}
	return Inquiry{
		ID:                id,
		Protocol:          protocol,
		FullName:          strings.TrimSpace(p.FullName),
		Email:             p.Email,
		Phone:             p.Phone,
		ContactPreference: p.ContactPreference,
		BestTime:          bestTime,
		VehicleKey:        p.VehicleKey,
		VehicleModel:      p.VehicleModel,
		Subject:           p.Subject,
		Message:           p.Message,
		Financing:         p.Financing || p.Subject == SubjectFinancing,
		Newsletter:        p.Newsletter,
		SubmittedAt:       now,
		ClientIP:          p.ClientIP,
		Status:            StatusNew,
		UpdatedAt:         now,
	}
}

// Protocol formats the tracking number: submission date plus a
// five-digit sequence.
func Protocol(now time.Time, seq int) string {
	return fmt.Sprintf("%s%05d", now.Format("20060102"), seq)
}

// Receipt is returned to the customer after a successful submission.
type Receipt struct {
	Protocol              string `json:"protocol"`
	ConfirmationMessage   string `json:"confirmationMessage"`
	ResponseDeadline      string `json:"responseDeadline"`
	ConfirmationEmailSent bool   `json:"confirmationEmailSent"`
}

// NewReceipt builds the receipt for a stored inquiry.
func NewReceipt(in Inquiry) Receipt {
	return Receipt{
		Protocol: in.Protocol,
		ConfirmationMessage: fmt.Sprintf(
			"Thank you for contacting us! We received your message about the %s. "+
				"Your protocol number is %s. Our team will get back to you within %s by %s.",
			in.VehicleModel, in.Protocol, ResponseDeadline, strings.ToLower(string(in.ContactPreference)),
		),
		ResponseDeadline:      ResponseDeadline,
		ConfirmationEmailSent: true,
	}
}
