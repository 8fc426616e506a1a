package exception

import (
	"fmt"

	"dispatch/internal/core/domain/model/appointment"
)

// Type classifies an exception. Values outside the known set are valid and
// handled by DefaultRemedy.
type Type string

const (
	TypeDeliveryDelay       Type = "delivery_delay"
	TypePackageDamaged      Type = "package_damaged"
	TypeAddressNotFound     Type = "address_not_found"
	TypeCustomerUnavailable Type = "customer_unavailable"
	TypeVehicleBreakdown    Type = "vehicle_breakdown"
)

// Remedy is the scripted response to one exception type.
// MessageTemplate has a single %s verb that receives the exception description.
// An empty AppointmentStatus leaves the appointment untouched.
type Remedy struct {
	Title               string
	MessageTemplate     string
	AppointmentStatus   appointment.Status
	ScheduleReplacement bool
	Resolution          string
}

// Message renders the customer message for description.
func (r Remedy) Message(description string) string {
	return fmt.Sprintf(r.MessageTemplate, description)
}

// DefaultRemedy handles exception types missing from the playbook.
var DefaultRemedy = Remedy{
	Title:           "Delivery Exception",
	MessageTemplate: "There is an issue with your delivery: %s. Our team is working to resolve it.",
	Resolution:      "Generic exception handling applied",
}

// Playbook maps exception types to remedies.
type Playbook map[Type]Remedy

// DefaultPlaybook returns the standard remedies.
func DefaultPlaybook() Playbook {
	return Playbook{
		TypeDeliveryDelay: {
			Title:             "Delivery Delay",
			MessageTemplate:   "Your delivery is delayed: %s. We apologize for the inconvenience.",
			AppointmentStatus: appointment.StatusDelayed,
			Resolution:        "Customer notified of delay",
		},
		TypePackageDamaged: {
			Title:               "Package Damaged",
			MessageTemplate:     "We regret to inform you that your package was damaged: %s. We are arranging a replacement.",
			AppointmentStatus:   appointment.StatusDamaged,
			ScheduleReplacement: true,
			Resolution:          "Replacement scheduled",
		},
		TypeAddressNotFound: {
			Title:             "Address Not Found",
			MessageTemplate:   "We couldn't locate your address: %s. Please contact our support team to verify your address.",
			AppointmentStatus: appointment.StatusAddressIssue,
			Resolution:        "Customer contacted for address verification",
		},
		TypeCustomerUnavailable: {
			Title:             "Delivery Attempted",
			MessageTemplate:   "We attempted to deliver your package but you were unavailable: %s. We will reschedule your delivery.",
			AppointmentStatus: appointment.StatusDeliveryAttempted,
			Resolution:        "Delivery rescheduled",
		},
		TypeVehicleBreakdown: {
			Title:             "Delivery Delay",
			MessageTemplate:   "Your delivery is delayed due to a vehicle issue: %s. We are assigning an alternate vehicle.",
			AppointmentStatus: appointment.StatusDelayed,
			Resolution:        "Alternate vehicle assigned",
		},
	}
}

// RemedyFor returns the remedy for t, or DefaultRemedy when t has none.
func (p Playbook) RemedyFor(t Type) Remedy {
	if r, ok := p[t]; ok {
		return r
	}
	return DefaultRemedy
}
