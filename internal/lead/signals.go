package lead

import "github.com/zoobzio/capitan"

// Submission signals.
var (
	// Submitted is emitted when a valid lead starts submitting.
	Submitted = capitan.NewSignal(
		"lead.submitted",
		"Lead submission started",
	)

	// Rejected is emitted when a lead fails validation.
	Rejected = capitan.NewSignal(
		"lead.rejected",
		"Lead rejected before submission",
	)

	// Delivered is emitted when a lead submission completes.
	Delivered = capitan.NewSignal(
		"lead.delivered",
		"Lead delivered",
	)
)

// Field keys for lead events.
var (
	// KeyName is the contact name on the lead.
	KeyName = capitan.NewStringKey("name")

	// KeyError is the validation error message.
	KeyError = capitan.NewStringKey("error")

	// KeyDelay is the simulated submission latency.
	KeyDelay = capitan.NewDurationKey("delay")
)
