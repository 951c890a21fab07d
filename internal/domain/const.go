package domain

import "time"

const (
	// Portal token constants
	DEFAULT_TOKEN_EXPIRY_DAYS = 90
	TOKEN_BYTE_LENGTH         = 32

	// Deliverable constants
	DEFAULT_DUE_SOON_DAYS = 7

	// Wire format for record store timestamps
	TIME_WIRE_FORMAT = time.RFC3339
)
