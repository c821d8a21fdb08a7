package models

// Wire-protocol size ceilings shared by every field-constraint declaration
// in this package. Changing any of these is a breaking protocol change and
// must be accompanied by a new format version.
const (
	// MaxAlertMessageLength is the ceiling for alert message payloads.
	MaxAlertMessageLength = 32 * 1024

	// MaxComponentIDLength is the ceiling for component identifiers.
	MaxComponentIDLength = 100

	// Field-specific string ceilings.
	PhoneLength           = 15
	CRC32Length           = 15
	FirstNameLength       = 30
	LastNameLength        = 150
	StatusLength          = 30
	TypesLength           = 30
	MiddleCharFieldLength = 100
	LongCharFieldLength   = 200
	DescriptionLength     = 300
	LongDescriptionLength = 1000

	// Generic length buckets for identifiers and free-form string fields.
	DataLength32    = 32
	DataLength64    = 64
	DataLength128   = 128
	DataLength256   = 256
	DataLength512   = 512
	DataLength1000  = 1000
	DataLength10240 = 10240
)
