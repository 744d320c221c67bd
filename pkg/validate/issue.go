package validate

import "fmt"

// ErrorCode identifies a business-rule violation that prevents the
// server from starting correctly. The set is closed; downstream
// tooling switches on these values.
type ErrorCode string

const (
	ErrPasswordTooShort              ErrorCode = "PASSWORD_TOO_SHORT"
	ErrPasswordContainsSpaces        ErrorCode = "PASSWORD_CONTAINS_SPACES"
	ErrInvalidPermission             ErrorCode = "INVALID_PERMISSION"
	ErrMaxClientsOutOfRange          ErrorCode = "MAX_CLIENTS_OUT_OF_RANGE"
	ErrNameTooLong                   ErrorCode = "NAME_TOO_LONG"
	ErrAdminPasswordContainsSpaces   ErrorCode = "ADMIN_PASSWORD_CONTAINS_SPACES"
	ErrAdminsListTooLong             ErrorCode = "ADMINS_LIST_TOO_LONG"
	ErrInvalidSupportedPlatform      ErrorCode = "INVALID_SUPPORTED_PLATFORM"
	ErrServerViewDistanceOutOfRange  ErrorCode = "SERVER_VIEW_DISTANCE_OUT_OF_RANGE"
	ErrNetworkViewDistanceOutOfRange ErrorCode = "NETWORK_VIEW_DISTANCE_OUT_OF_RANGE"
	ErrGrassDistanceInvalid          ErrorCode = "GRASS_DISTANCE_INVALID"
	ErrSlotReservationTimeoutRange   ErrorCode = "SLOT_RESERVATION_TIMEOUT_OUT_OF_RANGE"
	ErrJoinQueueMaxSizeOutOfRange    ErrorCode = "JOIN_QUEUE_MAX_SIZE_OUT_OF_RANGE"
)

// WarningCode identifies an advisory finding. Warnings never block a
// deployment on their own. The set is closed; downstream tooling
// switches on these values.
type WarningCode string

const (
	WarnViewDistanceExceedsRecommended WarningCode = "VIEW_DISTANCE_EXCEEDS_RECOMMENDED"
	WarnViewDistanceExceedsMaximum     WarningCode = "VIEW_DISTANCE_EXCEEDS_MAXIMUM"
	WarnViewDistanceBelowMinimum       WarningCode = "VIEW_DISTANCE_BELOW_MINIMUM"
	WarnNetworkViewDistanceMismatch    WarningCode = "NETWORK_VIEW_DISTANCE_MISMATCH"
	WarnPlayerCountExceedsRecommended  WarningCode = "PLAYER_COUNT_EXCEEDS_RECOMMENDED"
	WarnGrassDistancePerformance       WarningCode = "GRASS_DISTANCE_PERFORMANCE_IMPACT"
	WarnAILimitPerformance             WarningCode = "AI_LIMIT_PERFORMANCE_IMPACT"
	WarnEmptyAdminPassword             WarningCode = "EMPTY_ADMIN_PASSWORD"
	WarnWeakRCONPassword               WarningCode = "WEAK_RCON_PASSWORD"
	WarnInvalidModIDFormat             WarningCode = "INVALID_MOD_ID_FORMAT"
	WarnDuplicateModID                 WarningCode = "DUPLICATE_MOD_ID"
	WarnUnrecognizedAdminID            WarningCode = "UNRECOGNIZED_ADMIN_ID"
	WarnAddressMismatch                WarningCode = "ADDRESS_MISMATCH"
	WarnPortConflict                   WarningCode = "PORT_CONFLICT"
)

// Error is a business-rule violation tied to a configuration field.
type Error struct {
	// Code categorizes the violation.
	Code ErrorCode `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Field is the dotted path to the offending field
	// (e.g. "rcon.password", "game.mods[2].modId"). Empty when the
	// violation spans several fields.
	Field string `json:"field,omitempty"`

	// Value is the observed value. For length rules it carries the
	// observed length, not the content.
	Value any `json:"value,omitempty"`

	// Range describes the accepted values in prose.
	Range string `json:"range,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Warning is an advisory finding tied to a configuration field.
type Warning struct {
	// Code categorizes the finding.
	Code WarningCode `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Field is the dotted path to the field concerned. Empty when the
	// finding spans several fields.
	Field string `json:"field,omitempty"`

	// Value is the observed value.
	Value any `json:"value,omitempty"`

	// Recommended is the value the finding suggests instead, when one
	// exists.
	Recommended any `json:"recommended,omitempty"`
}

// String returns the warning in the same shape Error.Error uses.
func (w Warning) String() string {
	if w.Field != "" {
		return fmt.Sprintf("%s: %s: %s", w.Code, w.Field, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Result collects the findings of a business-rule validation pass.
// Errors and Warnings keep the order the rules produced them in and
// are never deduplicated.
type Result struct {
	Errors   []Error   `json:"errors"`
	Warnings []Warning `json:"warnings"`
}

// HasErrors reports whether any rule violation was found.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any advisory finding was found.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *Result) addError(e Error) {
	r.Errors = append(r.Errors, e)
}

func (r *Result) addWarning(w Warning) {
	r.Warnings = append(r.Warnings, w)
}
