package booking

import "coworking/utils"

// Admission rejections, in the order the gate checks them.
var (
	ErrInvalidPrice         = utils.NewAppError(utils.ErrValidation, "invalid_price", "invalid booking price")
	ErrWorkspaceUnavailable = utils.NewAppError(utils.ErrNotFound, "workspace_unavailable", "workspace not found or inactive")
	ErrInvalidDate          = utils.NewAppError(utils.ErrValidation, "invalid_date", "date must be in YYYY-MM-DD format")
	ErrInvalidTime          = utils.NewAppError(utils.ErrValidation, "invalid_time", "time must be in HH:MM format")
	ErrPastBooking          = utils.NewAppError(utils.ErrValidation, "booking_in_past", "cannot book in the past")
	ErrOutsideBusinessHours = utils.NewAppError(utils.ErrValidation, "outside_business_hours", "bookings are only possible between 08:00 and 22:00")
	ErrInvalidInterval      = utils.NewAppError(utils.ErrValidation, "invalid_interval", "end time must be after start time")
	ErrTooShort             = utils.NewAppError(utils.ErrValidation, "duration_too_short", "minimum booking duration is 1 hour")
	ErrFlexibleTooShort     = utils.NewAppError(utils.ErrValidation, "flexible_too_short", "flexible booking is only available for bookings of 3 hours or more")
	ErrInvalidFlexibility   = utils.NewAppError(utils.ErrValidation, "invalid_flexibility", "flexibility range must not be negative")
	ErrAlreadyBookedToday   = utils.NewAppError(utils.ErrConflict, "already_booked_today", "you already have an active booking for this day")
	ErrSlotTaken            = utils.NewAppError(utils.ErrConflict, "slot_taken", "time slot is taken and the booking cannot be placed")
	ErrNoFlexibleSolution   = utils.NewAppError(utils.ErrConflict, "no_flexible_solution", "cannot place the new booking even with flexible adjustments")
)

// Lifecycle rejections.
var (
	ErrBookingNotFound  = utils.NewAppError(utils.ErrNotFound, "booking_not_found", "booking not found")
	ErrNotAllowed       = utils.NewAppError(utils.ErrPermission, "not_allowed", "you are not allowed to modify this booking")
	ErrBookingNotActive = utils.NewAppError(utils.ErrConflict, "booking_not_active", "booking is no longer active")
	ErrExtendOverlap    = utils.NewAppError(utils.ErrConflict, "extend_overlap", "another booking already occupies the requested interval")
)
