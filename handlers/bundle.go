package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking      *BookingHandler
	Workspace    *WorkspaceHandler
	Notification *NotificationHandler
}
