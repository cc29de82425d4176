package constants

// Cache key layout. Keys are namespaced per resource so mutations can
// invalidate a whole resource family with a single pattern delete.
const (
	KEY_EVENTS_PUBLIC_LIST = "ticketdesk:events:public"
	KEY_EVENT_DETAIL       = "ticketdesk:events:detail:" // + event id
	KEY_TICKETS_BY_EVENT   = "ticketdesk:tickets:event:" // + event id
	KEY_ACTIVE_BANNER      = "ticketdesk:notifications:active"
	KEY_GALLERY_LIST       = "ticketdesk:gallery:public"

	KEY_SESSION = "ticketdesk:session:" // + token digest

	PATTERN_INVALIDATE_EVENTS        = "ticketdesk:events:*"
	PATTERN_INVALIDATE_TICKETS       = "ticketdesk:tickets:*"
	PATTERN_INVALIDATE_NOTIFICATIONS = "ticketdesk:notifications:*"
	PATTERN_INVALIDATE_GALLERY       = "ticketdesk:gallery:*"
)
