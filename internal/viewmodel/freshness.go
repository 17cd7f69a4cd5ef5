package viewmodel

import (
	"strconv"
	"time"

	"github.com/okiroth/gallery_backend/internal/domain"
)

const (
	SeenContentKey      = "seen_content_id"
	SeenAnnouncementKey = "seen_announcement_id"

	// FreshWindow is how long after creation an item still counts as
	// new content.
	FreshWindow = 48 * time.Hour
)

// Notification is the transient "new content" banner payload.
type Notification struct {
	ItemID    int       `json:"itemId"`
	ItemName  string    `json:"itemName"`
	CreatedAt time.Time `json:"createdAt"`
}

// DetectNewContent scans the fetched list for the newest item and
// reports whether a notification should be shown: the item must be
// within the fresh window and its id must differ from the last
// dismissed one. Displaying the banner does not mark it seen.
func DetectNewContent(items []domain.GalleryItem, store ClientStore, now time.Time) (Notification, bool) {
	var newest *domain.GalleryItem
	for i := range items {
		if newest == nil || items[i].CreatedAt.After(newest.CreatedAt) {
			newest = &items[i]
		}
	}
	if newest == nil {
		return Notification{}, false
	}
	if now.Sub(newest.CreatedAt) > FreshWindow {
		return Notification{}, false
	}
	if seen, ok := store.Get(SeenContentKey); ok && seen == strconv.Itoa(newest.ID) {
		return Notification{}, false
	}
	return Notification{ItemID: newest.ID, ItemName: newest.Name, CreatedAt: newest.CreatedAt}, true
}

// Dismiss records the notification as seen; only an explicit dismissal
// stops it from reappearing.
func Dismiss(store ClientStore, n Notification) {
	store.Set(SeenContentKey, strconv.Itoa(n.ItemID))
}

// ShowAnnouncement reports whether the site-wide announcement banner
// identified by id should be shown. Like the new-content banner it
// reappears until explicitly dismissed; publishing an announcement
// under a new id resurfaces it for everyone.
func ShowAnnouncement(store ClientStore, id string) bool {
	if id == "" {
		return false
	}
	seen, ok := store.Get(SeenAnnouncementKey)
	return !ok || seen != id
}

// DismissAnnouncement marks the announcement as seen.
func DismissAnnouncement(store ClientStore, id string) {
	store.Set(SeenAnnouncementKey, id)
}
