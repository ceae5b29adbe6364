package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/unijobs/unijobs/internal/api"
)

func notificationIcon(t string) string {
	switch t {
	case api.NotificationApplicationUpdate:
		return "📋"
	case api.NotificationNewVacancy:
		return "💼"
	default:
		return "🔔"
	}
}

// NotificationRow renders one notification. Unread ones are emphasized.
func (r *Renderer) NotificationRow(n *api.Notification) string {
	title := r.styles.Muted.Render(n.Title)
	if !n.IsRead {
		title = r.styles.Value.Render(n.Title) + " " + r.styles.Badge.Render("new")
	}

	line := fmt.Sprintf("#%d %s %s", n.ID, notificationIcon(n.NotificationType), title)
	if !n.CreatedAt.IsZero() {
		line += r.styles.Muted.Render("  " + humanize.Time(n.CreatedAt))
	}
	if n.Message != "" {
		line += "\n" + r.styles.Muted.Render("  "+n.Message)
	}
	return line
}

// NotificationList renders the notification feed.
func (r *Renderer) NotificationList(notifications []api.Notification) string {
	if len(notifications) == 0 {
		return r.styles.Muted.Render("No notifications.")
	}
	rows := make([]string, 0, len(notifications))
	for i := range notifications {
		rows = append(rows, r.NotificationRow(&notifications[i]))
	}
	return strings.Join(rows, "\n")
}
