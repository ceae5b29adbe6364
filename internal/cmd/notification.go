package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notificationCmd = &cobra.Command{
	Use:     "notification",
	Aliases: []string{"notif"},
	Short:   "Read your notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var notificationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth("/notifications/"); err != nil {
			return err
		}

		notifications, err := app.client.Notifications(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Println(app.renderer.NotificationList(notifications))
		return nil
	},
}

var notificationReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.requireAuth(fmt.Sprintf("/notifications/%d/", id)); err != nil {
			return err
		}

		if err := app.client.MarkNotificationRead(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Notification #%d marked read.\n", id)
		return nil
	},
}

var notificationReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth("/notifications/"); err != nil {
			return err
		}

		if err := app.client.MarkAllNotificationsRead(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("All notifications marked read.")
		return nil
	},
}

var notificationCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the unread notification count",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth("/notifications/"); err != nil {
			return err
		}

		count, err := app.client.UnreadCount(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Println(count)
		return nil
	},
}

func init() {
	notificationCmd.AddCommand(notificationListCmd)
	notificationCmd.AddCommand(notificationReadCmd)
	notificationCmd.AddCommand(notificationReadAllCmd)
	notificationCmd.AddCommand(notificationCountCmd)
	rootCmd.AddCommand(notificationCmd)
}
