package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewQueueCommand constructs the `queue` command group and subcommands.
func NewQueueCommand(baseURL BaseURLFunc) *cobra.Command {
	queueCmd := &cobra.Command{Use: "queue", Short: "Queue operations"}

	queueCmd.AddCommand(
		newQueuePutCommand(baseURL),
		newQueuePeekCommand(baseURL),
		newQueuePopCommand(baseURL),
		newQueueListCommand(baseURL),
	)

	return queueCmd
}

// newQueuePutCommand constructs the `queue put` subcommand.
func newQueuePutCommand(baseURL BaseURLFunc) *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put",
		Short: "Enqueue an item (replaces an item carrying the same timestamps)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			queue, _ := cmd.Flags().GetString("queue")
			datetime, _ := cmd.Flags().GetString("datetime")
			secondary, _ := cmd.Flags().GetString("datetime-secondary")
			message, _ := cmd.Flags().GetString("message")
			if datetime == "" {
				return fmt.Errorf("--datetime is required (RFC3339)")
			}

			payload := map[string]string{"datetime": datetime, "message": message}
			if secondary != "" {
				payload["datetime_secondary"] = secondary
			}
			body, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			resp, err := doJSON(cmd.Context(), http.MethodPut, itemURL(baseURL, queue), bytes.NewReader(body))
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode >= 300 {
				return httpError(resp)
			}
			_, _ = io.Copy(io.Discard, resp.Body)

			outcome := "replaced"
			if resp.StatusCode == http.StatusCreated {
				outcome = "created"
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "status:", outcome)
			return nil
		},
	}
	putCmd.Flags().StringP("queue", "q", "default", "Queue name")
	putCmd.Flags().String("datetime", "", "Primary timestamp (RFC3339)")
	putCmd.Flags().String("datetime-secondary", "", "Secondary timestamp (RFC3339)")
	putCmd.Flags().String("message", "", "Item message")
	return putCmd
}

// newQueuePeekCommand constructs the `queue peek` subcommand.
func newQueuePeekCommand(baseURL BaseURLFunc) *cobra.Command {
	peekCmd := &cobra.Command{
		Use:   "peek",
		Short: "Show the earliest item without removing it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			queue, _ := cmd.Flags().GetString("queue")
			return takeItem(cmd, baseURL, http.MethodGet, queue)
		},
	}
	peekCmd.Flags().StringP("queue", "q", "default", "Queue name")
	return peekCmd
}

// newQueuePopCommand constructs the `queue pop` subcommand.
func newQueuePopCommand(baseURL BaseURLFunc) *cobra.Command {
	popCmd := &cobra.Command{
		Use:   "pop",
		Short: "Remove and show the earliest item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			queue, _ := cmd.Flags().GetString("queue")
			return takeItem(cmd, baseURL, http.MethodDelete, queue)
		},
	}
	popCmd.Flags().StringP("queue", "q", "default", "Queue name")
	return popCmd
}

// takeItem fetches the head of a queue via GET (peek) or DELETE (pop) and
// renders the item, or "status: empty" on 204.
func takeItem(cmd *cobra.Command, baseURL BaseURLFunc, method, queue string) error {
	resp, err := doJSON(cmd.Context(), method, itemURL(baseURL, queue), nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return httpError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "status:", "empty")
		return nil
	}

	var data struct {
		Datetime          string  `json:"datetime"`
		DatetimeSecondary *string `json:"datetime_secondary,omitempty"`
		Message           string  `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// newQueueListCommand constructs the `queue list` subcommand.
func newQueueListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List configured queues with item counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := doJSON(cmd.Context(), http.MethodGet, endpointURL(baseURL, "/v1/queues"), nil)
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode >= 300 {
				return httpError(resp)
			}

			var data struct {
				Queues []struct {
					Name  string `json:"name"`
					Items int64  `json:"items"`
					Bytes int64  `json:"bytes"`
				} `json:"queues"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
	return listCmd
}
