package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/filecore/internal/cli/output"
)

var (
	statusOutput string
	statusPort   int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of a running filecored instance",
	Long: `Query a running filecored instance's HTTP debug surface and report its
liveness, uptime, and session/registry counts.

Examples:
  # Check status of the default port
  filecored status

  # Check status on a custom port
  filecored status --port 9191

  # Output as JSON
  filecored status --output json`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusPort, "port", 9090, "HTTP debug/metrics port to query")
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "table", "Output format (table|json|yaml)")

	rootCmd.AddCommand(statusCmd)
}

type healthPayload struct {
	Status string `json:"status"`
	Data   struct {
		Service   string `json:"service"`
		StartedAt string `json:"started_at"`
		UptimeSec int64  `json:"uptime_sec"`
	} `json:"data"`
}

type sessionsPayload struct {
	Status string `json:"status"`
	Data   struct {
		ActiveCount   int `json:"active_count"`
		RegistryCount int `json:"registry_count"`
	} `json:"data"`
}

// instanceStatus is the JSON-friendly shape of a status check result,
// independent of whichever HTTP endpoints produced it.
type instanceStatus struct {
	Reachable     bool   `json:"reachable" yaml:"reachable"`
	Message       string `json:"message" yaml:"message"`
	StartedAt     string `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	UptimeSec     int64  `json:"uptime_sec,omitempty" yaml:"uptime_sec,omitempty"`
	ActiveCount   int    `json:"active_sessions,omitempty" yaml:"active_sessions,omitempty"`
	RegistryCount int    `json:"registry_size,omitempty" yaml:"registry_size,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(statusOutput)
	if err != nil {
		return err
	}

	status := queryStatus(statusPort)

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, status)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, status)
	default:
		return printStatusTable(status)
	}
}

func queryStatus(port int) instanceStatus {
	client := &http.Client{Timeout: 2 * time.Second}

	status := instanceStatus{Message: "filecored is not reachable"}

	health, err := getJSON[healthPayload](client, fmt.Sprintf("http://localhost:%d/healthz", port))
	if err != nil {
		return status
	}
	status.Reachable = true
	status.Message = "filecored is running"
	status.StartedAt = health.Data.StartedAt
	status.UptimeSec = health.Data.UptimeSec

	if sessions, err := getJSON[sessionsPayload](client, fmt.Sprintf("http://localhost:%d/debug/sessions", port)); err == nil {
		status.ActiveCount = sessions.Data.ActiveCount
		status.RegistryCount = sessions.Data.RegistryCount
	}

	return status
}

func getJSON[T any](client *http.Client, url string) (T, error) {
	var out T
	resp, err := client.Get(url)
	if err != nil {
		return out, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

func printStatusTable(status instanceStatus) error {
	pairs := [][2]string{
		{"Reachable", fmt.Sprintf("%t", status.Reachable)},
		{"Message", status.Message},
	}
	if status.Reachable {
		pairs = append(pairs,
			[2]string{"Started", status.StartedAt},
			[2]string{"Uptime (s)", fmt.Sprintf("%d", status.UptimeSec)},
			[2]string{"Active sessions", fmt.Sprintf("%d", status.ActiveCount)},
			[2]string{"Registry size", fmt.Sprintf("%d", status.RegistryCount)},
		)
	}
	return output.KeyValueTable(os.Stdout, pairs)
}
