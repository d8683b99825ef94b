package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jta/lldpy/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// exportEvent is the JSON shape of one exported event.
type exportEvent struct {
	Timestamp string                `json:"timestamp"`
	SessionID string                `json:"session_id,omitempty"`
	Category  string                `json:"category"`
	Severity  string                `json:"severity"`
	Message   string                `json:"message,omitempty"`
	State     *log.StateChangeEvent `json:"state,omitempty"`
	Change    *log.ChangeEvent      `json:"change,omitempty"`
	Error     *log.ErrorEventData   `json:"error,omitempty"`
}

func toExportEvent(event log.Event) exportEvent {
	return exportEvent{
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z"),
		SessionID: event.SessionID,
		Category:  event.Category.String(),
		Severity:  event.Severity.String(),
		Message:   event.Message,
		State:     event.State,
		Change:    event.Change,
		Error:     event.Error,
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toExportEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{
	"timestamp", "session_id", "category", "severity", "message",
	"kind", "interface", "chassis_name", "port_id",
	"old_state", "new_state", "error_code", "error_context",
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := make([]string, len(csvHeader))
		row[0] = event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z")
		row[1] = event.SessionID
		row[2] = event.Category.String()
		row[3] = event.Severity.String()
		row[4] = event.Message
		if event.Change != nil {
			row[5] = event.Change.Kind
			row[6] = event.Change.Interface
			row[7] = event.Change.ChassisName
			row[8] = event.Change.PortID
		}
		if event.State != nil {
			row[9] = event.State.OldState
			row[10] = event.State.NewState
		}
		if event.Error != nil {
			row[11] = strconv.Itoa(event.Error.Code)
			row[12] = event.Error.Context
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
