package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jta/lldpy/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsBySeverity map[log.Severity]int
	ChangesByKind    map[string]int
	Sessions         map[string]*SessionStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single backend session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Changes   int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsBySeverity: make(map[log.Severity]int),
		ChangesByKind:    make(map[string]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.EventsBySeverity[event.Severity]++
		if event.Category == log.CategoryError {
			stats.Errors++
		}
		if event.Change != nil {
			stats.ChangesByKind[event.Change.Kind]++
		}

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		if event.SessionID == "" {
			continue
		}
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Timestamp.Before(sess.FirstSeen) {
			sess.FirstSeen = event.Timestamp
		}
		if event.Change != nil {
			sess.Changes++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return
	}

	fmt.Fprintf(w, "Time range:   %s - %s (%s)\n",
		stats.TimeRange.Start.UTC().Format(time.RFC3339),
		stats.TimeRange.End.UTC().Format(time.RFC3339),
		stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
	fmt.Fprintf(w, "Errors:       %d\n", stats.Errors)

	fmt.Fprintln(w, "\nEvents by category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryChange, log.CategoryBackend, log.CategoryError} {
		if n := stats.EventsByCategory[cat]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", cat.String(), n)
		}
	}

	fmt.Fprintln(w, "\nEvents by severity:")
	for _, sev := range []log.Severity{log.SeverityError, log.SeverityWarning, log.SeverityInfo, log.SeverityDebug} {
		if n := stats.EventsBySeverity[sev]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", sev.String(), n)
		}
	}

	if len(stats.ChangesByKind) > 0 {
		fmt.Fprintln(w, "\nNeighbor changes:")
		kinds := make([]string, 0, len(stats.ChangesByKind))
		for kind := range stats.ChangesByKind {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Fprintf(w, "  %-8s %d\n", kind, stats.ChangesByKind[kind])
		}
	}

	if len(stats.Sessions) > 0 {
		fmt.Fprintf(w, "\nSessions (%d):\n", len(stats.Sessions))
		ids := make([]string, 0, len(stats.Sessions))
		for id := range stats.Sessions {
			ids = append(ids, id)
		}
		// Order sessions by first appearance
		sort.Slice(ids, func(i, j int) bool {
			return stats.Sessions[ids[i]].FirstSeen.Before(stats.Sessions[ids[j]].FirstSeen)
		})
		for _, id := range ids {
			sess := stats.Sessions[id]
			fmt.Fprintf(w, "  %s  events=%d changes=%d duration=%s\n",
				shortenSessionID(id), sess.Events, sess.Changes,
				sess.LastSeen.Sub(sess.FirstSeen).Round(time.Millisecond))
		}
	}
}
