// Package export renders collection snapshots to the terminal or a file in
// one of several formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"

	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/scoring"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	// Now anchors the recency labels shown next to postings and profiles.
	Now time.Time
}

func (o WriteOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs)
	case FormatCSV:
		return writeRows(w, jobHeader(), jobRows(jobs, opts), ',')
	case FormatTSV:
		return writeRows(w, jobHeader(), jobRows(jobs, opts), '\t')
	case FormatMarkdown:
		return writeJobsMarkdown(w, jobs, opts)
	default:
		return writeTable(w, jobHeader(), jobRows(jobs, opts), opts)
	}
}

func WriteProfiles(w io.Writer, users []models.User, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, users)
	case FormatCSV:
		return writeRows(w, profileHeader(), profileRows(users, opts), ',')
	case FormatTSV:
		return writeRows(w, profileHeader(), profileRows(users, opts), '\t')
	case FormatMarkdown:
		return writeProfilesMarkdown(w, users, opts)
	default:
		return writeTable(w, profileHeader(), profileRows(users, opts), opts)
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRows(w io.Writer, header []string, rows [][]string, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, header []string, rows [][]string, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	output := termenv.NewOutput(w)

	head := strings.Join(header, "\t")
	if opts.ColorEnabled {
		head = output.String(head).Bold().String()
	}
	fmt.Fprintln(tw, head)

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func jobHeader() []string {
	return []string{"TITLE", "COMPANY", "LOCATION", "TYPE", "SALARY", "POSTED", "STATUS", "APPLICANTS"}
}

func jobRows(jobs []models.Job, opts WriteOptions) [][]string {
	now := opts.now()
	rows := make([][]string, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, []string{
			safe(job.Title),
			safe(job.Company),
			safe(job.Location),
			safe(string(job.Type)),
			safe(job.Salary),
			scoring.RecencyLabel(job.PostedAt, now),
			safe(string(job.Status)),
			fmt.Sprintf("%d", job.ApplicationsCount),
		})
	}
	return rows
}

func profileHeader() []string {
	return []string{"NAME", "TITLE", "LOCATION", "SKILLS", "COMPLETE", "ACTIVE"}
}

func profileRows(users []models.User, opts WriteOptions) [][]string {
	now := opts.now()
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		p := user.JobSeeker

		title, location, skills := "-", "-", "-"
		if p != nil {
			title = safe(p.Title)
			location = safe(p.Location)
			skills = truncate(strings.Join(p.Skills, ", "), 40)
			if skills == "" {
				skills = "-"
			}
		}

		active := "-"
		if user.LastActive != nil {
			active = scoring.RecencyLabel(*user.LastActive, now)
		}

		rows = append(rows, []string{
			safe(user.Name),
			title,
			location,
			skills,
			fmt.Sprintf("%d%%", scoring.Completeness(p)),
			active,
		})
	}
	return rows
}

func writeJobsMarkdown(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	now := opts.now()
	for _, job := range jobs {
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(job.Title), safe(job.Company)),
			fmt.Sprintf("  Location: %s | Type: %s", safe(job.Location), safe(string(job.Type))),
			fmt.Sprintf("  Salary: %s | Posted: %s", safe(job.Salary), scoring.RecencyLabel(job.PostedAt, now)),
		}
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func writeProfilesMarkdown(w io.Writer, users []models.User, opts WriteOptions) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	now := opts.now()
	for _, user := range users {
		p := user.JobSeeker
		title := "-"
		skills := "-"
		if p != nil {
			title = safe(p.Title)
			if len(p.Skills) > 0 {
				skills = strings.Join(p.Skills, ", ")
			}
		}
		active := "-"
		if user.LastActive != nil {
			active = scoring.RecencyLabel(*user.LastActive, now)
		}
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(user.Name), title),
			fmt.Sprintf("  Skills: %s", skills),
			fmt.Sprintf("  Profile: %d%% complete | Active %s", scoring.Completeness(p), active),
		}
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func safe(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return value
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	if max <= 3 {
		return value[:max]
	}
	return value[:max-3] + "..."
}
