package query

import "github.com/hirepath/hirepath/internal/models"

// JobFilter is the job-search criteria set. Text searches title, company
// and description; Type is an exact match against the posting type.
type JobFilter struct {
	Text     string
	Location string
	Type     string
}

// FilterJobs returns the postings matching every supplied criterion, in
// input order.
func FilterJobs(jobs []models.Job, filter JobFilter) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if matchesJob(job, filter) {
			out = append(out, job)
		}
	}
	return out
}

func matchesJob(job models.Job, filter JobFilter) bool {
	if filter.Text != "" {
		if !contains(job.Title, filter.Text) &&
			!contains(job.Company, filter.Text) &&
			!contains(job.Description, filter.Text) {
			return false
		}
	}
	if filter.Location != "" && !contains(job.Location, filter.Location) {
		return false
	}
	if filter.Type != "" && string(job.Type) != filter.Type {
		return false
	}
	return true
}
