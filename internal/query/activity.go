package query

import "github.com/hirepath/hirepath/internal/models"

// ViewsForProfile returns the view-log entries recorded against one
// profile, in log order.
func ViewsForProfile(views []models.ProfileView, profileID string) []models.ProfileView {
	out := make([]models.ProfileView, 0, len(views))
	for _, view := range views {
		if view.ProfileID == profileID {
			out = append(out, view)
		}
	}
	return out
}

// ApplicationsForApplicant returns one candidate's applications, in
// collection order.
func ApplicationsForApplicant(apps []models.Application, applicantID string) []models.Application {
	out := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.ApplicantID == applicantID {
			out = append(out, app)
		}
	}
	return out
}

// ApplicationsForJobs returns the applications submitted against any of the
// given postings.
func ApplicationsForJobs(apps []models.Application, jobIDs []string) []models.Application {
	ids := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		ids[id] = struct{}{}
	}

	out := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if _, ok := ids[app.JobID]; ok {
			out = append(out, app)
		}
	}
	return out
}

// CountByStatus tallies applications per funnel stage.
func CountByStatus(apps []models.Application) map[models.ApplicationStatus]int {
	counts := make(map[models.ApplicationStatus]int, len(apps))
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}
