package cmd

import (
	"fmt"

	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/query"
	"github.com/hirepath/hirepath/internal/scoring"
)

// statusOrder fixes the display order of funnel stages.
var statusOrder = []models.ApplicationStatus{
	models.ApplicationPending,
	models.ApplicationReviewed,
	models.ApplicationShortlisted,
	models.ApplicationRejected,
	models.ApplicationHired,
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	user := ctx.Identity.Current()
	if user == nil {
		return fmt.Errorf("not signed in")
	}

	apps := ctx.Applications().LoadOrEmpty()

	switch user.Role {
	case models.RoleJobSeeker:
		c.printJobSeekerStats(ctx, user, apps)
	case models.RoleEmployer:
		c.printEmployerStats(ctx, user, apps)
	default:
		ctx.UI.Infof("No stats for admin accounts.")
	}
	return nil
}

func (c *StatsCmd) printJobSeekerStats(ctx *Context, user *models.User, apps []models.Application) {
	mine := query.ApplicationsForApplicant(apps, user.ID)
	counts := query.CountByStatus(mine)
	views := query.ViewsForProfile(ctx.ProfileViews().LoadOrEmpty(), user.ID)

	fmt.Fprintf(ctx.Out, "%s %d\n", ctx.UI.Label("applications:"), len(mine))
	for _, status := range statusOrder {
		if counts[status] == 0 {
			continue
		}
		fmt.Fprintf(ctx.Out, "  %s %d\n", ctx.UI.Label(string(status)+":"), counts[status])
	}
	fmt.Fprintf(ctx.Out, "%s %d\n", ctx.UI.Label("profile views:"), len(views))
	fmt.Fprintf(ctx.Out, "%s %d%%\n", ctx.UI.Label("profile complete:"), scoring.Completeness(user.JobSeeker))
}

func (c *StatsCmd) printEmployerStats(ctx *Context, user *models.User, apps []models.Application) {
	var postings []models.Job
	var ids []string
	for _, job := range ctx.Jobs().LoadOrEmpty() {
		if job.PostedBy == user.ID {
			postings = append(postings, job)
			ids = append(ids, job.ID)
		}
	}

	received := query.ApplicationsForJobs(apps, ids)
	counts := query.CountByStatus(received)

	active := 0
	for _, job := range postings {
		if job.Status == models.JobStatusActive {
			active++
		}
	}

	fmt.Fprintf(ctx.Out, "%s %d (%d active)\n", ctx.UI.Label("postings:"), len(postings), active)
	fmt.Fprintf(ctx.Out, "%s %d\n", ctx.UI.Label("applicants:"), len(received))
	for _, status := range statusOrder {
		if counts[status] == 0 {
			continue
		}
		fmt.Fprintf(ctx.Out, "  %s %d\n", ctx.UI.Label(string(status)+":"), counts[status])
	}
}
