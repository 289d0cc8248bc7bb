package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirepath/hirepath/internal/export"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/query"
	"github.com/hirepath/hirepath/internal/scoring"
)

type TalentCmd struct {
	Search TalentSearchCmd `cmd:"" default:"withargs" help:"Search job-seeker profiles."`
	View   TalentViewCmd   `cmd:"" help:"Show one profile and record the visit."`
}

type TalentSearchCmd struct {
	Query      string `arg:"" optional:"" help:"Keywords matched against name, title and skills."`
	Location   string `help:"Location substring filter." env:"HIREPATH_DEFAULT_LOCATION"`
	Skill      string `help:"Skill substring filter."`
	Experience string `help:"Substring matched against the experience text."`
	Format     string `help:"Output format: table, csv, json, md, tsv." enum:",table,csv,json,md,tsv" default:""`
	Output     string `name:"output" short:"o" help:"Write output to a file."`
}

func (c *TalentSearchCmd) Run(ctx *Context) error {
	snapshot := ctx.Users().LoadOrEmpty()

	matched := query.FilterProfiles(snapshot, query.ProfileFilter{
		Text:       c.Query,
		Location:   firstNonEmpty(c.Location, ctx.Config.DefaultLocation),
		Skill:      c.Skill,
		Experience: c.Experience,
	})

	format, err := resolveFormat(ctx, c.Format, c.Output)
	if err != nil {
		return err
	}

	writer, closeFn, err := resolveWriter(ctx, c.Output)
	if err != nil {
		return err
	}
	defer closeFn()

	opts := export.WriteOptions{ColorEnabled: ctx.UI != nil && ctx.UI.ColorEnabled, Now: ctx.Now()}
	if err := export.WriteProfiles(writer, matched, format, opts); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Err, "summary: profiles=%d matched=%d\n", countJobSeekers(snapshot), len(matched))
	return nil
}

func countJobSeekers(users []models.User) int {
	total := 0
	for _, user := range users {
		if user.Role == models.RoleJobSeeker {
			total++
		}
	}
	return total
}

type TalentViewCmd struct {
	ID string `arg:"" help:"Profile id to open."`
}

func (c *TalentViewCmd) Run(ctx *Context) error {
	users := ctx.Users().LoadOrEmpty()

	var target *models.User
	for i := range users {
		if users[i].ID == c.ID {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no profile with id %q", c.ID)
	}
	if target.Role != models.RoleJobSeeker {
		return fmt.Errorf("%q is not a job-seeker profile", c.ID)
	}

	now := ctx.Now()
	p := target.JobSeeker

	fmt.Fprintf(ctx.Out, "%s (%s)\n", target.Name, target.ID)
	if p != nil {
		printField(ctx, "title", p.Title)
		printField(ctx, "location", p.Location)
		printField(ctx, "experience", p.Experience)
		printField(ctx, "education", p.Education)
		printField(ctx, "skills", strings.Join(p.Skills, ", "))
		printField(ctx, "bio", p.Bio)
	}
	fmt.Fprintf(ctx.Out, "%s %d%%\n", ctx.UI.Label("complete:"), scoring.Completeness(p))
	if target.LastActive != nil {
		fmt.Fprintf(ctx.Out, "%s %s\n", ctx.UI.Label("active:"), scoring.RecencyLabel(*target.LastActive, now))
	}

	views := query.ViewsForProfile(ctx.ProfileViews().LoadOrEmpty(), target.ID)
	fmt.Fprintf(ctx.Out, "%s %d\n", ctx.UI.Label("recent views:"), len(views))
	for _, view := range views {
		who := view.ViewerName
		if view.ViewerCompany != "" {
			who += " @ " + view.ViewerCompany
		}
		fmt.Fprintf(ctx.Out, "  %s (%s)\n", who, scoring.RecencyLabel(view.ViewedAt, now))
	}

	return c.recordVisit(ctx, target, now)
}

// recordVisit appends a view-log entry when someone else's signed-in
// account opens the profile. Anonymous browsing leaves no trace.
func (c *TalentViewCmd) recordVisit(ctx *Context, target *models.User, now time.Time) error {
	viewer := ctx.Identity.Current()
	if viewer == nil || viewer.ID == target.ID {
		return nil
	}

	view := models.ProfileView{
		ID:         uuid.NewString(),
		ViewerID:   viewer.ID,
		ProfileID:  target.ID,
		ViewedAt:   now,
		ViewerName: viewer.Name,
	}
	if viewer.JobSeeker != nil {
		view.ViewerTitle = viewer.JobSeeker.Title
	}
	if viewer.Employer != nil {
		view.ViewerCompany = viewer.Employer.CompanyName
	}

	if err := ctx.ProfileViews().Upsert(view, func(v models.ProfileView) string { return v.ID }); err != nil {
		return fmt.Errorf("record profile view: %w", err)
	}
	ctx.Logger.Debug().Str("profile_id", target.ID).Str("viewer_id", viewer.ID).
		Msg("profile view recorded")
	return nil
}
