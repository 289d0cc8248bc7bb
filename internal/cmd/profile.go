package cmd

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/query"
	"github.com/hirepath/hirepath/internal/scoring"
)

type ProfileCmd struct {
	Show   ProfileShowCmd   `cmd:"" default:"1" help:"Show your profile."`
	Update ProfileUpdateCmd `cmd:"" help:"Merge field edits into your profile."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	user := ctx.Identity.Current()
	if user == nil {
		return fmt.Errorf("not signed in")
	}

	fmt.Fprintf(ctx.Out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)

	switch user.Role {
	case models.RoleJobSeeker:
		printJobSeeker(ctx, user)
	case models.RoleEmployer:
		printEmployer(ctx, user.Employer)
	default:
		ctx.UI.Infof("Admin accounts carry no profile.")
	}
	return nil
}

func printJobSeeker(ctx *Context, user *models.User) {
	p := user.JobSeeker
	if p == nil {
		ctx.UI.Warnf("No profile data yet. Use 'profile update --set field=value'.")
		return
	}

	printField(ctx, "title", p.Title)
	printField(ctx, "experience", p.Experience)
	printField(ctx, "skills", strings.Join(p.Skills, ", "))
	printField(ctx, "education", p.Education)
	printField(ctx, "location", p.Location)
	printField(ctx, "salary", p.Salary)
	printField(ctx, "bio", p.Bio)
	printField(ctx, "availability", p.Availability)
	printField(ctx, "work_type", p.WorkType)

	views := query.ViewsForProfile(ctx.ProfileViews().LoadOrEmpty(), user.ID)
	fmt.Fprintf(ctx.Out, "%s %d%%\n", ctx.UI.Label("complete:"), scoring.Completeness(p))
	fmt.Fprintf(ctx.Out, "%s %d\n", ctx.UI.Label("recent views:"), len(views))
}

func printEmployer(ctx *Context, p *models.EmployerProfile) {
	if p == nil {
		ctx.UI.Warnf("No profile data yet. Use 'profile update --set field=value'.")
		return
	}

	printField(ctx, "company", p.CompanyName)
	printField(ctx, "industry", p.Industry)
	printField(ctx, "size", p.CompanySize)
	printField(ctx, "location", p.Location)
	printField(ctx, "website", p.Website)
	printField(ctx, "description", p.Description)
}

func printField(ctx *Context, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(ctx.Out, "%s %s\n", ctx.UI.Label(label+":"), value)
}

type ProfileUpdateCmd struct {
	Set []string `name:"set" short:"s" required:"" help:"field=value pair, repeatable. List fields (skills, languages, ...) take comma-separated values."`
}

// listFields are the profile fields parsed as comma-separated lists rather
// than plain strings.
var listFields = map[models.Role]map[string]bool{
	models.RoleJobSeeker: {
		"skills":         true,
		"achievements":   true,
		"languages":      true,
		"certifications": true,
	},
	models.RoleEmployer: {
		"culture":  true,
		"benefits": true,
	},
}

func (c *ProfileUpdateCmd) Run(ctx *Context) error {
	user := ctx.Identity.Current()
	if user == nil {
		return fmt.Errorf("not signed in")
	}

	values, err := parseAssignments(c.Set, listFields[user.Role])
	if err != nil {
		return err
	}

	var update models.ProfileUpdate
	switch user.Role {
	case models.RoleJobSeeker:
		var u models.JobSeekerUpdate
		if err := decodeUpdate(values, &u); err != nil {
			return err
		}
		update = u
	case models.RoleEmployer:
		var u models.EmployerUpdate
		if err := decodeUpdate(values, &u); err != nil {
			return err
		}
		update = u
	default:
		return fmt.Errorf("admin accounts carry no profile")
	}

	if err := ctx.Identity.UpdateProfile(update); err != nil {
		return err
	}

	ctx.UI.Successf("Profile updated (%d field(s)).", len(values))
	return nil
}

func parseAssignments(pairs []string, lists map[string]bool) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected field=value, got %q", pair)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("empty field name in %q", pair)
		}
		if lists[key] {
			values[key] = splitCSV(value)
		} else {
			values[key] = value
		}
	}
	return values, nil
}

// decodeUpdate maps field=value assignments onto the typed update struct.
// Unknown fields fail the decode, so edits aimed at the other profile
// variant are rejected instead of silently dropped.
func decodeUpdate(values map[string]any, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      result,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("invalid profile fields: %w", err)
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
