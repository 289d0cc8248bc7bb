package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/hirepath/hirepath/internal/identity"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/scoring"
)

type RegisterCmd struct {
	Name     string `required:"" help:"Full name."`
	Email    string `required:"" help:"Account email."`
	Role     string `enum:"jobseeker,employer" default:"jobseeker" help:"Account role."`
	Company  string `help:"Company name (required for employer accounts)."`
	Password string `help:"Password. Prompted for when omitted."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	password, err := resolvePassword(c.Password)
	if err != nil {
		return err
	}

	user, err := ctx.Identity.Register(identity.RegisterInput{
		Name:        c.Name,
		Email:       c.Email,
		Password:    password,
		Role:        models.Role(c.Role),
		CompanyName: c.Company,
	})
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateEmail) {
			return fmt.Errorf("%s is already registered", c.Email)
		}
		return err
	}

	ctx.UI.Successf("Welcome, %s! Signed in as %s (%s).", user.Name, user.Email, user.Role)
	return nil
}

type LoginCmd struct {
	Email    string `required:"" help:"Account email."`
	Role     string `enum:"jobseeker,employer,admin" default:"jobseeker" help:"Account role."`
	Password string `help:"Password. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	password, err := resolvePassword(c.Password)
	if err != nil {
		return err
	}

	user, err := ctx.Identity.Login(c.Email, password, models.Role(c.Role))
	if err != nil {
		return err
	}

	ctx.UI.Successf("Signed in as %s (%s).", user.Name, user.Role)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Identity.Logout(); err != nil {
		return err
	}
	ctx.UI.Infof("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user := ctx.Identity.Current()
	if user == nil {
		ctx.UI.Infof("Not signed in.")
		return nil
	}

	fmt.Fprintf(ctx.Out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	if user.Role == models.RoleJobSeeker {
		fmt.Fprintf(ctx.Out, "%s %d%%\n", ctx.UI.Label("profile complete:"), scoring.Completeness(user.JobSeeker))
	}
	return nil
}

func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	prompt := promptui.Prompt{Label: "Password", Mask: '*'}
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return value, nil
}
