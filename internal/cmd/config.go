package cmd

import (
	"fmt"
	"strings"

	"github.com/hirepath/hirepath/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write a default config file."`
	Path PathConfigCmd `cmd:"" help:"Print config directory and data directory."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		ctx.UI.Infof("Config already initialized at %s", ctx.ConfigDir)
		return nil
	}
	ctx.UI.Infof("Created: %s", strings.Join(paths, ", "))
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	if _, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir); err != nil {
		return err
	}
	_, err := fmt.Fprintln(ctx.Out, ctx.DataDir)
	return err
}
