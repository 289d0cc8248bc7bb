package cmd

import (
	"strings"

	"github.com/hirepath/hirepath/internal/seed"
)

type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *Context) error {
	seeded, err := seed.Ensure(ctx.KV, ctx.Logger)
	if err != nil {
		return err
	}
	if len(seeded) == 0 {
		ctx.UI.Infof("All collections already populated.")
		return nil
	}
	ctx.UI.Successf("Seeded: %s", strings.Join(seeded, ", "))
	return nil
}
