package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirepath/hirepath/internal/config"
	"github.com/hirepath/hirepath/internal/identity"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/store"
	"github.com/hirepath/hirepath/internal/ui"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	DataDir    string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	KV       store.KV
	Identity *identity.Manager
	Now      func() time.Time
}

func (c *Context) Users() *store.Collection[models.User] {
	return store.NewCollection[models.User](c.KV, store.CollectionUsers, c.Logger)
}

func (c *Context) Jobs() *store.Collection[models.Job] {
	return store.NewCollection[models.Job](c.KV, store.CollectionJobs, c.Logger)
}

func (c *Context) Applications() *store.Collection[models.Application] {
	return store.NewCollection[models.Application](c.KV, store.CollectionApplications, c.Logger)
}

func (c *Context) ProfileViews() *store.Collection[models.ProfileView] {
	return store.NewCollection[models.ProfileView](c.KV, store.CollectionProfileViews, c.Logger)
}
