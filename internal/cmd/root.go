package cmd

import "github.com/alecthomas/kong"

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version  VersionCmd  `cmd:"" help:"Print version."`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration."`
	Register RegisterCmd `cmd:"" help:"Create an account and sign in."`
	Login    LoginCmd    `cmd:"" help:"Sign in to an existing account."`
	Logout   LogoutCmd   `cmd:"" help:"Sign out."`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the signed-in account."`
	Profile  ProfileCmd  `cmd:"" help:"Show or edit your profile."`
	Jobs     JobsCmd     `cmd:"" help:"Search job postings."`
	Talent   TalentCmd   `cmd:"" help:"Search and view candidate profiles."`
	Stats    StatsCmd    `cmd:"" help:"Show your activity numbers."`
	Seed     SeedCmd     `cmd:"" help:"Populate empty collections with demo data."`
}

func NewCLI() *CLI {
	return &CLI{}
}
