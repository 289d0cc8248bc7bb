package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/hirepath/hirepath/internal/export"
	"github.com/hirepath/hirepath/internal/query"
)

type JobsCmd struct {
	Query    string `arg:"" optional:"" help:"Keywords matched against title, company and description."`
	Location string `help:"Location substring filter." env:"HIREPATH_DEFAULT_LOCATION"`
	Type     string `help:"Posting type." enum:",full-time,part-time,contract,remote,hybrid" default:""`
	Format   string `help:"Output format: table, csv, json, md, tsv." enum:",table,csv,json,md,tsv" default:""`
	Output   string `name:"output" short:"o" help:"Write output to a file."`
}

func (c *JobsCmd) Run(ctx *Context) error {
	snapshot := ctx.Jobs().LoadOrEmpty()

	matched := query.FilterJobs(snapshot, query.JobFilter{
		Text:     c.Query,
		Location: firstNonEmpty(c.Location, ctx.Config.DefaultLocation),
		Type:     c.Type,
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
	if err := export.WriteJobs(writer, matched, format, opts); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Err, "summary: jobs=%d matched=%d\n", len(snapshot), len(matched))
	return nil
}

func resolveWriter(ctx *Context, outputPath string) (io.Writer, func(), error) {
	if strings.TrimSpace(outputPath) == "" {
		return ctx.Out, func() {}, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

func resolveFormat(ctx *Context, flagValue, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flagValue != "" {
		return export.ParseFormat(flagValue)
	}
	if fallback := ctx.Config.DefaultFormat; fallback != "" {
		return export.ParseFormat(fallback)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
