package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Mr-Dark-debug/abxdash/internal/catalog"
	"github.com/Mr-Dark-debug/abxdash/internal/config"
	"github.com/Mr-Dark-debug/abxdash/internal/database"
	"github.com/Mr-Dark-debug/abxdash/internal/logging"
	"github.com/Mr-Dark-debug/abxdash/internal/site"
	"github.com/Mr-Dark-debug/abxdash/internal/tab"
	"github.com/Mr-Dark-debug/abxdash/internal/tui"
	"github.com/Mr-Dark-debug/abxdash/pkg/jsonutil"
)

const usage = `abxdash — Antibiotics: Discovery, Benefits, Misuse, and Solutions

Usage:
  abxdash <command> [flags]

Commands:
  views      List the tabs in display order
  datasets   List the registered datasets
  validate   Load and render every view, reporting all problems
  render     Print one view as text or JSON
  export     Write the datasets to a SQLite database
  version    Print version information

Run 'abxdash <command> --help' for details on each command.`

var errUsage = stderrors.New("usage")

// run dispatches a subcommand. Bad invocations (unknown or missing command,
// undefined flag, bad flag value, missing required flag) return an error
// wrapping errUsage.
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "views":
		return cmdViews(rest, stdout, stderr)
	case "datasets":
		return cmdDatasets(rest, stdout, stderr)
	case "validate":
		return cmdValidate(rest, stdout, stderr)
	case "render":
		return cmdRender(rest, stdout, stderr)
	case "export":
		return cmdExport(rest, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "abxdash v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		return nil
	case "help", "--help", "-h":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n%s\n", cmd, usage)
		return errUsage
	}
}

// siteFlags are the content-source flags shared by every command.
type siteFlags struct {
	config   *string
	content  *string
	db       *string
	logLevel *string
}

func addSiteFlags(fs *flag.FlagSet, withDB bool) *siteFlags {
	f := &siteFlags{
		config:   fs.String("config", "", "Path to config file (default: ~/.config/abxdash/config.toml)"),
		content:  fs.String("content", "", "Directory holding datasets.toml, views.toml and chrome.toml"),
		logLevel: fs.String("log-level", "", "Log level: debug, info, warn, error"),
	}
	if withDB {
		f.db = fs.String("db", "", "Read datasets from this SQLite database")
	}
	return f
}

// open loads config, applies flag overrides and opens the site. Logs go to
// stderr so stdout stays machine-readable. The returned closer releases a
// configured log file and is non-nil whenever err is nil.
func (f *siteFlags) open(stderr io.Writer) (*site.Site, logrus.FieldLogger, io.Closer, error) {
	cfg, err := config.Load(*f.config)
	if err != nil {
		return nil, nil, nil, err
	}
	if *f.content != "" {
		cfg.Content.Dir = *f.content
	}
	if f.db != nil && *f.db != "" {
		cfg.Content.DB = *f.db
	}
	if *f.logLevel != "" {
		cfg.Log.Level = *f.logLevel
	}

	log, closer, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := site.Open(cfg, log)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}
	return s, log, closer, nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseFlags parses args, marking parse failures as usage errors. The flag
// package has already printed the problem and the defaults to stderr.
// flag.ErrHelp is returned as is.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || stderrors.Is(err, flag.ErrHelp) {
		return err
	}
	return errors.Wrap(errUsage, err.Error())
}

func checkFormat(format string) error {
	if format != "text" && format != "json" {
		return errors.Wrapf(errUsage, "unknown format %q (want text or json)", format)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	s, err := jsonutil.Pretty(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func newListTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// ────────────────────────────────────────────────────────────
// Commands
// ────────────────────────────────────────────────────────────

type viewSummary struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Default bool   `json:"default"`
	Widgets int    `json:"widgets"`
}

// cmdViews lists the tabs in catalog order.
func cmdViews(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("views", stderr)
	sf := addSiteFlags(fs, true)
	format := fs.String("format", "text", "Output format: text, json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	s, _, closer, err := sf.open(stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	var out []viewSummary
	for _, v := range s.Catalog.Views() {
		out = append(out, viewSummary{
			ID:      v.ID,
			Label:   v.DisplayLabel(),
			Default: v.ID == s.Catalog.Default(),
			Widgets: len(v.Widgets),
		})
	}
	if *format == "json" {
		return printJSON(stdout, out)
	}

	t := newListTable("#", "ID", "LABEL", "WIDGETS", "")
	for i, v := range out {
		mark := ""
		if v.Default {
			mark = "default"
		}
		t.Row(strconv.Itoa(i+1), v.ID, v.Label, strconv.Itoa(v.Widgets), mark)
	}
	fmt.Fprintln(stdout, t.String())
	return nil
}

type datasetSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Fields      []string `json:"fields"`
	Records     int      `json:"records"`
}

// cmdDatasets lists the registered datasets.
func cmdDatasets(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("datasets", stderr)
	sf := addSiteFlags(fs, true)
	format := fs.String("format", "text", "Output format: text, json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	s, _, closer, err := sf.open(stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	var out []datasetSummary
	for _, ds := range s.Registry.Datasets() {
		sum := datasetSummary{Name: ds.Name(), Description: ds.Description(), Records: ds.Len()}
		for _, f := range ds.Schema().Fields() {
			sum.Fields = append(sum.Fields, f.Name+":"+string(f.Kind))
		}
		out = append(out, sum)
	}
	if *format == "json" {
		return printJSON(stdout, out)
	}

	t := newListTable("NAME", "RECORDS", "FIELDS", "DESCRIPTION")
	for _, d := range out {
		t.Row(d.Name, strconv.Itoa(d.Records), fmt.Sprint(len(d.Fields)), d.Description)
	}
	fmt.Fprintln(stdout, t.String())
	return nil
}

// cmdValidate opens the site, which renders every view, and reports the
// outcome.
func cmdValidate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("validate", stderr)
	sf := addSiteFlags(fs, true)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	s, _, closer, err := sf.open(stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	fmt.Fprintf(stdout, "ok: %d views, %d datasets (%s)\n",
		len(s.Catalog.ListViews()), len(s.Registry.Names()), s.Source)
	return nil
}

// cmdRender prints one composed view.
func cmdRender(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("render", stderr)
	sf := addSiteFlags(fs, true)
	viewID := fs.String("view", "", "View to render (default: the catalog default)")
	format := fs.String("format", "text", "Output format: text, json")
	width := fs.Int("width", 100, "Text output width in columns")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	s, _, closer, err := sf.open(stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	var opts []tab.Option
	if *viewID != "" {
		if !s.Catalog.Has(*viewID) {
			if near := s.Catalog.Suggest(*viewID); near != "" {
				return errors.Wrapf(catalog.ErrUnknownView, "%q (did you mean %q?)", *viewID, near)
			}
			return errors.Wrapf(catalog.ErrUnknownView, "%q", *viewID)
		}
		opts = append(opts, tab.WithInitialView(*viewID))
	}
	ctrl, err := s.NewController(opts...)
	if err != nil {
		return err
	}

	p := s.Composer().Compose(ctrl.State())
	if *format == "json" {
		return printJSON(stdout, p)
	}
	fmt.Fprintln(stdout, tui.RenderPage(p, *width))
	return nil
}

// cmdExport writes every dataset to a SQLite database.
func cmdExport(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", stderr)
	sf := addSiteFlags(fs, false)
	dbPath := fs.String("db", "", "Destination SQLite database (required)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *dbPath == "" {
		fs.Usage()
		return errors.Wrap(errUsage, "--db is required")
	}
	s, log, closer, err := sf.open(stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := database.NewDBService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := s.Export(store); err != nil {
		return err
	}
	infos, err := store.ListDatasets()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"db": *dbPath, "datasets": len(infos)}).Info("export complete")
	for _, info := range infos {
		fmt.Fprintf(stdout, "%s: %d records\n", info.Name, info.Records)
	}
	return nil
}
