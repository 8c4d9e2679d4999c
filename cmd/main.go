package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/okian/mvp/internal/adapters/render"
	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/internal/adapters/roster"
	service "github.com/okian/mvp/internal/app"
	"github.com/okian/mvp/internal/config"
	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/pkg/logger"
	"github.com/okian/mvp/pkg/metrics"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	flagRoster   = "roster"
	flagFormat   = "format"
	flagLogLevel = "log-level"
	flagQuiet    = "quiet"
	flagLimit    = "limit"
)

// globalFlags builds the root flags. cli records parse state on the flag
// values, so every command tree gets its own set.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagRoster,
			Aliases: []string{"r"},
			Usage:   "Path to a YAML/JSON roster (default: built-in sample roster)",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "Output format [text, json, yaml]",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "Log level [debug, info, warn, error]",
		},
		&cli.BoolFlag{
			Name:    flagQuiet,
			Aliases: []string{"q"},
			Usage:   "Suppress the per-player score lines",
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args)
	stop()
	if err != nil {
		// Use stderr directly since the logger may not be initialized yet
		os.Stderr.WriteString("mvp: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// app carries the state shared by every command of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer
	cfg    *config.Config
	log    logger.Logger
}

func newApp(out, errOut io.Writer) *cli.Command {
	a := &app{out: out, errOut: errOut}
	return &cli.Command{
		Name:            "mvp",
		Usage:           "Rank basketball players by MVP score",
		Writer:          out,
		ErrWriter:       errOut,
		HideHelpCommand: true,
		Flags:           globalFlags(),
		Before:          a.before,
		Action:          a.rank,
		Commands: []*cli.Command{
			{
				Name:  "rank",
				Usage: "Print the full ranking",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    flagLimit,
						Aliases: []string{"n"},
						Usage:   "Maximum number of players to list (0 lists all)",
					},
				},
				Action: a.rank,
			},
			{
				Name:   "top",
				Usage:  "Print the MVP",
				Action: a.top,
			},
			{
				Name:      "show",
				Usage:     "Print one player's statistics and score breakdown",
				ArgsUsage: "<name or id>",
				Action:    a.show,
			},
			serveCmd(a),
		},
	}
}

// before layers configuration (defaults -> file -> env -> flags) and sets up logging.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := logger.InitWithWriter(a.errOut); err != nil {
		return ctx, err
	}
	a.log = logger.Get()

	cfg, err := config.Read(ctx)
	if err != nil {
		return ctx, fmt.Errorf("load config: %w", err)
	}
	if cmd.IsSet(flagRoster) {
		cfg.RosterFile = cmd.String(flagRoster)
	}
	if cmd.IsSet(flagFormat) {
		cfg.OutputFormat = strings.ToLower(cmd.String(flagFormat))
	}
	if cmd.IsSet(flagLogLevel) {
		cfg.LogLevel = cmd.String(flagLogLevel)
	}
	if cmd.Bool(flagQuiet) {
		cfg.Diagnostics = false
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}
	metrics.Configure(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
	)

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		a.log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	a.cfg = cfg
	return ctx, nil
}

// pipeline loads the configured roster and scores it.
func (a *app) pipeline(ctx context.Context) (*service.Service, error) {
	records, err := roster.Resolve(a.cfg.RosterFile)
	if err != nil {
		return nil, err
	}

	opts := []service.Option{service.WithLogger(a.log.Named("service"))}
	if a.cfg.Diagnostics {
		// Score lines only share stdout with the text format.
		diag := a.out
		if a.cfg.OutputFormat != config.FormatText {
			diag = a.errOut
		}
		opts = append(opts, service.WithDiagnostics(diag))
	}
	svc := service.New(opts...)
	if err := svc.Run(ctx, records); err != nil {
		return nil, err
	}
	return svc, nil
}

func (a *app) renderer() (*render.Renderer, error) {
	return render.New(a.cfg.OutputFormat)
}

func (a *app) rank(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.pipeline(ctx)
	if err != nil {
		return err
	}
	r, err := a.renderer()
	if err != nil {
		return err
	}
	entries, err := svc.Leaderboard(ctx, cmd.Int(flagLimit))
	if err != nil {
		return err
	}
	return r.Leaderboard(a.out, entries)
}

func (a *app) top(ctx context.Context, _ *cli.Command) error {
	svc, err := a.pipeline(ctx)
	if err != nil {
		return err
	}
	r, err := a.renderer()
	if err != nil {
		return err
	}
	mvp, err := svc.MVP(ctx)
	if err != nil {
		return err
	}
	return r.MVP(a.out, mvp)
}

func (a *app) show(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("show: a player name or id is required")
	}
	svc, err := a.pipeline(ctx)
	if err != nil {
		return err
	}
	rec := findPlayer(svc.Records(ctx), query)
	if rec == nil {
		return fmt.Errorf("player %q: %w", query, repository.ErrNotFound)
	}
	entry, breakdown, err := svc.Player(ctx, rec.ID)
	if err != nil {
		return err
	}
	r, err := a.renderer()
	if err != nil {
		return err
	}
	return r.Detail(a.out, entry, breakdown)
}

// findPlayer matches by id first, then by case-insensitive name.
func findPlayer(records []*model.Record, query string) *model.Record {
	for _, r := range records {
		if r.ID == query {
			return r
		}
	}
	for _, r := range records {
		if strings.EqualFold(r.Name, query) {
			return r
		}
	}
	return nil
}
