package entigen

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/syssam/entigen/compiler/gen"
	"github.com/syssam/entigen/config"
	"github.com/syssam/entigen/dialect"
	"github.com/syssam/entigen/dialect/sql"
)

// Generator drives one end-to-end run: introspect the configured schema,
// emit one class file per table, and optionally dump the table structure
// as a SQL script. Construct it with New and chain the With* options.
type Generator struct {
	cfg *config.Config
	log zerolog.Logger
	now func() time.Time
}

// New creates a Generator for the given configuration. Logging is off and
// the clock is the wall clock until overridden.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, log: zerolog.Nop(), now: time.Now}
}

// WithLogger sets the logger used for per-table progress and warnings.
func (g *Generator) WithLogger(log zerolog.Logger) *Generator {
	g.log = log
	return g
}

// WithClock overrides the clock stamped into the SQL structure script.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Report aggregates the outcome of a run. A run that returns a nil error
// may still carry write failures; callers decide how strict to be.
type Report struct {
	// Files holds the class file names written, in table order.
	Files []string
	// Skipped holds the names of zero-column tables, reported and passed
	// over without producing a file.
	Skipped []string
	// Warnings holds the non-fatal type-mapping warnings.
	Warnings []gen.Warning
	// WriteErrors holds the per-table write failures.
	WriteErrors []*WriteError
}

// Summary renders the report as a single log-friendly line.
func (r *Report) Summary() string {
	return fmt.Sprintf("generated %d files (%d skipped, %d warnings, %d write failures)",
		len(r.Files), len(r.Skipped), len(r.Warnings), len(r.WriteErrors))
}

// Run opens a connection with the configured DSN, verifies it, and
// generates all output. The connection is closed before Run returns.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	drv, err := sql.Open(dialect.MySQL, g.cfg.DSN())
	if err != nil {
		return nil, sql.NewConnectionError(g.cfg.Database.Database, err)
	}
	defer drv.Close()
	if err := drv.Ping(ctx); err != nil {
		return nil, err
	}
	return g.generate(ctx, drv)
}

// RunDB generates against an existing connection pool. The caller keeps
// ownership of db; no ping is issued.
func (g *Generator) RunDB(ctx context.Context, db *stdsql.DB) (*Report, error) {
	return g.generate(ctx, sql.OpenDB(dialect.MySQL, db))
}

func (g *Generator) generate(ctx context.Context, drv *sql.Driver) (*Report, error) {
	insp := sql.NewInspector(drv, g.cfg.Database.Database)
	tables, err := insp.Tables(ctx)
	if err != nil {
		return nil, err
	}
	g.log.Info().
		Str("database", g.cfg.Database.Database).
		Int("tables", len(tables)).
		Msg("introspected schema")

	emitter := gen.NewEmitter(gen.Options{
		Namespace:  g.cfg.Generator.Namespace,
		Attributes: attributesOf(g.cfg.Attributes),
	})
	writer := gen.NewWriter(g.cfg.Generator.OutputDirectory)

	report := &Report{}
	for _, name := range tables {
		tbl, err := insp.Table(ctx, name)
		if err != nil {
			return nil, err
		}
		if len(tbl.Columns) == 0 {
			g.log.Warn().Str("table", name).Msg("table has no columns, skipping")
			report.Skipped = append(report.Skipped, name)
			continue
		}
		f, warnings, err := emitter.Emit(tbl)
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			g.log.Warn().Str("table", w.Table).Str("column", w.Column).Msg(w.Message)
		}
		report.Warnings = append(report.Warnings, warnings...)
		if err := writer.Write(f.Name, f.Content); err != nil {
			werr := NewWriteError(name, filepath.Join(writer.Dir(), f.Name), err)
			g.log.Error().Err(werr).Str("table", name).Msg("write failed")
			report.WriteErrors = append(report.WriteErrors, werr)
			continue
		}
		g.log.Info().Str("table", name).Str("file", f.Name).Msg("generated entity class")
		report.Files = append(report.Files, f.Name)
	}

	if g.cfg.Generator.GenerateSQL {
		script, err := g.structureScript(ctx, insp, tables)
		if err != nil {
			return nil, err
		}
		name := g.cfg.Generator.SQLOutputFile
		if name == "" {
			name = config.DefaultSQLOutputFile
		}
		if err := writer.Write(name, script); err != nil {
			werr := NewWriteError("", filepath.Join(writer.Dir(), name), err)
			g.log.Error().Err(werr).Msg("write failed")
			report.WriteErrors = append(report.WriteErrors, werr)
		} else {
			g.log.Info().Str("file", name).Msg("generated structure script")
		}
	}

	g.log.Info().Msg(report.Summary())
	return report, nil
}

// structureScript renders the DROP-and-CREATE dump for every table, framed
// so it can be replayed against a live server without ordering issues.
func (g *Generator) structureScript(ctx context.Context, insp *sql.Inspector, tables []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Database structure script\n")
	fmt.Fprintf(&b, "-- Generated on %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "-- Database: %s\n\n", g.cfg.Database.Database)
	b.WriteString("SET FOREIGN_KEY_CHECKS=0;\n")
	b.WriteString("SET SQL_MODE = 'NO_AUTO_VALUE_ON_ZERO';\n")
	b.WriteString("SET NAMES utf8mb4;\n\n")

	for _, name := range tables {
		stmt, err := insp.CreateStatement(ctx, name)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "-- Table structure for table `%s`\n", name)
		fmt.Fprintf(&b, "DROP TABLE IF EXISTS `%s`;\n", name)
		b.WriteString(stmt)
		b.WriteString(";\n\n")
	}

	b.WriteString("SET FOREIGN_KEY_CHECKS=1;\n")
	return b.String(), nil
}

// attributesOf translates the configuration toggles into emitter toggles.
func attributesOf(a config.Attributes) gen.Attributes {
	return gen.Attributes{
		Key:               a.UseKey,
		Required:          a.UseRequired,
		Column:            a.UseColumn,
		MaxLength:         a.UseMaxLength,
		Table:             a.UseTable,
		DatabaseGenerated: a.UseDatabaseGenerated,
	}
}
