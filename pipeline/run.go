// Package pipeline drives resolution runs end to end: it loads layer
// documents, merges the hierarchy, resolves every token over a bounded
// worker group and renders the requested targets.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dtc/common"
	"dtc/emit"
	"dtc/emu"
	"dtc/load"
	"dtc/state"
	"dtc/tokens"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resolve")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = env.Cfg.Document.LayersDir
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = env.Cfg.Document.OutputDir
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.Jobs = int(cmd.Int("jobs"))
	env.Vars = parseVars(cmd.StringSlice("var"), log)
	env.Targets = parseTargets(cmd.StringSlice("to"), env.Cfg.Document.DefaultTarget, log)

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst), zap.Stringers("targets", env.Targets))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, env.Targets, log)
}

// parseTargets converts --to values into target formats, dropping unknown
// names with a warning. An empty result falls back to the configured
// default target.
func parseTargets(names []string, fallback common.TargetFmt, log *zap.Logger) []common.TargetFmt {
	targets := make([]common.TargetFmt, 0, len(names))
	for _, n := range names {
		t, err := common.ParseTargetFmt(n)
		if err != nil {
			log.Warn("Unknown output format requested, ignoring", zap.String("format", n), zap.Error(err))
			continue
		}
		if !slices.Contains(targets, t) {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		targets = append(targets, fallback)
	}
	return targets
}

// parseVars splits NAME=VALUE command line pairs.
func parseVars(pairs []string, log *zap.Logger) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	vars := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			log.Warn("Ignoring malformed variable definition", zap.String("definition", p))
			continue
		}
		vars[name] = value
	}
	return vars
}

// process runs the core pipeline independently of the CLI framework: load,
// merge, resolve, then render every requested target.
func process(ctx context.Context, src, dst string, targets []common.TargetFmt, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	set, err := loadLayers(src, env, log)
	if err != nil {
		return err
	}

	r, rc, err := buildContext(env, set, log)
	if err != nil {
		return err
	}

	runID := uuid.New().String()

	results, err := resolveAll(ctx, r, rc, env.Jobs)
	if err != nil {
		return fmt.Errorf("unable to resolve hierarchy: %w", err)
	}

	stats := r.CacheStats()
	log.Debug("Resolution finished",
		zap.String("run_id", runID), zap.Int("tokens", len(results)),
		zap.Int("cache_entries", stats.Entries), zap.Int("max_chain_depth", stats.MaxChainDepth))

	em := emit.NewEmitter(r.Registry(), r.Converter(), log)
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		values := Values{
			Name:   name,
			Target: target.String(),
			Date:   time.Now().Format("2006-01-02"),
			Layers: layerNames(set.Layers),
			Tokens: len(results),
			RunID:  runID,
		}
		outputName := buildOutputPath(dst, target, values, env)
		if err := writeTarget(em, target, results, outputName, env, log); err != nil {
			return err
		}
		if env.Rpt != nil {
			env.Rpt.Store(fmt.Sprintf("result-%s%s", runID, target.Ext()), outputName)
		}
		log.Info("Target written", zap.Stringer("target", target), zap.String("file", outputName))
	}
	return nil
}

// loadLayers reads the source: a directory of layer documents or a single
// layer file. An empty directory falls back to the built-in starter layer
// so a fresh project still produces output.
func loadLayers(src string, env *state.LocalEnv, log *zap.Logger) (*load.Set, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	var set *load.Set
	switch {
	case fi.Mode().IsDir():
		if set, err = load.LoadDir(src, log); err != nil {
			return nil, err
		}
	case fi.Mode().IsRegular():
		layer, err := load.LoadFile(src, log)
		if err != nil {
			return nil, err
		}
		set = &load.Set{Layers: []tokens.Layer{layer}, Vars: layer.Vars}
	default:
		return nil, fmt.Errorf("unexpected path mode for (%s)", src)
	}

	if len(set.Layers) == 0 {
		log.Warn("No layer documents found, using built-in starter layer", zap.String("source", src))
		layer, err := load.Parse(env.DefaultLayer, log)
		if err != nil {
			return nil, fmt.Errorf("failed to parse starter layer: %w", err)
		}
		set = &load.Set{Layers: []tokens.Layer{layer}, Vars: layer.Vars}
	}
	return set, nil
}

// buildContext assembles the resolution machinery from configuration: the
// dimension converter, the style catalog, the resolver and the context over
// the merged snapshot.
func buildContext(env *state.LocalEnv, set *load.Set, log *zap.Logger) (*tokens.Resolver, *tokens.Context, error) {
	rcfg := env.Cfg.Resolver

	base := emu.Dimension{}
	if rcfg.BaseSize != "" {
		var err error
		if base, err = emu.Parse(rcfg.BaseSize); err != nil {
			return nil, nil, fmt.Errorf("failed to parse base size %q: %w", rcfg.BaseSize, err)
		}
	}
	conv := emu.NewConverter(rcfg.DPI, base, log)
	reg := tokens.NewRegistry(conv, log)

	r := tokens.NewResolver(reg, conv, tokens.Options{
		MaxChainDepth: rcfg.MaxInheritanceDepth,
		MaxRefDepth:   rcfg.MaxReferenceDepth,
		Strict: tokens.StrictPolicy{
			MissingBase:     rcfg.Strict.MissingBase,
			MissingVariable: rcfg.Strict.MissingVariable,
			UnresolvedToken: rcfg.Strict.UnresolvedToken,
			DepthExceeded:   rcfg.Strict.DepthExceeded,
			CircularRef:     rcfg.Strict.CircularRef,
		},
	}, log)

	merged, prov := tokens.MergeHierarchy(set.Layers)
	snap := tokens.NewSnapshot(merged)
	log.Debug("Hierarchy merged", zap.Int("layers", len(set.Layers)), zap.Int("tokens", snap.Len()))

	// Variable precedence: configuration first, then layer defaults, then
	// the command line.
	vars := make(map[string]string, len(rcfg.Variables)+len(set.Vars)+len(env.Vars))
	for k, v := range rcfg.Variables {
		vars[k] = v
	}
	for k, v := range set.Vars {
		vars[k] = v
	}
	for k, v := range env.Vars {
		vars[k] = v
	}

	// Keep the merge decisions around for debugging.
	if env.Rpt != nil {
		if data, err := json.MarshalIndent(prov, "", "  "); err == nil {
			env.Rpt.StoreData("provenance.json", data)
		}
	}

	return r, tokens.NewContext(snap, vars), nil
}

// resolveAll resolves every snapshot token over a bounded worker group.
// Results come back in the snapshot's natural id order. Per-token failures
// never stop the batch; they aggregate into one error after every worker
// finishes.
func resolveAll(ctx context.Context, r *tokens.Resolver, rc *tokens.Context, jobs int) ([]*tokens.Resolved, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	ids := rc.Snap.IDs()
	results := make([]*tokens.Resolved, len(ids))

	var (
		mu   sync.Mutex
		errs error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Resolve(rc, id)
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("token %q: %w", id, err))
				mu.Unlock()
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}
	return results, nil
}

// writeTarget renders one target into its output file, honoring the
// overwrite setting.
func writeTarget(em *emit.Emitter, target common.TargetFmt, results []*tokens.Resolved, outputName string, env *state.LocalEnv, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := em.Emit(f, target, results); err != nil {
		f.Close()
		return fmt.Errorf("unable to generate output: %w", err)
	}
	return f.Close()
}

func layerNames(layers []tokens.Layer) []string {
	names := make([]string, 0, len(layers))
	for _, l := range layers {
		names = append(names, l.Name)
	}
	return names
}
