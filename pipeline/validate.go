package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"dtc/state"
	"dtc/tokens"
)

// Validate checks the layered hierarchy without writing any target: every
// token's chain is walked and findings are logged. With --tree each token's
// resolved form is printed to standard output as an indented tree.
func Validate(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("validate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = env.Cfg.Document.LayersDir
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	log.Info("Validation starting", zap.String("source", src))
	defer func(start time.Time) {
		log.Info("Validation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	set, err := loadLayers(src, env, log)
	if err != nil {
		return err
	}
	r, rc, err := buildContext(env, set, log)
	if err != nil {
		return err
	}

	issues := r.ValidateHierarchy(rc)
	for _, issue := range issues {
		log.Warn("Hierarchy issue",
			zap.String("token", issue.Token), zap.Stringer("kind", issue.Kind), zap.String("detail", issue.Detail))
	}

	if cmd.Bool("tree") {
		if err := printTrees(ctx, r, rc); err != nil {
			return err
		}
	}

	log.Info("Hierarchy checked",
		zap.Int("layers", len(set.Layers)), zap.Int("tokens", rc.Snap.Len()), zap.Int("issues", len(issues)))
	if len(issues) > 0 {
		return fmt.Errorf("hierarchy has %d issue(s)", len(issues))
	}
	return nil
}

// printTrees writes the chain tree of every resolvable token to standard
// output in natural id order. Tokens the strict policy rejects were already
// reported as issues and are skipped here.
func printTrees(ctx context.Context, r *tokens.Resolver, rc *tokens.Context) error {
	results, _ := r.ResolveAll(rc)
	for _, id := range rc.Snap.IDs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, ok := results[id]
		if !ok {
			continue
		}
		if _, err := os.Stdout.WriteString(res.String()); err != nil {
			return err
		}
	}
	return nil
}
