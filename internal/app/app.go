// Package app implements the review workflows of cargo-review-deps.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/reviewdeps/internal/engine/fetcher"
	"go.trai.ch/reviewdeps/internal/engine/snapshot"
	"go.trai.ch/reviewdeps/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	cfg       *domain.Config
	logger    ports.Logger
	resolver  ports.Resolver
	fetcher   *fetcher.Fetcher
	extractor *snapshot.Extractor
	runner    ports.CommandRunner
	viewer    ports.Viewer
	copier    ports.Copier
	locks     ports.LockManager
	stdout    io.Writer
	stderr    io.Writer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	log ports.Logger,
	resolver ports.Resolver,
	f *fetcher.Fetcher,
	extractor *snapshot.Extractor,
	runner ports.CommandRunner,
	viewer ports.Viewer,
	copier ports.Copier,
	locks ports.LockManager,
) *App {
	return &App{
		cfg:       cfg,
		logger:    log,
		resolver:  resolver,
		fetcher:   f,
		extractor: extractor,
		runner:    runner,
		viewer:    viewer,
		copier:    copier,
		locks:     locks,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithOutput sets the writers the update command streams to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// DiffOptions configures Diff.
type DiffOptions struct {
	// Destination receives copies of both packages instead of running the viewer.
	Destination string
}

// Diff compares the sources of two published package versions.
func (a *App) Diff(ctx context.Context, first, second domain.PackageID, opts DiffOptions) error {
	firstDir, err := a.fetcher.Fetch(ctx, first)
	if err != nil {
		return err
	}
	secondDir, err := a.fetcher.Fetch(ctx, second)
	if err != nil {
		return err
	}

	if opts.Destination == "" {
		return a.viewer.Compare(ctx, firstDir, secondDir)
	}

	if err := createDir(opts.Destination); err != nil {
		return err
	}
	return a.copyAll(ctx, []copyJob{
		{src: firstDir, dst: filepath.Join(opts.Destination, first.String())},
		{src: secondDir, dst: filepath.Join(opts.Destination, second.String())},
	})
}

// CurrentOptions configures Current.
type CurrentOptions struct {
	// Destination receives one directory per registry dependency.
	Destination string

	// ManifestPath selects the project; empty means the current directory.
	ManifestPath string
}

// Current copies the sources of every registry dependency of the project to the destination.
func (a *App) Current(ctx context.Context, opts CurrentOptions) error {
	if opts.Destination == "" {
		return domain.ErrDestinationRequired
	}

	meta, err := a.resolver.Resolve(ctx, opts.ManifestPath)
	if err != nil {
		return err
	}

	pkgs := a.extractor.RegistryPackages(meta)
	jobs := make([]copyJob, 0, len(pkgs))
	for i := range pkgs {
		dir, err := pkgs[i].Dir()
		if err != nil {
			return err
		}
		name := pkgs[i].Name + ":" + pkgs[i].Version
		jobs = append(jobs, copyJob{src: dir, dst: filepath.Join(opts.Destination, name)})
	}

	if err := createDir(opts.Destination); err != nil {
		return err
	}
	return a.copyAll(ctx, jobs)
}

// UpdateOptions configures UpdateDiff.
type UpdateOptions struct {
	// Destination keeps the before/after trees instead of running the viewer.
	Destination string

	// ManifestPath selects the project; empty means the current directory.
	ManifestPath string

	// Args are passed through to the update command.
	Args []string
}

// UpdateDiff runs the update command, records which dependencies it changed
// and restores the original lock file.
func (a *App) UpdateDiff(ctx context.Context, opts UpdateOptions) (domain.SnapshotDiff, error) {
	meta, err := a.resolver.Resolve(ctx, opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	before, err := a.extractor.Extract(meta)
	if err != nil {
		return nil, err
	}

	guard, err := a.locks.Acquire(filepath.Join(meta.WorkspaceRoot, a.cfg.Lockfile))
	if err != nil {
		return nil, err
	}
	defer guard.Close()

	if err := a.runner.Run(ctx, a.updateCommand(opts), a.stdout, a.stderr); err != nil {
		return nil, zerr.Wrap(err, domain.ErrUpdateFailed.Error())
	}

	meta, err = a.resolver.Resolve(ctx, opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	after, err := a.extractor.Extract(meta)
	if err != nil {
		return nil, err
	}

	diff := domain.DiffSnapshots(before, after)
	if err := a.materialize(ctx, diff, opts.Destination); err != nil {
		return nil, err
	}

	a.summarize(diff)

	if err := guard.Restore(); err != nil {
		return nil, err
	}
	return diff, nil
}

func (a *App) updateCommand(opts UpdateOptions) domain.Command {
	args := make([]string, 0, len(opts.Args)+3)
	args = append(args, "update")
	if opts.ManifestPath != "" {
		args = append(args, "--manifest-path", opts.ManifestPath)
	}
	args = append(args, opts.Args...)
	return domain.Command{Name: a.cfg.Cargo, Args: args}
}

// materialize copies both sides of diff into dest/before and dest/after.
// Without a destination it uses a temporary directory and runs the viewer on it.
func (a *App) materialize(ctx context.Context, diff domain.SnapshotDiff, dest string) error {
	showDiff := dest == ""
	if showDiff {
		tmp, err := os.MkdirTemp("", domain.FetchDirPrefix)
		if err != nil {
			return zerr.Wrap(err, domain.ErrWorkspaceCreate.Error())
		}
		defer func() { _ = os.RemoveAll(tmp) }()
		dest = tmp
	}

	beforeRoot := filepath.Join(dest, domain.BeforeDirName)
	afterRoot := filepath.Join(dest, domain.AfterDirName)
	for _, dir := range []string{beforeRoot, afterRoot} {
		if err := createDir(dir); err != nil {
			return err
		}
	}

	jobs := make([]copyJob, 0, len(diff)*2)
	for _, d := range diff {
		if d.Before != "" {
			jobs = append(jobs, copyJob{src: d.Before, dst: filepath.Join(beforeRoot, d.Bucket)})
		}
		if d.After != "" {
			jobs = append(jobs, copyJob{src: d.After, dst: filepath.Join(afterRoot, d.Bucket)})
		}
	}
	if err := a.copyAll(ctx, jobs); err != nil {
		return err
	}

	if showDiff {
		return a.viewer.Compare(ctx, beforeRoot, afterRoot)
	}
	return nil
}

func (a *App) summarize(diff domain.SnapshotDiff) {
	if len(diff) == 0 {
		a.logger.Info("No dependencies changed")
		return
	}
	for _, d := range diff {
		switch {
		case d.IsAdded():
			a.logger.Info(fmt.Sprintf("%s %s", style.Plus, d.Bucket))
		case d.IsRemoved():
			a.logger.Info(fmt.Sprintf("%s %s", style.Minus, d.Bucket))
		default:
			a.logger.Info(fmt.Sprintf("%s %s", style.Tilde, d.Bucket))
		}
	}
}

type copyJob struct {
	src string
	dst string
}

// copyAll runs the copies in parallel. Targets are distinct, so jobs do not interfere.
func (a *App) copyAll(ctx context.Context, jobs []copyJob) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.copier.CopyDir(job.src, job.dst)
		})
	}

	return g.Wait()
}

func createDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDestinationCreate.Error()), "path", path)
	}
	return nil
}
