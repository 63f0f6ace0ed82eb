package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reviewdeps/internal/adapters/fs"
	"go.trai.ch/reviewdeps/internal/adapters/lockfile"
	"go.trai.ch/reviewdeps/internal/app"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/reviewdeps/internal/core/ports/mocks"
	"go.trai.ch/reviewdeps/internal/engine/fetcher"
	"go.trai.ch/reviewdeps/internal/engine/snapshot"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const registrySource = "registry+https://github.com/rust-lang/crates.io-index"

type fixture struct {
	resolver *mocks.MockResolver
	runner   *mocks.MockCommandRunner
	viewer   *mocks.MockViewer
	copier   *mocks.MockCopier
	logger   *mocks.MockLogger
}

// newApp builds an App over mocks. realCopier selects the filesystem copier.
func newApp(t *testing.T, realCopier bool) (*app.App, *fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		resolver: mocks.NewMockResolver(ctrl),
		runner:   mocks.NewMockCommandRunner(ctrl),
		viewer:   mocks.NewMockViewer(ctrl),
		copier:   mocks.NewMockCopier(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	cfg := domain.DefaultConfig()
	var copier ports.Copier = f.copier
	if realCopier {
		copier = fs.NewCopier()
	}

	a := app.New(
		cfg,
		f.logger,
		f.resolver,
		fetcher.New(f.resolver),
		snapshot.NewExtractor(f.logger, cfg),
		f.runner,
		f.viewer,
		copier,
		lockfile.NewManager(f.logger),
	).WithOutput(io.Discard, io.Discard)

	return a, f
}

func mustID(t *testing.T, s string) domain.PackageID {
	t.Helper()
	id, err := domain.ParsePackageID(s)
	require.NoError(t, err)
	return id
}

func registryPkg(name, version, dir string) domain.ResolvedPackage {
	return domain.ResolvedPackage{
		Name:         name,
		Version:      version,
		ID:           registrySource + "#" + name + "@" + version,
		Source:       registrySource,
		ManifestPath: filepath.Join(dir, "Cargo.toml"),
	}
}

// sourceDir creates a fake unpacked package directory.
func sourceDir(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\n"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("// "+name+"\n"), domain.FilePerm))
	return dir
}

// expectFetch sets up the resolver for one pinned fetch resolving to dir.
func expectFetch(f *fixture, id domain.PackageID, dir string) {
	f.resolver.EXPECT().PinnedManifest(id).Return("Cargo.toml", []byte("[dependencies]\n"), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&domain.Metadata{
		Packages: []domain.ResolvedPackage{registryPkg(id.Name, id.Version.String(), dir)},
	}, nil)
}

func TestApp_Diff_RunsViewer(t *testing.T) {
	a, f := newApp(t, false)
	first, second := mustID(t, "rand:0.6.0"), mustID(t, "rand:0.6.1")

	expectFetch(f, first, "/registry/rand-0.6.0")
	expectFetch(f, second, "/registry/rand-0.6.1")
	f.viewer.EXPECT().Compare(gomock.Any(), "/registry/rand-0.6.0", "/registry/rand-0.6.1").Return(nil)

	require.NoError(t, a.Diff(t.Context(), first, second, app.DiffOptions{}))
}

func TestApp_Diff_Destination(t *testing.T) {
	a, f := newApp(t, true)
	first, second := mustID(t, "rand:0.6.0"), mustID(t, "rand:0.6.1")
	registry := t.TempDir()

	expectFetch(f, first, sourceDir(t, registry, "rand-0.6.0"))
	expectFetch(f, second, sourceDir(t, registry, "rand-0.6.1"))

	dest := filepath.Join(t.TempDir(), "review")
	require.NoError(t, a.Diff(t.Context(), first, second, app.DiffOptions{Destination: dest}))

	assert.FileExists(t, filepath.Join(dest, "rand:0.6.0", "src", "lib.rs"))
	assert.FileExists(t, filepath.Join(dest, "rand:0.6.1", "src", "lib.rs"))
}

func TestApp_Diff_FetchFails(t *testing.T) {
	a, f := newApp(t, false)
	first := mustID(t, "rand:0.6.0")

	f.resolver.EXPECT().PinnedManifest(first).Return("Cargo.toml", []byte("[dependencies]\n"), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, domain.ErrResolutionFailed)

	err := a.Diff(t.Context(), first, mustID(t, "rand:0.6.1"), app.DiffOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrResolutionFailed.Error())
}

func TestApp_Current(t *testing.T) {
	a, f := newApp(t, false)
	dest := filepath.Join(t.TempDir(), "deps")

	f.resolver.EXPECT().Resolve(gomock.Any(), "app/Cargo.toml").Return(&domain.Metadata{
		Packages: []domain.ResolvedPackage{
			{Name: "my-app", Version: "0.1.0", ID: "path+file:///src/app#0.1.0", ManifestPath: "/src/app/Cargo.toml"},
			registryPkg("rand", "0.6.1", "/registry/rand-0.6.1"),
			registryPkg("libc", "0.2.44", "/registry/libc-0.2.44"),
		},
		WorkspaceRoot: "/src/app",
	}, nil)
	f.logger.EXPECT().Warn("Skipping package `my-app`: not a crates.io dependency")
	f.copier.EXPECT().CopyDir("/registry/rand-0.6.1", filepath.Join(dest, "rand:0.6.1")).Return(nil)
	f.copier.EXPECT().CopyDir("/registry/libc-0.2.44", filepath.Join(dest, "libc:0.2.44")).Return(nil)

	require.NoError(t, a.Current(t.Context(), app.CurrentOptions{Destination: dest, ManifestPath: "app/Cargo.toml"}))
	assert.DirExists(t, dest)
}

func TestApp_Current_RequiresDestination(t *testing.T) {
	a, _ := newApp(t, false)

	err := a.Current(t.Context(), app.CurrentOptions{})
	require.ErrorIs(t, err, domain.ErrDestinationRequired)
}

func TestApp_Current_CopyFails(t *testing.T) {
	a, f := newApp(t, false)

	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages: []domain.ResolvedPackage{registryPkg("rand", "0.6.1", "/registry/rand-0.6.1")},
	}, nil)
	f.copier.EXPECT().CopyDir(gomock.Any(), gomock.Any()).Return(domain.ErrDestinationExists)

	err := a.Current(t.Context(), app.CurrentOptions{Destination: t.TempDir()})
	require.ErrorIs(t, err, domain.ErrDestinationExists)
}

const originalLock = "# @generated by Cargo\n[[package]]\nname = \"rand\"\nversion = \"0.6.0\"\n"

// workspace creates a project root with a lock file.
func workspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cargo.lock"), []byte(originalLock), domain.FilePerm))
	return root
}

func assertLockRestored(t *testing.T, root string) {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, "Cargo.lock"))
	require.NoError(t, err)
	assert.Equal(t, originalLock, string(content), "lock file must be byte-identical")
	assert.NoFileExists(t, filepath.Join(root, "Cargo.lock.back"))
}

// rewriteLock simulates the update command rewriting the lock file.
func rewriteLock(root string, err error) func(context.Context, domain.Command, io.Writer, io.Writer) error {
	return func(context.Context, domain.Command, io.Writer, io.Writer) error {
		if writeErr := os.WriteFile(filepath.Join(root, "Cargo.lock"), []byte("updated"), domain.FilePerm); writeErr != nil {
			return writeErr
		}
		return err
	}
}

func TestApp_UpdateDiff_Destination(t *testing.T) {
	a, f := newApp(t, false)
	root := workspace(t)
	dest := filepath.Join(t.TempDir(), "review")

	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages: []domain.ResolvedPackage{
			registryPkg("rand", "0.6.0", "/registry/rand-0.6.0"),
			registryPkg("libc", "0.2.40", "/registry/libc-0.2.40"),
			registryPkg("serde", "1.0.80", "/registry/serde-1.0.80"),
		},
		WorkspaceRoot: root,
	}, nil)
	f.runner.EXPECT().Run(gomock.Any(), domain.Command{Name: "cargo", Args: []string{"update"}}, gomock.Any(), gomock.Any()).
		DoAndReturn(rewriteLock(root, nil))
	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages: []domain.ResolvedPackage{
			registryPkg("rand", "0.6.1", "/registry/rand-0.6.1"),
			registryPkg("serde", "1.0.80", "/registry/serde-1.0.80"),
			registryPkg("rand_core", "0.3.0", "/registry/rand_core-0.3.0"),
		},
		WorkspaceRoot: root,
	}, nil)

	f.copier.EXPECT().CopyDir("/registry/libc-0.2.40", filepath.Join(dest, "before", "libc:0.2")).Return(nil)
	f.copier.EXPECT().CopyDir("/registry/rand_core-0.3.0", filepath.Join(dest, "after", "rand_core:0.3")).Return(nil)
	f.copier.EXPECT().CopyDir("/registry/rand-0.6.0", filepath.Join(dest, "before", "rand:0.6")).Return(nil)
	f.copier.EXPECT().CopyDir("/registry/rand-0.6.1", filepath.Join(dest, "after", "rand:0.6")).Return(nil)

	f.logger.EXPECT().Info("- libc:0.2")
	f.logger.EXPECT().Info("+ rand_core:0.3")
	f.logger.EXPECT().Info("~ rand:0.6")

	diff, err := a.UpdateDiff(t.Context(), app.UpdateOptions{Destination: dest})
	require.NoError(t, err)
	assert.Equal(t, domain.SnapshotDiff{
		{Bucket: "libc:0.2", Before: "/registry/libc-0.2.40"},
		{Bucket: "rand_core:0.3", After: "/registry/rand_core-0.3.0"},
		{Bucket: "rand:0.6", Before: "/registry/rand-0.6.0", After: "/registry/rand-0.6.1"},
	}, diff)

	assert.DirExists(t, filepath.Join(dest, "before"))
	assert.DirExists(t, filepath.Join(dest, "after"))
	assertLockRestored(t, root)
}

func TestApp_UpdateDiff_RunsViewerOnTemporaryTree(t *testing.T) {
	a, f := newApp(t, true)
	root := workspace(t)
	registry := t.TempDir()
	oldDir := sourceDir(t, registry, "rand-0.6.0")
	newDir := sourceDir(t, registry, "rand-0.6.1")

	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages:      []domain.ResolvedPackage{registryPkg("rand", "0.6.0", oldDir)},
		WorkspaceRoot: root,
	}, nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rewriteLock(root, nil))
	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages:      []domain.ResolvedPackage{registryPkg("rand", "0.6.1", newDir)},
		WorkspaceRoot: root,
	}, nil)
	f.logger.EXPECT().Info("~ rand:0.6")

	var tree string
	f.viewer.EXPECT().Compare(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, before, after string) error {
			assert.Equal(t, "before", filepath.Base(before))
			assert.Equal(t, "after", filepath.Base(after))
			assert.FileExists(t, filepath.Join(before, "rand:0.6", "src", "lib.rs"))
			assert.FileExists(t, filepath.Join(after, "rand:0.6", "src", "lib.rs"))
			tree = filepath.Dir(before)
			return nil
		})

	_, err := a.UpdateDiff(t.Context(), app.UpdateOptions{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(tree), domain.FetchDirPrefix))
	assert.NoDirExists(t, tree, "temporary tree must be removed")
	assertLockRestored(t, root)
}

func TestApp_UpdateDiff_UpdateFails(t *testing.T) {
	a, f := newApp(t, false)
	root := workspace(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages:      []domain.ResolvedPackage{registryPkg("rand", "0.6.0", "/registry/rand-0.6.0")},
		WorkspaceRoot: root,
	}, nil)
	exit := zerr.Wrap(&domain.ExitError{Code: 101}, domain.ErrCommandFailed.Error())
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rewriteLock(root, exit))

	_, err := a.UpdateDiff(t.Context(), app.UpdateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUpdateFailed.Error())
	assertLockRestored(t, root)
}

func TestApp_UpdateDiff_CopyFailsRestoresLock(t *testing.T) {
	a, f := newApp(t, false)
	root := workspace(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{
		Packages:      []domain.ResolvedPackage{registryPkg("rand", "0.6.0", "/registry/rand-0.6.0")},
		WorkspaceRoot: root,
	}, nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rewriteLock(root, nil))
	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{WorkspaceRoot: root}, nil)
	f.copier.EXPECT().CopyDir(gomock.Any(), gomock.Any()).Return(domain.ErrCopyFailed)

	_, err := a.UpdateDiff(t.Context(), app.UpdateOptions{Destination: t.TempDir()})
	require.ErrorIs(t, err, domain.ErrCopyFailed)
	assertLockRestored(t, root)
}

func TestApp_UpdateDiff_PassesArguments(t *testing.T) {
	a, f := newApp(t, false)
	root := workspace(t)
	meta := &domain.Metadata{WorkspaceRoot: root}

	f.resolver.EXPECT().Resolve(gomock.Any(), "crates/core/Cargo.toml").Return(meta, nil).Times(2)
	f.runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "cargo",
		Args: []string{"update", "--manifest-path", "crates/core/Cargo.toml", "-p", "rand", "--precise", "0.6.1"},
	}, gomock.Any(), gomock.Any()).Return(nil)
	f.logger.EXPECT().Info("No dependencies changed")

	diff, err := a.UpdateDiff(t.Context(), app.UpdateOptions{
		Destination:  t.TempDir(),
		ManifestPath: "crates/core/Cargo.toml",
		Args:         []string{"-p", "rand", "--precise", "0.6.1"},
	})
	require.NoError(t, err)
	assert.Empty(t, diff)
	assertLockRestored(t, root)
}

func TestApp_UpdateDiff_MissingLockfile(t *testing.T) {
	a, f := newApp(t, false)

	f.resolver.EXPECT().Resolve(gomock.Any(), "").Return(&domain.Metadata{WorkspaceRoot: t.TempDir()}, nil)

	_, err := a.UpdateDiff(t.Context(), app.UpdateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLockfileRead.Error())
}
