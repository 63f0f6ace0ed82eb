package cargo

import (
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// TempPackageName is the name of the throwaway package declaring the pinned dependency.
	TempPackageName = "cargo-diff-temp-pkg"
	// TempPackageVersion is the version of the throwaway package.
	TempPackageVersion = "0.0.0"
)

type manifest struct {
	Package      manifestPackage   `toml:"package"`
	Lib          manifestLib       `toml:"lib"`
	Workspace    manifestWorkspace `toml:"workspace"`
	Dependencies map[string]string `toml:"dependencies"`
}

type manifestPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// The lib target points at the manifest itself so the package needs no sources.
type manifestLib struct {
	Path string `toml:"path"`
}

// An empty workspace table keeps cargo from attaching the package to an enclosing workspace.
type manifestWorkspace struct {
	Members []string `toml:"members"`
}

// PinnedManifest renders a Cargo.toml with a single dependency pinned to exactly id.
func (r *Resolver) PinnedManifest(id domain.PackageID) (filename string, contents []byte, err error) {
	m := manifest{
		Package: manifestPackage{Name: TempPackageName, Version: TempPackageVersion},
		Lib:     manifestLib{Path: "./" + domain.ManifestFileName},
		Workspace: manifestWorkspace{
			Members: []string{},
		},
		Dependencies: map[string]string{id.Name: "=" + id.Version.String()},
	}

	contents, err = toml.Marshal(m)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, domain.ErrManifestRender.Error()), "package", id.String())
	}
	return domain.ManifestFileName, contents, nil
}
