package domain

import (
	"fmt"
	"strings"
)

// PackageID is an unambiguous reference to a published package version.
type PackageID struct {
	Name    string
	Version Version
}

// InvalidPackageIDError reports a package specification that is not of the form name:x.y.z.
type InvalidPackageIDError struct {
	Input string
	Err   error
}

func (e *InvalidPackageIDError) Error() string {
	return fmt.Sprintf("%s: %q; expected \"name:x.y.z\"", ErrInvalidPackageID.Error(), e.Input)
}

// Unwrap returns the version parse error, if any.
func (e *InvalidPackageIDError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidPackageID.
func (e *InvalidPackageIDError) Is(target error) bool {
	return target == ErrInvalidPackageID
}

// ParsePackageID parses "name:version", splitting at the first colon.
func ParsePackageID(s string) (PackageID, error) {
	name, rawVersion, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return PackageID{}, &InvalidPackageIDError{Input: s}
	}

	version, err := ParseVersion(rawVersion)
	if err != nil {
		return PackageID{}, &InvalidPackageIDError{Input: s, Err: err}
	}

	return PackageID{Name: name, Version: version}, nil
}

// String returns the canonical "name:version" form.
func (id PackageID) String() string {
	return id.Name + ":" + id.Version.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id PackageID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PackageID) UnmarshalText(text []byte) error {
	parsed, err := ParsePackageID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
