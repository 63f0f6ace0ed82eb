package ports

// Copier copies directory trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type Copier interface {
	// CopyDir recursively copies src to dst. dst must not exist.
	CopyDir(src, dst string) error
}
