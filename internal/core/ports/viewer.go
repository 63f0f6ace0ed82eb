package ports

import "context"

// Viewer displays the differences between two directory trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=viewer.go -destination=mocks/mock_viewer.go -package=mocks
type Viewer interface {
	// Compare shows the differences between dirs a and b.
	Compare(ctx context.Context, a, b string) error
}
