package ports

import "context"

// ColorExtractor derives a color role mapping from a wallpaper image.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type ColorExtractor interface {
	Extract(ctx context.Context, wallpaper string) (map[string]string, error)
}
