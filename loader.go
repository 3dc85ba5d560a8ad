package vitrine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoImages is returned when a gallery has nothing to show.
	ErrNoImages = errors.New("no images")
	// ErrNotImage is returned for a file whose content is not an image,
	// whatever its extension.
	ErrNotImage = errors.New("not an image")
)

// maxConcurrentDecodes bounds the goroutines DecodeImages runs at once.
const maxConcurrentDecodes = 8

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// ListImages returns the image files directly inside dir, sorted by name.
// The sorted order is the gallery order.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("list images in %s: %w", dir, ErrNoImages)
	}
	return paths, nil
}

// DecodeImages decodes every path concurrently and returns the images in the
// order of paths, whatever order the decodes finish in. The first failure
// cancels the rest and is returned; no partial result is returned.
func DecodeImages(ctx context.Context, paths []string) ([]image.Image, error) {
	imgs := make([]image.Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDecodes)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(path)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("decode %s: %w", path, ErrNotImage)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadTextures decodes paths and uploads each image as an ebiten texture, in
// the order of paths.
func LoadTextures(ctx context.Context, paths []string) ([]*ebiten.Image, error) {
	imgs, err := DecodeImages(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("load textures: %w", err)
	}
	textures := make([]*ebiten.Image, len(imgs))
	for i, img := range imgs {
		textures[i] = ebiten.NewImageFromImage(img)
	}
	Logger().Info("textures loaded", "count", len(textures))
	return textures, nil
}
