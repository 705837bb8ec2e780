package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/models"
)

// fileAssetStorage is the filesystem implementation of [AssetStorage].
// Each asset category gets its own sub-directory under the configured root;
// files inside an area are addressed only by their generated opaque name.
type fileAssetStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileAssetStorage constructs an [AssetStorage] rooted at cfg.Dir and
// creates one sub-directory per asset category up front.
func NewFileAssetStorage(cfg config.Assets, logger *logger.Logger) (AssetStorage, error) {
	for _, category := range []models.AssetCategory{models.CategoryDocument, models.CategoryResidenceProof} {
		dir := filepath.Join(cfg.Dir, string(category))
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("error creating asset storage area %q: %w", dir, err)
		}
	}

	logger.Debug().Str("root", cfg.Dir).Msg("asset storage areas ready")
	return &fileAssetStorage{
		root:   cfg.Dir,
		logger: logger,
	}, nil
}

// Save implements [AssetStorage].
func (s *fileAssetStorage) Save(ctx context.Context, category models.AssetCategory, name string, content []byte) error {
	path, err := s.resolve(category, name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0o640); err != nil {
		return fmt.Errorf("error writing asset file: %w", err)
	}

	return nil
}

// Open implements [AssetStorage].
func (s *fileAssetStorage) Open(ctx context.Context, category models.AssetCategory, name string) (io.ReadCloser, error) {
	path, err := s.resolve(category, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetFileNotFound
		}
		return nil, fmt.Errorf("error opening asset file: %w", err)
	}

	return f, nil
}

// Exists implements [AssetStorage].
func (s *fileAssetStorage) Exists(ctx context.Context, category models.AssetCategory, name string) (bool, error) {
	path, err := s.resolve(category, name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error checking asset file: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// Remove implements [AssetStorage]. Removing an absent file is not an error
// so that every rejection path can call Remove unconditionally.
func (s *fileAssetStorage) Remove(ctx context.Context, category models.AssetCategory, name string) error {
	path, err := s.resolve(category, name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing asset file: %w", err)
	}

	return nil
}

// List implements [AssetStorage]. It is used only by the reconciliation
// sweep; no listing capability is exposed to end users.
func (s *fileAssetStorage) List(ctx context.Context, category models.AssetCategory) ([]models.StoredAsset, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, string(category)))
	if err != nil {
		return nil, fmt.Errorf("error listing asset storage area: %w", err)
	}

	assets := make([]models.StoredAsset, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("error reading asset file info: %w", err)
		}

		assets = append(assets, models.StoredAsset{
			Name:    entry.Name(),
			ModTime: info.ModTime(),
		})
	}

	return assets, nil
}

// resolve maps a (category, name) pair to an on-disk path. The name must be
// a bare file name: anything carrying a path separator or a parent
// reference is rejected before touching the filesystem.
func (s *fileAssetStorage) resolve(category models.AssetCategory, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidAssetName
	}

	return filepath.Join(s.root, string(category), name), nil
}
