package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Updater drives the update flow for a server installation rooted at a
// working directory: pick a build, download its archive, swap the server
// directory.
type Updater struct {
	cfg    Config
	client *Client
	root   string
	logger *zap.Logger
}

// NewUpdater creates a new updater working under root.
func NewUpdater(cfg Config, client *Client, root string, logger *zap.Logger) *Updater {
	return &Updater{
		cfg:    cfg,
		client: client,
		root:   root,
		logger: logger,
	}
}

// ServerDir returns the path of the live server directory.
func (u *Updater) ServerDir() string {
	return filepath.Join(u.root, u.cfg.ServerDir)
}

// Update installs the requested build, or the latest one when wanted is
// negative. Already-installed and older-than-current builds are skipped; a
// previously downloaded archive is reused.
func (u *Updater) Update(ctx context.Context, wanted int) error {
	current := InstalledVersion(u.ServerDir())
	u.logger.Info("current artifact", zap.Int("version", current))

	var (
		chosen Artifact
		label  string
		err    error
	)

	if wanted <= -1 {
		label = "latest"
		chosen, err = u.client.LatestAvailable(ctx)
		if err != nil {
			return err
		}
		if chosen.Version < current {
			u.logger.Info("latest artifact is older than current",
				zap.Int("latest", chosen.Version),
				zap.Int("current", current),
			)
			return nil
		}
	} else {
		label = "requested"
		chosen, err = u.client.Find(ctx, wanted)
		if err != nil {
			return err
		}
	}

	if chosen.Version == current {
		u.logger.Info(label+" artifact is already installed", zap.Int("version", current))
		return nil
	}

	u.logger.Info(label+" artifact", zap.Int("version", chosen.Version), zap.String("url", chosen.URL))

	zipPath := filepath.Join(u.root, fmt.Sprintf("server_%d.zip", chosen.Version))
	if _, statErr := os.Stat(zipPath); statErr != nil {
		if err := u.client.Download(ctx, chosen, zipPath); err != nil {
			return err
		}
	} else {
		u.logger.Info("reusing downloaded archive", zap.String("path", zipPath))
	}

	if err := u.install(zipPath, chosen.Version, current); err != nil {
		return err
	}

	u.logger.Info("done", zap.Int("version", chosen.Version))
	return nil
}

// install moves the previous server directory aside and unpacks the new
// build in its place.
func (u *Updater) install(zipPath string, version, previous int) error {
	dir := u.ServerDir()

	if _, err := os.Stat(dir); err == nil {
		backup := fmt.Sprintf("%s_%d", dir, previous)
		if err := os.Rename(dir, backup); err != nil {
			return fmt.Errorf("back up server dir: %w", err)
		}
		u.logger.Info("kept previous server", zap.String("path", backup))
	}

	if err := extract(zipPath, dir); err != nil {
		return err
	}

	if err := writeMarker(dir, version); err != nil {
		return err
	}

	// Just make sure the new version is correct
	if got := InstalledVersion(dir); got != version {
		u.logger.Warn("installed version mismatch",
			zap.Int("expected", version),
			zap.Int("got", got),
		)
	}

	return nil
}
