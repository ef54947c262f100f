package devmode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Marker files identifying the two install kinds.
const (
	clientMarker = "CitizenFX.ini"
	serverMarker = "FXServer.exe"
)

// ErrNotDetected is returned when the target folder is neither a FiveM
// client data folder nor an FXServer install.
var ErrNotDetected = errors.New("FiveM/FXServer not detected")

// Service toggles an install in and out of dev mode by disabling its
// signature-checking component.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new devmode service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Toggle flips dev mode for the install at path: activates it when off,
// restores the original state when on. The install kind is detected from the
// folder contents.
func (s *Service) Toggle(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a valid folder: %s", path)
	}

	if exists(filepath.Join(abs, clientMarker)) {
		return s.toggleClient(abs)
	}
	if exists(filepath.Join(abs, serverMarker)) {
		return s.toggleServer(abs)
	}

	return ErrNotDetected
}

// toggleServer renames svadhesive.dll aside and drops it from
// components.json, or puts both back.
func (s *Service) toggleServer(dir string) error {
	adhesive := filepath.Join(dir, "svadhesive.dll")
	adhesiveBak := filepath.Join(dir, "xsvadhesive.dll")
	components := filepath.Join(dir, "components.json")
	componentsBak := components + ".bak"

	if exists(adhesiveBak) {
		if err := s.rename(adhesiveBak, adhesive); err != nil {
			return err
		}
		if err := s.restoreComponents(componentsBak, components); err != nil {
			return err
		}
		s.logger.Info("server: back to normal")
		return nil
	}

	if err := s.rename(adhesive, adhesiveBak); err != nil {
		return err
	}
	if err := s.disableComponent(components, componentsBak, "svadhesive"); err != nil {
		return err
	}
	s.logger.Info("server: activated")
	return nil
}

// toggleClient does the same for adhesive.dll, plus the two marker files
// that keep the client from re-bootstrapping itself.
func (s *Service) toggleClient(dir string) error {
	adhesive := filepath.Join(dir, "adhesive.dll")
	adhesiveBak := filepath.Join(dir, "xadhesive.dll")
	formaldev := filepath.Join(dir, "FiveM.exe.formaldev")
	nobootstrap := filepath.Join(dir, "nobootstrap.txt")
	components := filepath.Join(dir, "components.json")
	componentsBak := components + ".bak"

	active := exists(adhesiveBak) || exists(formaldev) || exists(nobootstrap)

	if active {
		if err := s.rename(adhesiveBak, adhesive); err != nil {
			return err
		}
		if err := s.removeFile(formaldev); err != nil {
			return err
		}
		if err := s.removeFile(nobootstrap); err != nil {
			return err
		}
		if err := s.restoreComponents(componentsBak, components); err != nil {
			return err
		}
		s.logger.Info("client: back to normal")
		return nil
	}

	if err := s.rename(adhesive, adhesiveBak); err != nil {
		return err
	}
	if err := s.touch(formaldev); err != nil {
		return err
	}
	if err := s.touch(nobootstrap); err != nil {
		return err
	}
	if err := s.disableComponent(components, componentsBak, "adhesive"); err != nil {
		return err
	}
	s.logger.Info("client: activated")
	return nil
}

func (s *Service) rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return err
	}
	s.logger.Info("renamed",
		zap.String("from", filepath.Base(from)),
		zap.String("to", filepath.Base(to)),
	)
	return nil
}

func (s *Service) touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.logger.Info("created", zap.String("file", filepath.Base(path)))
	return nil
}

func (s *Service) removeFile(path string) error {
	if err := os.Remove(path); err != nil {
		return err
	}
	s.logger.Info("deleted", zap.String("file", filepath.Base(path)))
	return nil
}

// restoreComponents puts the backed-up components.json back in place.
func (s *Service) restoreComponents(bak, components string) error {
	if err := os.Rename(bak, components); err != nil {
		return err
	}
	s.logger.Info("restored components.json backup")
	return nil
}

// disableComponent backs up components.json and rewrites it without the
// given component.
func (s *Service) disableComponent(components, bak, component string) error {
	if err := os.Rename(components, bak); err != nil {
		return err
	}

	if err := removeComponent(bak, components, component); err != nil {
		return err
	}

	s.logger.Info("removed component from components.json", zap.String("component", component))
	return nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
