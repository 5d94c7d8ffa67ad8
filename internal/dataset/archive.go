package dataset

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ExtractArchives unpacks every zip found in the statistics subfolder of
// each account directory under runDir, in place. Name collisions are
// overwritten, so re-running on an already unpacked tree is harmless.
// With remove set, consumed archives are deleted afterwards.
func ExtractArchives(runDir string, remove bool) error {
	accounts, err := os.ReadDir(runDir)
	if err != nil {
		return fmt.Errorf("reading run directory: %w", err)
	}

	for _, account := range accounts {
		if !account.IsDir() {
			continue
		}

		statsDir := filepath.Join(runDir, account.Name(), "statistics")
		archives, err := filepath.Glob(filepath.Join(statsDir, "*.zip"))
		if err != nil {
			return fmt.Errorf("globbing archives: %w", err)
		}

		for _, archive := range archives {
			if err := extractZip(archive, statsDir); err != nil {
				logrus.WithError(err).WithField("archive", archive).Warn("Skipping unreadable archive")
				continue
			}

			logrus.WithField("archive", archive).Debug("Archive extracted")

			if remove {
				if err := os.Remove(archive); err != nil {
					logrus.WithError(err).WithField("archive", archive).Warn("Could not remove extracted archive")
				}
			}
		}
	}

	return nil
}

func extractZip(path, destDir string) error {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		// Flatten: the statistics archives carry one CSV per campaign at
		// the top level, and nothing may escape the statistics folder.
		target := filepath.Join(destDir, filepath.Base(file.Name))
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes destination", file.Name)
		}

		if err := extractZipEntry(file, target); err != nil {
			return err
		}
	}

	return nil
}

func extractZipEntry(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
