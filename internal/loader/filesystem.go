// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

//go:generate mockgen -source=filesystem.go -destination=../mock/filesystem_mock.go -package=mock

import (
	"io/fs"
	"os"
)

// FileSystem is the subset of file system operations the loader needs.
type FileSystem interface {
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem on top of the os package.
type OSFS struct{}

// Stat calls os.Stat.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile calls os.ReadFile.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
