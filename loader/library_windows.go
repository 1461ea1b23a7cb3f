//go:build windows

package loader

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

type dynamicLibrary struct {
	dll *syscall.DLL
}

func (l *dynamicLibrary) Lookup(symbol string) (uintptr, error) {
	proc, err := l.dll.FindProc(symbol)
	if err != nil {
		return 0, err
	}
	return proc.Addr(), nil
}

func (l *dynamicLibrary) Close() error {
	return l.dll.Release()
}

func defaultLibraryNames() []string {
	return []string{"vulkan-1.dll"}
}

func searchPaths() []string {
	var paths []string
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		paths = append(paths, filepath.Join(sdk, "Bin"))
	}
	if root := os.Getenv("SystemRoot"); root != "" {
		paths = append(paths, filepath.Join(root, "System32"))
	}
	return paths
}

func openLibrary(names []string, paths []string, logger *slog.Logger) (Library, error) {
	for _, name := range names {
		// The bare name goes through the standard DLL search order first
		candidates := []string{name}
		for _, path := range paths {
			candidates = append(candidates, filepath.Join(path, name))
		}
		for i, candidate := range candidates {
			if i > 0 {
				if _, err := os.Stat(candidate); err != nil {
					continue
				}
			}
			dll, err := syscall.LoadDLL(candidate)
			if err != nil {
				logger.Debug("Loader::Open failed", slog.String("Path", candidate), slog.Any("error", err))
				continue
			}
			logger.Debug("Loader::Open", slog.String("Path", candidate))
			return &dynamicLibrary{dll: dll}, nil
		}
	}
	return nil, errors.Wrapf(ErrNotInstalled, "tried %v in %v", names, paths)
}
