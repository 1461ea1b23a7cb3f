//go:build darwin || freebsd || linux

package loader

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
	"golang.org/x/exp/slog"
)

type dynamicLibrary struct {
	handle uintptr
}

func (l *dynamicLibrary) Lookup(symbol string) (uintptr, error) {
	return purego.Dlsym(l.handle, symbol)
}

func (l *dynamicLibrary) Close() error {
	return purego.Dlclose(l.handle)
}

func defaultLibraryNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
	default:
		return []string{"libvulkan.so.1", "libvulkan.so"}
	}
}

func searchPaths() []string {
	var paths []string
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		paths = append(paths, filepath.Join(sdk, "lib"))
	}
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths, "/usr/local/lib", "/opt/homebrew/lib")
	default:
		paths = append(paths, "/usr/lib/x86_64-linux-gnu", "/usr/lib64", "/usr/lib", "/usr/local/lib")
	}
	return paths
}

func openLibrary(names []string, paths []string, logger *slog.Logger) (Library, error) {
	for _, name := range names {
		// The bare name goes through the dynamic linker's own search first
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
			handle, err := purego.Dlopen(candidate, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err != nil {
				logger.Debug("Loader::Open failed", slog.String("Path", candidate), slog.Any("error", err))
				continue
			}
			logger.Debug("Loader::Open", slog.String("Path", candidate))
			return &dynamicLibrary{handle: handle}, nil
		}
	}
	return nil, errors.Wrapf(ErrNotInstalled, "tried %v in %v", names, paths)
}
