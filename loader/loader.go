// Package loader opens the platform Vulkan library and produces a dispatch table whose
// global tier is resolved. Nothing is linked statically: every entry point is bound at run
// time through vkGetInstanceProcAddr.
package loader

import (
	"io"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
	"golang.org/x/exp/slog"

	"github.com/vkngwrapper/vkw/vk"
)

//go:generate mockgen -source loader.go -destination ./mocks/library.go -package mock_loader

// ErrNotInstalled is returned when no Vulkan library could be opened or it does not export
// vkGetInstanceProcAddr
var ErrNotInstalled = errors.New("vulkan library is not installed")

// Library is an opened native library
type Library interface {
	Lookup(symbol string) (uintptr, error)
	Close() error
}

// Options configure Load. The zero value opens the platform default library.
type Options struct {
	// Logger becomes the Logger of the returned dispatch table. Nil discards.
	Logger *slog.Logger
	// LibraryNames replaces the platform default library names. Each name is tried as given
	// and then inside every search path, which includes $VULKAN_SDK.
	LibraryNames []string
	// Library is used instead of opening a library by name
	Library Library
	// Bind replaces purego.RegisterFunc as the way resolved addresses become Go funcs
	Bind vk.BindFunc
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard))

// Load opens the Vulkan library and resolves the global tier of a new dispatch table. The
// returned Library must stay open for as long as anything created from the table is alive.
func Load(options Options) (*vk.InstanceDispatch, Library, error) {
	logger := options.Logger
	if logger == nil {
		logger = discardLogger
	}

	library := options.Library
	if library == nil {
		names := options.LibraryNames
		if len(names) == 0 {
			names = defaultLibraryNames()
		}
		var err error
		library, err = openLibrary(names, searchPaths(), logger)
		if err != nil {
			return nil, nil, err
		}
	}

	addr, err := library.Lookup("vkGetInstanceProcAddr")
	if err != nil || addr == 0 {
		_ = library.Close()
		if err == nil {
			err = errors.New("symbol resolved to a null address")
		}
		return nil, nil, errors.Mark(errors.Wrap(err, "resolving vkGetInstanceProcAddr"), ErrNotInstalled)
	}

	bind := options.Bind
	if bind == nil {
		bind = purego.RegisterFunc
	}

	dld := &vk.InstanceDispatch{
		Logger: options.Logger,
		Bind:   bind,
	}
	bind(&dld.GetInstanceProcAddr, addr)

	if !vk.Load(dld) {
		_ = library.Close()
		return nil, nil, errors.Wrapf(vk.ErrEntryPointMissing, "global entry points: %v", dld.Missing())
	}

	logger.Debug("Loader::Load", slog.String("Stats", dld.BuildStatsString()))
	return dld, library, nil
}

// DebugMessage is the decoded payload of a messenger callback
type DebugMessage struct {
	Severity  vk.DebugUtilsMessageSeverityFlags
	Types     vk.DebugUtilsMessageTypeFlags
	MessageID string
	Message   string
}

// NewDebugCallback wraps fn as a native messenger callback for Instance.TryCreateDebugCallback.
// purego keeps a fixed number of callback slots for the life of the process, so callbacks
// should be created once and reused.
func NewDebugCallback(fn func(message DebugMessage)) uintptr {
	return purego.NewCallback(func(severity, types uintptr, data *vk.DebugUtilsMessengerCallbackDataEXT, _ unsafe.Pointer) uintptr {
		message := DebugMessage{
			Severity: vk.DebugUtilsMessageSeverityFlags(severity),
			Types:    vk.DebugUtilsMessageTypeFlags(types),
		}
		if data != nil {
			message.MessageID = data.MessageIDString()
			message.Message = data.MessageString()
		}
		fn(message)
		return uintptr(vk.False)
	})
}

// LogDebugMessages returns a callback body that forwards messages to logger at a level
// matching their severity
func LogDebugMessages(logger *slog.Logger) func(message DebugMessage) {
	return func(message DebugMessage) {
		attrs := []any{
			slog.String("Types", message.Types.String()),
			slog.String("MessageID", message.MessageID),
		}
		switch {
		case message.Severity&vk.DebugUtilsMessageSeverityError != 0:
			logger.Error(message.Message, attrs...)
		case message.Severity&vk.DebugUtilsMessageSeverityWarning != 0:
			logger.Warn(message.Message, attrs...)
		case message.Severity&vk.DebugUtilsMessageSeverityInfo != 0:
			logger.Info(message.Message, attrs...)
		default:
			logger.Debug(message.Message, attrs...)
		}
	}
}
