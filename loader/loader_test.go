package loader_test

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"

	"github.com/vkngwrapper/vkw/loader"
	mock_loader "github.com/vkngwrapper/vkw/loader/mocks"
	"github.com/vkngwrapper/vkw/vk"
	mock_vk "github.com/vkngwrapper/vkw/vk/mocks"
)

func TestLoadResolvesGlobalTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock_vk.NewFakeDriver()

	library := mock_loader.NewMockLibrary(ctrl)
	library.EXPECT().Lookup("vkGetInstanceProcAddr").Return(driver.ProcAddr("vkGetInstanceProcAddr"), nil)

	dld, lib, err := loader.Load(loader.Options{Library: library, Bind: driver.Bind})
	require.NoError(t, err)
	require.Same(t, library, lib)
	require.NotNil(t, dld.GetInstanceProcAddr)
	require.NotNil(t, dld.CreateInstance)
	require.NotNil(t, dld.EnumerateInstanceExtensionProperties)
	require.NotNil(t, dld.EnumerateInstanceLayerProperties)

	// Instance tier stays unresolved until an instance exists
	require.Nil(t, dld.CreateDevice)
	require.Contains(t, dld.Missing(), "vkCreateDevice")
}

func TestLoadMissingSymbol(t *testing.T) {
	ctrl := gomock.NewController(t)

	library := mock_loader.NewMockLibrary(ctrl)
	library.EXPECT().Lookup("vkGetInstanceProcAddr").Return(uintptr(0), errors.New("undefined symbol"))
	library.EXPECT().Close().Return(nil)

	_, _, err := loader.Load(loader.Options{Library: library})
	require.Error(t, err)
	require.True(t, errors.Is(err, loader.ErrNotInstalled))
}

func TestLoadNullSymbol(t *testing.T) {
	ctrl := gomock.NewController(t)

	library := mock_loader.NewMockLibrary(ctrl)
	library.EXPECT().Lookup("vkGetInstanceProcAddr").Return(uintptr(0), nil)
	library.EXPECT().Close().Return(nil)

	_, _, err := loader.Load(loader.Options{Library: library})
	require.True(t, errors.Is(err, loader.ErrNotInstalled))
}

func TestLoadMissingGlobalEntryPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkEnumerateInstanceLayerProperties")

	library := mock_loader.NewMockLibrary(ctrl)
	library.EXPECT().Lookup("vkGetInstanceProcAddr").Return(driver.ProcAddr("vkGetInstanceProcAddr"), nil)
	library.EXPECT().Close().Return(nil)

	_, _, err := loader.Load(loader.Options{Library: library, Bind: driver.Bind})
	require.True(t, errors.Is(err, vk.ErrEntryPointMissing))
	require.Contains(t, err.Error(), "vkEnumerateInstanceLayerProperties")
}

func TestLoadUnknownLibrary(t *testing.T) {
	_, _, err := loader.Load(loader.Options{LibraryNames: []string{"libdefinitely-not-vulkan.so.9"}})
	require.True(t, errors.Is(err, loader.ErrNotInstalled))
}

func TestLogDebugMessagesSeverity(t *testing.T) {
	var out bytes.Buffer
	log := loader.LogDebugMessages(slog.New(slog.NewTextHandler(&out)))

	log(loader.DebugMessage{
		Severity:  vk.DebugUtilsMessageSeverityError,
		Types:     vk.DebugUtilsMessageTypeValidation,
		MessageID: "VUID-vkDestroyDevice-device-00378",
		Message:   "objects not destroyed",
	})
	require.Contains(t, out.String(), "level=ERROR")
	require.Contains(t, out.String(), "objects not destroyed")
	require.Contains(t, out.String(), "VUID-vkDestroyDevice-device-00378")

	out.Reset()
	log(loader.DebugMessage{Severity: vk.DebugUtilsMessageSeverityWarning, Message: "slow path"})
	require.Contains(t, out.String(), "level=WARN")

	out.Reset()
	log(loader.DebugMessage{Severity: vk.DebugUtilsMessageSeverityVerbose, Message: "chatter"})
	require.Empty(t, out.String())
}
