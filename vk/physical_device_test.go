package vk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkngwrapper/vkw/vk"
	mock_vk "github.com/vkngwrapper/vkw/vk/mocks"
)

func TestPhysicalDeviceQueries(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Features.SamplerAnisotropy = vk.True
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	devices, ok := instance.PhysicalDevices()
	require.True(t, ok)
	require.Len(t, devices, 2)
	require.NotEqual(t, devices[0].Raw(), devices[1].Raw())

	physical := devices[0]
	properties := physical.GetProperties()
	require.Equal(t, "Fake Device", properties.Name())
	require.Equal(t, uint64(64), properties.Limits.NonCoherentAtomSize)

	var properties2 vk.PhysicalDeviceProperties2
	physical.GetProperties2KHR(&properties2)
	require.Equal(t, vk.StructureTypePhysicalDeviceProperties2, properties2.SType)
	require.Equal(t, "Fake Device", properties2.Properties.Name())

	require.Equal(t, vk.True, physical.GetFeatures().SamplerAnisotropy)

	families := physical.GetQueueFamilyProperties()
	require.Len(t, families, 1)
	require.Equal(t, vk.QueueGraphics|vk.QueueCompute|vk.QueueTransfer, families[0].QueueFlags)

	extensions, err := physical.Extensions()
	require.NoError(t, err)
	require.True(t, extensions.Has("VK_KHR_swapchain"))
	require.Equal(t, 1, extensions.Len())
}

func TestPhysicalDeviceFindMemoryType(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	devices, ok := instance.PhysicalDevices()
	require.True(t, ok)
	physical := devices[0]

	testCases := map[string]struct {
		TypeBits   uint32
		Properties vk.MemoryPropertyFlags
		Index      uint32
		Found      bool
	}{
		"Device local":           {TypeBits: 0b11, Properties: vk.MemoryPropertyDeviceLocal, Index: 0, Found: true},
		"Host visible":           {TypeBits: 0b11, Properties: vk.MemoryPropertyHostVisible, Index: 1, Found: true},
		"Host visible coherent":  {TypeBits: 0b11, Properties: vk.MemoryPropertyHostVisible | vk.MemoryPropertyHostCoherent, Index: 1, Found: true},
		"No flags":               {TypeBits: 0b10, Index: 1, Found: true},
		"Masked out":             {TypeBits: 0b01, Properties: vk.MemoryPropertyHostVisible},
		"Unsupported properties": {TypeBits: 0b11, Properties: vk.MemoryPropertyDeviceLocal | vk.MemoryPropertyHostVisible},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			index, found := physical.FindMemoryType(testCase.TypeBits, testCase.Properties)
			require.Equal(t, testCase.Found, found)
			require.Equal(t, testCase.Index, index)
		})
	}
}

func TestPhysicalDeviceSurfaceQueries(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	devices, ok := instance.PhysicalDevices()
	require.True(t, ok)
	physical := devices[0]

	supported, err := physical.GetSurfaceSupportKHR(0, 0x99)
	require.NoError(t, err)
	require.True(t, supported)

	supported, err = physical.GetSurfaceSupportKHR(4, 0x99)
	require.NoError(t, err)
	require.False(t, supported)

	modes, err := physical.GetSurfacePresentModesKHR(0x99)
	require.NoError(t, err)
	require.Equal(t, []vk.PresentModeKHR{vk.PresentModeFIFOKHR, vk.PresentModeMailboxKHR}, modes)
}

func TestPhysicalDeviceWithoutSurfaceExtension(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable(
		"vkDestroySurfaceKHR",
		"vkGetPhysicalDeviceSurfaceSupportKHR",
		"vkGetPhysicalDeviceSurfaceCapabilitiesKHR",
		"vkGetPhysicalDeviceSurfaceFormatsKHR",
		"vkGetPhysicalDeviceSurfacePresentModesKHR",
	)
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	devices, ok := instance.PhysicalDevices()
	require.True(t, ok)
	physical := devices[0]

	_, err := physical.GetSurfaceSupportKHR(0, 0x99)
	require.ErrorIs(t, err, vk.ErrEntryPointMissing)
	_, err = physical.GetSurfaceCapabilitiesKHR(0x99)
	require.ErrorIs(t, err, vk.ErrEntryPointMissing)
	_, err = physical.GetSurfaceFormatsKHR(0x99)
	require.ErrorIs(t, err, vk.ErrEntryPointMissing)
	_, err = physical.GetSurfacePresentModesKHR(0x99)
	require.ErrorIs(t, err, vk.ErrEntryPointMissing)
}

func TestPhysicalDeviceWithoutProperties2(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Features.SamplerAnisotropy = vk.True
	driver.Disable("vkGetPhysicalDeviceFeatures2KHR", "vkGetPhysicalDeviceProperties2KHR")
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	devices, ok := instance.PhysicalDevices()
	require.True(t, ok)

	var properties2 vk.PhysicalDeviceProperties2
	devices[0].GetProperties2KHR(&properties2)
	require.Empty(t, properties2.Properties.Name())
	require.Equal(t, vk.PhysicalDeviceFeatures{}, devices[0].GetFeatures())
}

func TestEnumerateInstanceProperties(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Layers = []string{"VK_LAYER_KHRONOS_validation"}
	dld := driver.Dispatch()
	require.True(t, vk.Load(dld))

	extensions, err := vk.EnumerateInstanceExtensionProperties(dld)
	require.NoError(t, err)
	require.True(t, extensions.Has(vk.ExtDebugUtilsExtensionName))
	require.True(t, extensions.Has(vk.KhrGetPhysicalDeviceProperties2ExtensionName))
	require.Equal(t, []string{"VK_KHR_win32_surface"}, extensions.Missing("VK_KHR_surface", "VK_KHR_win32_surface"))

	layers, err := vk.EnumerateInstanceLayerProperties(dld)
	require.NoError(t, err)
	require.Len(t, layers, 1)
	require.Equal(t, "VK_LAYER_KHRONOS_validation", layers[0].Name())
}

func TestEnumerateInstancePropertiesUnloaded(t *testing.T) {
	_, err := vk.EnumerateInstanceExtensionProperties(&vk.InstanceDispatch{})
	require.ErrorIs(t, err, vk.ErrEntryPointMissing)

	_, err = vk.EnumerateInstanceLayerProperties(&vk.InstanceDispatch{})
	require.ErrorIs(t, err, vk.ErrEntryPointMissing)
}
