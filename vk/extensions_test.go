package vk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func extensionList(names ...string) []ExtensionProperties {
	properties := make([]ExtensionProperties, len(names))
	for i, name := range names {
		copy(properties[i].ExtensionName[:], name)
		properties[i].SpecVersion = uint32(i + 1)
	}
	return properties
}

func TestExtensionSet(t *testing.T) {
	set := NewExtensionSet(extensionList("VK_KHR_swapchain", "VK_EXT_debug_utils", "VK_KHR_surface"))

	require.Equal(t, 3, set.Len())
	require.True(t, set.Has("VK_KHR_surface"))
	require.False(t, set.Has("VK_KHR_surface2"))
	require.Equal(t, []string{"VK_EXT_debug_utils", "VK_KHR_surface", "VK_KHR_swapchain"}, set.Names())

	version, ok := set.SpecVersion("VK_EXT_debug_utils")
	require.True(t, ok)
	require.Equal(t, uint32(2), version)

	_, ok = set.SpecVersion("VK_NV_device_diagnostic_checkpoints")
	require.False(t, ok)

	require.Equal(t, []string{"VK_EXT_host_query_reset"}, set.Missing("VK_KHR_swapchain", "VK_EXT_host_query_reset"))
	require.Empty(t, set.Missing("VK_KHR_swapchain"))
}

func TestExtensionSetZeroValue(t *testing.T) {
	var set ExtensionSet

	require.Zero(t, set.Len())
	require.False(t, set.Has("VK_KHR_swapchain"))
	require.Nil(t, set.Names())
	require.Equal(t, []string{"VK_KHR_swapchain"}, set.Missing("VK_KHR_swapchain"))
}
