package vk_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkngwrapper/vkw/vk"
	mock_vk "github.com/vkngwrapper/vkw/vk/mocks"
)

type tierStats struct {
	Total    int
	Resolved int
	Missing  []struct {
		Name      string
		Extension string
	}
}

func TestLoadGlobalTier(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld := driver.Dispatch()

	require.True(t, vk.Load(dld))
	require.NotNil(t, dld.CreateInstance)
	require.NotNil(t, dld.EnumerateInstanceExtensionProperties)
	require.NotNil(t, dld.EnumerateInstanceLayerProperties)

	// Instance entry points are not visible through a null instance
	require.Nil(t, dld.CreateDevice)
	require.Nil(t, dld.DestroyInstance)
}

func TestLoadWithoutLoaderHooks(t *testing.T) {
	require.False(t, vk.Load(&vk.InstanceDispatch{}))
	require.False(t, vk.LoadInstance(1, &vk.InstanceDispatch{}))
	require.False(t, vk.LoadDevice(1, &vk.DeviceDispatch{}))
}

func TestLoadMissingGlobalEntryPoint(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkEnumerateInstanceLayerProperties")
	dld := driver.Dispatch()

	require.False(t, vk.Load(dld))
	require.Contains(t, dld.Missing(), "vkEnumerateInstanceLayerProperties")
	require.NotNil(t, dld.CreateInstance)
}

func TestLoadInstanceOptionalExtension(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkCreateDebugUtilsMessengerEXT", "vkDestroyDebugUtilsMessengerEXT")
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	require.Nil(t, dld.CreateDebugUtilsMessengerEXT)
	require.Nil(t, dld.DestroyDebugUtilsMessengerEXT)
	require.NotNil(t, dld.CreateDevice)
	require.ElementsMatch(t, []string{"vkCreateDebugUtilsMessengerEXT", "vkDestroyDebugUtilsMessengerEXT"}, dld.Missing())
}

func TestDeviceTierStartsEmpty(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	deviceDld := vk.NewDeviceDispatch(dld)
	require.NotNil(t, deviceDld.CreateDevice)
	require.NotNil(t, deviceDld.GetDeviceProcAddr)
	require.Nil(t, deviceDld.CreateBuffer)
	require.Nil(t, deviceDld.QueueSubmit)
	require.Contains(t, deviceDld.Missing(), "vkCreateBuffer")

	// Loading a device tier leaves the instance table untouched
	device := vk.CreateDevice(1, vk.Span[vk.DeviceQueueCreateInfo]{}, nil, nil, deviceDld)
	defer device.Reset()
	require.True(t, device.IsValid())
	require.NotNil(t, deviceDld.CreateBuffer)
	require.Empty(t, dld.Missing())
}

func TestLoadDeviceWithoutDeviceProcAddr(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	deviceDld := vk.NewDeviceDispatch(dld)
	deviceDld.GetDeviceProcAddr = nil

	device := vk.CreateDevice(1, vk.Span[vk.DeviceQueueCreateInfo]{}, nil, nil, deviceDld)
	defer device.Reset()
	require.True(t, device.IsValid())
	require.NotNil(t, deviceDld.CreateBuffer)
	require.NotNil(t, deviceDld.DestroyBuffer)
}

func TestLoadDeviceOptionalExtension(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkCmdSetCheckpointNV", "vkGetQueueCheckpointDataNV", "vkResetQueryPoolEXT")
	c := newTestContext(t, driver)
	defer c.Close()

	missing := c.device.Dispatch().Missing()
	require.ElementsMatch(t, []string{"vkCmdSetCheckpointNV", "vkGetQueueCheckpointDataNV", "vkResetQueryPoolEXT"}, missing)
}

func TestLoadDeviceMissingCoreEntryPoint(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkCreateBuffer")
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	device := vk.CreateDevice(1, vk.Span[vk.DeviceQueueCreateInfo]{}, nil, nil, vk.NewDeviceDispatch(dld))
	require.False(t, device.IsValid())

	// The device was created and must not leak
	require.Len(t, driver.CallsNamed("vkDestroyDevice"), 1)
}

func TestBuildStatsString(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkCreateDebugUtilsMessengerEXT", "vkDestroyDebugUtilsMessengerEXT")
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	var instanceStats map[string]tierStats
	require.NoError(t, json.Unmarshal([]byte(dld.BuildStatsString()), &instanceStats))
	require.Len(t, instanceStats, 2)
	require.Equal(t, 3, instanceStats["Global"].Total)
	require.Equal(t, 3, instanceStats["Global"].Resolved)
	require.Empty(t, instanceStats["Global"].Missing)

	stats := instanceStats["Instance"]
	require.Equal(t, stats.Total-2, stats.Resolved)
	require.Len(t, stats.Missing, 2)
	for _, missing := range stats.Missing {
		require.Equal(t, vk.ExtDebugUtilsExtensionName, missing.Extension)
	}

	deviceDld := vk.NewDeviceDispatch(dld)
	var deviceStats map[string]tierStats
	require.NoError(t, json.Unmarshal([]byte(deviceDld.BuildStatsString()), &deviceStats))
	require.Len(t, deviceStats, 3)
	device := deviceStats["Device"]
	require.Less(t, device.Resolved, device.Total)
	require.Len(t, device.Missing, device.Total-device.Resolved)
}
