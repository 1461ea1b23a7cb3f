package vk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkngwrapper/vkw/vk"
	mock_vk "github.com/vkngwrapper/vkw/vk/mocks"
)

type testContext struct {
	driver   *mock_vk.FakeDriver
	dld      *vk.InstanceDispatch
	instance *vk.Instance
	physical vk.PhysicalDevice
	device   vk.Device
}

func (c *testContext) Close() {
	c.device.Reset()
	c.instance.Reset()
}

func newInstance(t *testing.T, driver *mock_vk.FakeDriver) (*vk.InstanceDispatch, *vk.Instance) {
	dld := driver.Dispatch()
	require.True(t, vk.Load(dld))
	instance := vk.CreateInstance(vk.InstanceCreateOptions{ApplicationName: t.Name()}, dld)
	require.True(t, instance.IsValid())
	return dld, &instance
}

// newTestContext creates an instance and a device on the first physical device. Callers
// must Close the context.
func newTestContext(t *testing.T, driver *mock_vk.FakeDriver) *testContext {
	c := &testContext{driver: driver}
	c.dld, c.instance = newInstance(t, driver)

	physical, ok := c.instance.PhysicalDevices()
	require.True(t, ok)
	require.NotEmpty(t, physical)
	c.physical = physical[0]

	priority := float32(1)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:           vk.StructureTypeDeviceQueueCreateInfo,
		QueueCount:      1,
		QueuePriorities: &priority,
	}
	c.device = vk.CreateDevice(c.physical.Raw(), vk.SpanOf(&queueInfo), []string{"VK_KHR_swapchain"}, nil, vk.NewDeviceDispatch(c.dld))
	require.True(t, c.device.IsValid())
	return c
}
