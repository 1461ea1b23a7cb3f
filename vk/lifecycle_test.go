package vk_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/common"

	"github.com/vkngwrapper/vkw/vk"
	"github.com/vkngwrapper/vkw/vk/internal/utils"
	mock_vk "github.com/vkngwrapper/vkw/vk/mocks"
)

func TestLifecycleReverseDestroyOrder(t *testing.T) {
	driver := mock_vk.NewFakeDriver()

	func() {
		dld := driver.Dispatch()
		require.True(t, vk.Load(dld))

		instance := vk.CreateInstance(vk.InstanceCreateOptions{
			ApplicationName: "lifecycle",
			Extensions:      []string{vk.ExtDebugUtilsExtensionName},
		}, dld)
		require.True(t, instance.IsValid())
		defer instance.Reset()

		physical, ok := instance.EnumeratePhysicalDevices()
		require.True(t, ok)
		require.Len(t, physical, 2)

		priority := float32(1)
		queueInfo := vk.DeviceQueueCreateInfo{
			SType:           vk.StructureTypeDeviceQueueCreateInfo,
			QueueCount:      1,
			QueuePriorities: &priority,
		}
		device := vk.CreateDevice(physical[0], vk.SpanOf(&queueInfo), nil, nil, vk.NewDeviceDispatch(dld))
		require.True(t, device.IsValid())
		defer device.Reset()

		buffer, err := device.CreateBuffer(&vk.BufferCreateInfo{SType: vk.StructureTypeBufferCreateInfo, Size: 256})
		require.NoError(t, err)
		defer buffer.Reset()

		requirements := device.GetBufferMemoryRequirements(buffer.Raw())
		typeIndex, ok := vk.NewPhysicalDevice(physical[0], dld).FindMemoryType(requirements.MemoryTypeBits, vk.MemoryPropertyHostVisible)
		require.True(t, ok)

		memory, err := device.AllocateMemory(&vk.MemoryAllocateInfo{
			SType:           vk.StructureTypeMemoryAllocateInfo,
			AllocationSize:  requirements.Size,
			MemoryTypeIndex: typeIndex,
		})
		require.NoError(t, err)
		defer memory.Reset()

		require.NoError(t, buffer.BindMemory(memory.Raw(), 0))
	}()

	require.Equal(t, []string{
		"vkCreateInstance",
		"vkCreateDevice",
		"vkCreateBuffer",
		"vkAllocateMemory",
		"vkBindBufferMemory",
		"vkFreeMemory",
		"vkDestroyBuffer",
		"vkDestroyDevice",
		"vkDestroyInstance",
	}, driver.Names("vkCreate", "vkAllocate", "vkBind", "vkDestroy", "vkFree"))
	require.Empty(t, driver.Live())
}

func TestCreateInstanceDefaults(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	info := driver.LastInstanceInfo
	require.NotNil(t, info)
	require.Equal(t, uint32(common.Vulkan1_0), info.ApplicationInfo.APIVersion)
	require.Equal(t, t.Name(), utils.GoString(info.ApplicationInfo.ApplicationName))
	require.Nil(t, info.ApplicationInfo.EngineName)
	require.Zero(t, info.EnabledLayerCount)
	require.Empty(t, dld.Missing())
}

func TestCreateInstanceFailure(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Fail("vkCreateInstance", vk.VKErrorIncompatibleDriver)

	dld := driver.Dispatch()
	require.True(t, vk.Load(dld))

	instance := vk.CreateInstance(vk.InstanceCreateOptions{}, dld)
	require.False(t, instance.IsValid())

	// Resetting an empty instance is a no-op
	instance.Reset()
	require.Empty(t, driver.CallsNamed("vkDestroyInstance"))
}

func TestCreateInstanceWithoutGlobalTier(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	instance := vk.CreateInstance(vk.InstanceCreateOptions{}, driver.Dispatch())
	require.False(t, instance.IsValid())
	require.Empty(t, driver.Calls())
}

func TestCreateInstanceMissingCoreEntryPointReleasesInstance(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkCreateDevice")

	dld := driver.Dispatch()
	require.True(t, vk.Load(dld))

	instance := vk.CreateInstance(vk.InstanceCreateOptions{}, dld)
	require.False(t, instance.IsValid())
	require.Len(t, driver.CallsNamed("vkDestroyInstance"), 1)
	require.Empty(t, driver.Live())
}

func TestEnumeratePhysicalDevicesFailure(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	driver.Fail("vkEnumeratePhysicalDevices", vk.VKErrorInitializationFailed)
	devices, ok := instance.EnumeratePhysicalDevices()
	require.False(t, ok)
	require.Nil(t, devices)
}

func TestEnumeratePhysicalDevicesEmpty(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.PhysicalDeviceCount = 0
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	devices, ok := instance.EnumeratePhysicalDevices()
	require.True(t, ok)
	require.NotNil(t, devices)
	require.Empty(t, devices)
}

func TestCreateDeviceFailure(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	driver.Fail("vkCreateDevice", vk.VKErrorInitializationFailed)
	device := vk.CreateDevice(1, vk.Span[vk.DeviceQueueCreateInfo]{}, nil, nil, vk.NewDeviceDispatch(dld))
	require.False(t, device.IsValid())
	require.Empty(t, driver.CallsNamed("vkDestroyDevice"))
}

func TestCreateDeviceChainsFeatures(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	features := vk.PhysicalDeviceFeatures2{}
	features.Features.SamplerAnisotropy = vk.True
	device := vk.CreateDevice(1, vk.Span[vk.DeviceQueueCreateInfo]{}, []string{"VK_KHR_swapchain"}, &features, vk.NewDeviceDispatch(dld))
	defer device.Reset()
	require.True(t, device.IsValid())

	info := driver.LastDeviceInfo
	require.NotNil(t, info)
	require.Equal(t, vk.StructureTypePhysicalDeviceFeatures2, features.SType)
	require.Equal(t, uint32(1), info.EnabledExtensionCount)
	require.Equal(t, "VK_KHR_swapchain", utils.GoString(*info.EnabledExtensionNames))
	require.Nil(t, info.EnabledFeatures)
	require.NotNil(t, info.Next)
}

func TestCreateDeviceQueueInfos(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	graphics := []float32{1, 0.5}
	compute := []float32{0.25}
	queues := []vk.DeviceQueueCreateInfo{
		{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 0, QueueCount: 2, QueuePriorities: &graphics[0]},
		{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 1, QueueCount: 1, QueuePriorities: &compute[0]},
	}
	features := vk.PhysicalDeviceFeatures2{}
	device := vk.CreateDevice(1, vk.SpanFrom(queues), nil, &features, vk.NewDeviceDispatch(dld))
	defer device.Reset()
	require.True(t, device.IsValid())

	info := driver.LastDeviceInfo
	require.NotNil(t, info)
	require.Equal(t, uint32(2), info.QueueCreateInfoCount)
	received := unsafe.Slice(info.QueueCreateInfos, info.QueueCreateInfoCount)
	require.Equal(t, []float32{1, 0.5}, unsafe.Slice(received[0].QueuePriorities, received[0].QueueCount))
	require.Equal(t, []float32{0.25}, unsafe.Slice(received[1].QueuePriorities, received[1].QueueCount))
	require.Equal(t, unsafe.Pointer(&features), info.Next)
}

func TestCreateInstanceChainsNext(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	dld := driver.Dispatch()
	require.True(t, vk.Load(dld))

	next := vk.DebugUtilsMessengerCreateInfoEXT{SType: vk.StructureTypeDebugUtilsMessengerCreateInfoEXT}
	instance := vk.CreateInstance(vk.InstanceCreateOptions{
		ApplicationName: t.Name(),
		EngineName:      "engine",
		Next:            unsafe.Pointer(&next),
	}, dld)
	defer instance.Reset()
	require.True(t, instance.IsValid())

	info := driver.LastInstanceInfo
	require.NotNil(t, info)
	require.Equal(t, unsafe.Pointer(&next), info.Next)
	require.Equal(t, vk.StructureTypeApplicationInfo, info.ApplicationInfo.SType)
	require.Equal(t, "engine", utils.GoString(info.ApplicationInfo.EngineName))
}

func TestDebugCallback(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	callback := instance.TryCreateDebugCallback(0xdead)
	require.True(t, callback.IsValid())
	require.Equal(t, uintptr(0xdead), driver.LastMessengerInfo.UserCallback)
	require.Equal(t, vk.DebugUtilsMessageSeverityError|vk.DebugUtilsMessageSeverityWarning, driver.LastMessengerInfo.MessageSeverity)

	raw := callback.Raw()
	callback.Reset()
	calls := driver.CallsNamed("vkDestroyDebugUtilsMessengerEXT")
	require.Equal(t, []mock_vk.Call{{
		Name:   "vkDestroyDebugUtilsMessengerEXT",
		Owner:  uint64(instance.Raw()),
		Handle: uint64(raw),
	}}, calls)
}

func TestDebugCallbackUnavailable(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	driver.Disable("vkCreateDebugUtilsMessengerEXT", "vkDestroyDebugUtilsMessengerEXT")
	dld, instance := newInstance(t, driver)
	defer instance.Reset()

	require.Contains(t, dld.Missing(), "vkCreateDebugUtilsMessengerEXT")
	callback := instance.TryCreateDebugCallback(0xdead)
	require.False(t, callback.IsValid())
}

func TestDebugCallbackRegistrationFailure(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	_, instance := newInstance(t, driver)
	defer instance.Reset()

	driver.Fail("vkCreateDebugUtilsMessengerEXT", vk.VKErrorOutOfHostMemory)
	callback := instance.TryCreateDebugCallback(0xdead)
	require.False(t, callback.IsValid())
}

func TestInstanceMove(t *testing.T) {
	driver := mock_vk.NewFakeDriver()
	_, instance := newInstance(t, driver)

	var other vk.Instance
	other.MoveFrom(instance)
	require.False(t, instance.IsValid())
	require.True(t, other.IsValid())

	instance.Reset()
	require.Empty(t, driver.CallsNamed("vkDestroyInstance"))

	other.Reset()
	require.Len(t, driver.CallsNamed("vkDestroyInstance"), 1)
}
