// Package mock_vk provides a recording driver that serves Go implementations of every entry
// point through a fake proc address registry.
package mock_vk

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slog"

	"github.com/vkngwrapper/vkw/vk"
)

// Call is one recorded driver call. Owner is the device or instance the call was made
// against and Handle the object it created, destroyed or freed from.
type Call struct {
	Name   string
	Owner  uint64
	Handle uint64
	Count  int
}

var globalCommands = []string{
	"vkCreateInstance",
	"vkEnumerateInstanceExtensionProperties",
	"vkEnumerateInstanceLayerProperties",
	"vkGetInstanceProcAddr",
}

type pool struct {
	capacity  int
	allocated int
}

type memory struct {
	size    uint64
	backing []byte
}

// FakeDriver implements the native entry points in Go. Every call is recorded in order.
// Create calls hand out unique handles, so a single destroy counter covers every kind.
type FakeDriver struct {
	Logger *slog.Logger

	PhysicalDeviceCount  int
	SwapchainImageCount  int
	InstanceExtensions   []string
	DeviceExtensions     []string
	Layers               []string
	Properties           vk.PhysicalDeviceProperties
	Features             vk.PhysicalDeviceFeatures
	MemoryProperties     vk.PhysicalDeviceMemoryProperties
	MemoryRequirements   vk.MemoryRequirements
	QueueFamilies        []vk.QueueFamilyProperties
	Checkpoints          []vk.CheckpointDataNV
	QueryValue           uint64
	PresentResult        vk.Result
	CommandPoolCapacity  int
	FlushedRanges        []vk.MappedMemoryRange
	InvalidatedRanges    []vk.MappedMemoryRange
	LastInstanceInfo     *vk.InstanceCreateInfo
	LastDeviceInfo       *vk.DeviceCreateInfo
	LastMessengerInfo    *vk.DebugUtilsMessengerCreateInfoEXT
	LastDescriptorUpdate unsafe.Pointer

	calls      []Call
	nextHandle uint64
	nextProc   uintptr

	procs     *swiss.Map[uintptr, any]
	names     *swiss.Map[string, uintptr]
	disabled  *swiss.Map[string, struct{}]
	failures  *swiss.Map[string, vk.Result]
	destroyed *swiss.Map[uint64, int]
	created   *swiss.Map[uint64, string]
	pools     *swiss.Map[uint64, *pool]
	memories  *swiss.Map[vk.VkDeviceMemory, *memory]
	fences    *swiss.Map[vk.VkFence, bool]
}

// NewFakeDriver builds a driver exposing two physical devices, one graphics queue family and
// a host visible memory type
func NewFakeDriver() *FakeDriver {
	d := &FakeDriver{
		PhysicalDeviceCount: 2,
		SwapchainImageCount: 3,
		InstanceExtensions: []string{
			vk.ExtDebugUtilsExtensionName,
			vk.KhrGetPhysicalDeviceProperties2ExtensionName,
			"VK_KHR_surface",
		},
		DeviceExtensions: []string{"VK_KHR_swapchain"},
		QueueFamilies: []vk.QueueFamilyProperties{
			{QueueFlags: vk.QueueGraphics | vk.QueueCompute | vk.QueueTransfer, QueueCount: 1},
		},
		MemoryRequirements: vk.MemoryRequirements{Size: 256, Alignment: 64, MemoryTypeBits: 0b11},
		QueryValue:         42,
		nextHandle:         0x1000,
		nextProc:           0x7f0000,

		procs:     swiss.NewMap[uintptr, any](42),
		names:     swiss.NewMap[string, uintptr](42),
		disabled:  swiss.NewMap[string, struct{}](42),
		failures:  swiss.NewMap[string, vk.Result](42),
		destroyed: swiss.NewMap[uint64, int](42),
		created:   swiss.NewMap[uint64, string](42),
		pools:     swiss.NewMap[uint64, *pool](42),
		memories:  swiss.NewMap[vk.VkDeviceMemory, *memory](42),
		fences:    swiss.NewMap[vk.VkFence, bool](42),
	}

	copy(d.Properties.DeviceName[:], "Fake Device")
	d.Properties.Limits.NonCoherentAtomSize = 64
	d.MemoryProperties.MemoryTypeCount = 2
	d.MemoryProperties.MemoryTypes[0] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyDeviceLocal}
	d.MemoryProperties.MemoryTypes[1] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyHostVisible | vk.MemoryPropertyHostCoherent}
	d.MemoryProperties.MemoryHeapCount = 1
	d.MemoryProperties.MemoryHeaps[0] = vk.MemoryHeap{Size: 1 << 30}

	d.registerDefaults(reflect.TypeOf(vk.DeviceDispatch{}))
	d.registerImplementations()
	return d
}

// Dispatch returns a table holding only the loader hooks, ready for vk.Load
func (d *FakeDriver) Dispatch() *vk.InstanceDispatch {
	return &vk.InstanceDispatch{
		Logger:              d.Logger,
		Bind:                d.Bind,
		GetInstanceProcAddr: d.GetInstanceProcAddr,
	}
}

// GetInstanceProcAddr resolves name. A null instance resolves global commands only.
func (d *FakeDriver) GetInstanceProcAddr(instance vk.VkInstance, name string) uintptr {
	if instance == 0 && !isGlobal(name) {
		return 0
	}
	return d.lookup(name)
}

// GetDeviceProcAddr resolves every command that is not global
func (d *FakeDriver) GetDeviceProcAddr(device vk.VkDevice, name string) uintptr {
	if device == 0 || isGlobal(name) {
		return 0
	}
	return d.lookup(name)
}

// ProcAddr returns the fake address of name, for platform symbol lookups
func (d *FakeDriver) ProcAddr(name string) uintptr {
	addr, _ := d.names.Get(name)
	return addr
}

// Bind stores the implementation behind addr into the func field fptr points to
func (d *FakeDriver) Bind(fptr any, addr uintptr) {
	fn, ok := d.procs.Get(addr)
	if !ok {
		panic("fake driver: bind of unknown address")
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(fn))
}

// Disable hides names from both proc address lookups, as a driver lacking the extension would
func (d *FakeDriver) Disable(names ...string) {
	for _, name := range names {
		d.disabled.Put(name, struct{}{})
	}
}

// Fail makes the named entry point return result from now on
func (d *FakeDriver) Fail(name string, result vk.Result) {
	d.failures.Put(name, result)
}

// Calls returns every recorded call in order
func (d *FakeDriver) Calls() []Call {
	return d.calls
}

// CallsNamed returns the recorded calls of one entry point in order
func (d *FakeDriver) CallsNamed(name string) []Call {
	var calls []Call
	for _, call := range d.calls {
		if call.Name == name {
			calls = append(calls, call)
		}
	}
	return calls
}

// Names returns the entry point names of every recorded call in order, optionally keeping only
// those with one of the given prefixes
func (d *FakeDriver) Names(prefixes ...string) []string {
	var names []string
	for _, call := range d.calls {
		if len(prefixes) == 0 || hasAnyPrefix(call.Name, prefixes) {
			names = append(names, call.Name)
		}
	}
	return names
}

// DestroyCount returns how often handle was destroyed or freed
func (d *FakeDriver) DestroyCount(handle uint64) int {
	count, _ := d.destroyed.Get(handle)
	return count
}

// Live returns the handles that were created and not yet destroyed, mapped to the create call
func (d *FakeDriver) Live() map[uint64]string {
	live := make(map[uint64]string)
	d.created.Iter(func(handle uint64, name string) bool {
		if d.DestroyCount(handle) == 0 {
			live[handle] = name
		}
		return false
	})
	return live
}

func isGlobal(name string) bool {
	for _, global := range globalCommands {
		if name == global {
			return true
		}
	}
	return false
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (d *FakeDriver) lookup(name string) uintptr {
	if d.disabled.Has(name) {
		return 0
	}
	addr, _ := d.names.Get(name)
	return addr
}

func (d *FakeDriver) register(name string, fn any) {
	addr, ok := d.names.Get(name)
	if !ok {
		d.nextProc += 0x10
		addr = d.nextProc
		d.names.Put(name, addr)
	}
	d.procs.Put(addr, fn)
}

// registerDefaults gives every func field of the table a recording no-op that returns
// VKSuccess, so entry points without a dedicated implementation still resolve
func (d *FakeDriver) registerDefaults(table reflect.Type) {
	for i := 0; i < table.NumField(); i++ {
		field := table.Field(i)
		if field.Anonymous {
			d.registerDefaults(field.Type)
			continue
		}
		if !field.IsExported() || field.Type.Kind() != reflect.Func || field.Name == "Bind" {
			continue
		}
		name := "vk" + field.Name
		fn := reflect.MakeFunc(field.Type, func(args []reflect.Value) []reflect.Value {
			d.record(Call{Name: name})
			out := make([]reflect.Value, field.Type.NumOut())
			for o := range out {
				out[o] = reflect.Zero(field.Type.Out(o))
			}
			return out
		})
		d.register(name, fn.Interface())
	}
}

func (d *FakeDriver) record(call Call) {
	d.calls = append(d.calls, call)
}

func (d *FakeDriver) failure(name string) (vk.Result, bool) {
	return d.failures.Get(name)
}

func (d *FakeDriver) newHandle(createdBy string) uint64 {
	d.nextHandle++
	d.created.Put(d.nextHandle, createdBy)
	return d.nextHandle
}

func (d *FakeDriver) markDestroyed(handle uint64) {
	count, _ := d.destroyed.Get(handle)
	d.destroyed.Put(handle, count+1)
}

func createFunc[I any, H ~uint64](d *FakeDriver, name string) func(vk.VkDevice, *I, unsafe.Pointer, *H) vk.Result {
	return func(device vk.VkDevice, _ *I, _ unsafe.Pointer, out *H) vk.Result {
		if result, failed := d.failure(name); failed {
			return result
		}
		handle := d.newHandle(name)
		*out = H(handle)
		d.record(Call{Name: name, Owner: uint64(device), Handle: handle})
		return vk.VKSuccess
	}
}

func destroyFunc[H ~uint64](d *FakeDriver, name string) func(vk.VkDevice, H, unsafe.Pointer) {
	return func(device vk.VkDevice, handle H, _ unsafe.Pointer) {
		d.record(Call{Name: name, Owner: uint64(device), Handle: uint64(handle)})
		d.markDestroyed(uint64(handle))
	}
}

func fillEnumeration[T any](values []T, count *uint32, out *T) vk.Result {
	if out == nil {
		*count = uint32(len(values))
		return vk.VKSuccess
	}
	n := copy(unsafe.Slice(out, *count), values)
	*count = uint32(n)
	if n < len(values) {
		return vk.VKIncomplete
	}
	return vk.VKSuccess
}

func extensionProperties(names []string) []vk.ExtensionProperties {
	properties := make([]vk.ExtensionProperties, len(names))
	for i, name := range names {
		copy(properties[i].ExtensionName[:], name)
		properties[i].SpecVersion = 1
	}
	return properties
}

func (d *FakeDriver) registerImplementations() {
	d.register("vkGetInstanceProcAddr", d.GetInstanceProcAddr)
	d.register("vkGetDeviceProcAddr", d.GetDeviceProcAddr)

	d.registerInstanceTier()
	d.registerResources()
	d.registerMemory()
	d.registerPools()
	d.registerSync()
}

func (d *FakeDriver) registerInstanceTier() {
	d.register("vkCreateInstance", func(info *vk.InstanceCreateInfo, _ unsafe.Pointer, out *vk.VkInstance) vk.Result {
		d.LastInstanceInfo = info
		if result, failed := d.failure("vkCreateInstance"); failed {
			return result
		}
		handle := d.newHandle("vkCreateInstance")
		*out = vk.VkInstance(handle)
		d.record(Call{Name: "vkCreateInstance", Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkDestroyInstance", func(instance vk.VkInstance, _ unsafe.Pointer) {
		d.record(Call{Name: "vkDestroyInstance", Handle: uint64(instance)})
		d.markDestroyed(uint64(instance))
	})
	d.register("vkEnumerateInstanceExtensionProperties", func(_ *byte, count *uint32, out *vk.ExtensionProperties) vk.Result {
		return fillEnumeration(extensionProperties(d.InstanceExtensions), count, out)
	})
	d.register("vkEnumerateInstanceLayerProperties", func(count *uint32, out *vk.LayerProperties) vk.Result {
		layers := make([]vk.LayerProperties, len(d.Layers))
		for i, name := range d.Layers {
			copy(layers[i].LayerName[:], name)
		}
		return fillEnumeration(layers, count, out)
	})
	d.register("vkEnumeratePhysicalDevices", func(instance vk.VkInstance, count *uint32, out *vk.VkPhysicalDevice) vk.Result {
		if result, failed := d.failure("vkEnumeratePhysicalDevices"); failed {
			return result
		}
		devices := make([]vk.VkPhysicalDevice, d.PhysicalDeviceCount)
		for i := range devices {
			devices[i] = vk.VkPhysicalDevice(uint64(instance)<<8 | uint64(i+1))
		}
		return fillEnumeration(devices, count, out)
	})
	d.register("vkCreateDebugUtilsMessengerEXT", func(instance vk.VkInstance, info *vk.DebugUtilsMessengerCreateInfoEXT, _ unsafe.Pointer, out *vk.VkDebugUtilsMessengerEXT) vk.Result {
		d.LastMessengerInfo = info
		if result, failed := d.failure("vkCreateDebugUtilsMessengerEXT"); failed {
			return result
		}
		handle := d.newHandle("vkCreateDebugUtilsMessengerEXT")
		*out = vk.VkDebugUtilsMessengerEXT(handle)
		d.record(Call{Name: "vkCreateDebugUtilsMessengerEXT", Owner: uint64(instance), Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkDestroyDebugUtilsMessengerEXT", func(instance vk.VkInstance, messenger vk.VkDebugUtilsMessengerEXT, _ unsafe.Pointer) {
		d.record(Call{Name: "vkDestroyDebugUtilsMessengerEXT", Owner: uint64(instance), Handle: uint64(messenger)})
		d.markDestroyed(uint64(messenger))
	})
	d.register("vkDestroySurfaceKHR", func(instance vk.VkInstance, surface vk.VkSurfaceKHR, _ unsafe.Pointer) {
		d.record(Call{Name: "vkDestroySurfaceKHR", Owner: uint64(instance), Handle: uint64(surface)})
		d.markDestroyed(uint64(surface))
	})
	d.register("vkCreateDevice", func(physical vk.VkPhysicalDevice, info *vk.DeviceCreateInfo, _ unsafe.Pointer, out *vk.VkDevice) vk.Result {
		d.LastDeviceInfo = info
		if result, failed := d.failure("vkCreateDevice"); failed {
			return result
		}
		handle := d.newHandle("vkCreateDevice")
		*out = vk.VkDevice(handle)
		d.record(Call{Name: "vkCreateDevice", Owner: uint64(physical), Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkDestroyDevice", func(device vk.VkDevice, _ unsafe.Pointer) {
		d.record(Call{Name: "vkDestroyDevice", Handle: uint64(device)})
		d.markDestroyed(uint64(device))
	})
	d.register("vkEnumerateDeviceExtensionProperties", func(_ vk.VkPhysicalDevice, _ *byte, count *uint32, out *vk.ExtensionProperties) vk.Result {
		return fillEnumeration(extensionProperties(d.DeviceExtensions), count, out)
	})
	d.register("vkGetPhysicalDeviceProperties", func(_ vk.VkPhysicalDevice, out *vk.PhysicalDeviceProperties) {
		*out = d.Properties
	})
	d.register("vkGetPhysicalDeviceProperties2KHR", func(_ vk.VkPhysicalDevice, out *vk.PhysicalDeviceProperties2) {
		out.Properties = d.Properties
	})
	d.register("vkGetPhysicalDeviceFeatures2KHR", func(_ vk.VkPhysicalDevice, out *vk.PhysicalDeviceFeatures2) {
		out.Features = d.Features
	})
	d.register("vkGetPhysicalDeviceMemoryProperties", func(_ vk.VkPhysicalDevice, out *vk.PhysicalDeviceMemoryProperties) {
		*out = d.MemoryProperties
	})
	d.register("vkGetPhysicalDeviceQueueFamilyProperties", func(_ vk.VkPhysicalDevice, count *uint32, out *vk.QueueFamilyProperties) {
		fillEnumeration(d.QueueFamilies, count, out)
	})
	d.register("vkGetPhysicalDeviceSurfaceSupportKHR", func(_ vk.VkPhysicalDevice, family uint32, _ vk.VkSurfaceKHR, out *vk.Bool32) vk.Result {
		*out = vk.NewBool32(int(family) < len(d.QueueFamilies))
		return vk.VKSuccess
	})
	d.register("vkGetPhysicalDeviceSurfacePresentModesKHR", func(_ vk.VkPhysicalDevice, _ vk.VkSurfaceKHR, count *uint32, out *vk.PresentModeKHR) vk.Result {
		return fillEnumeration([]vk.PresentModeKHR{vk.PresentModeFIFOKHR, vk.PresentModeMailboxKHR}, count, out)
	})
}

func (d *FakeDriver) registerResources() {
	d.register("vkCreateBuffer", createFunc[vk.BufferCreateInfo, vk.VkBuffer](d, "vkCreateBuffer"))
	d.register("vkCreateBufferView", createFunc[vk.BufferViewCreateInfo, vk.VkBufferView](d, "vkCreateBufferView"))
	d.register("vkCreateImage", createFunc[vk.ImageCreateInfo, vk.VkImage](d, "vkCreateImage"))
	d.register("vkCreateImageView", createFunc[vk.ImageViewCreateInfo, vk.VkImageView](d, "vkCreateImageView"))
	d.register("vkCreateSemaphore", createFunc[vk.SemaphoreCreateInfo, vk.VkSemaphore](d, "vkCreateSemaphore"))
	d.register("vkCreateRenderPass", createFunc[vk.RenderPassCreateInfo, vk.VkRenderPass](d, "vkCreateRenderPass"))
	d.register("vkCreateDescriptorSetLayout", createFunc[vk.DescriptorSetLayoutCreateInfo, vk.VkDescriptorSetLayout](d, "vkCreateDescriptorSetLayout"))
	d.register("vkCreatePipelineLayout", createFunc[vk.PipelineLayoutCreateInfo, vk.VkPipelineLayout](d, "vkCreatePipelineLayout"))
	d.register("vkCreateSampler", createFunc[vk.SamplerCreateInfo, vk.VkSampler](d, "vkCreateSampler"))
	d.register("vkCreateFramebuffer", createFunc[vk.FramebufferCreateInfo, vk.VkFramebuffer](d, "vkCreateFramebuffer"))
	d.register("vkCreateDescriptorUpdateTemplateKHR", createFunc[vk.DescriptorUpdateTemplateCreateInfo, vk.VkDescriptorUpdateTemplateKHR](d, "vkCreateDescriptorUpdateTemplateKHR"))
	d.register("vkCreateQueryPool", createFunc[vk.QueryPoolCreateInfo, vk.VkQueryPool](d, "vkCreateQueryPool"))
	d.register("vkCreateShaderModule", createFunc[vk.ShaderModuleCreateInfo, vk.VkShaderModule](d, "vkCreateShaderModule"))
	d.register("vkCreateSwapchainKHR", createFunc[vk.SwapchainCreateInfoKHR, vk.VkSwapchainKHR](d, "vkCreateSwapchainKHR"))

	d.register("vkDestroyBuffer", destroyFunc[vk.VkBuffer](d, "vkDestroyBuffer"))
	d.register("vkDestroyBufferView", destroyFunc[vk.VkBufferView](d, "vkDestroyBufferView"))
	d.register("vkDestroyImage", destroyFunc[vk.VkImage](d, "vkDestroyImage"))
	d.register("vkDestroyImageView", destroyFunc[vk.VkImageView](d, "vkDestroyImageView"))
	d.register("vkDestroySemaphore", destroyFunc[vk.VkSemaphore](d, "vkDestroySemaphore"))
	d.register("vkDestroyRenderPass", destroyFunc[vk.VkRenderPass](d, "vkDestroyRenderPass"))
	d.register("vkDestroyDescriptorSetLayout", destroyFunc[vk.VkDescriptorSetLayout](d, "vkDestroyDescriptorSetLayout"))
	d.register("vkDestroyPipelineLayout", destroyFunc[vk.VkPipelineLayout](d, "vkDestroyPipelineLayout"))
	d.register("vkDestroyPipeline", destroyFunc[vk.VkPipeline](d, "vkDestroyPipeline"))
	d.register("vkDestroySampler", destroyFunc[vk.VkSampler](d, "vkDestroySampler"))
	d.register("vkDestroyFramebuffer", destroyFunc[vk.VkFramebuffer](d, "vkDestroyFramebuffer"))
	d.register("vkDestroyDescriptorUpdateTemplateKHR", destroyFunc[vk.VkDescriptorUpdateTemplateKHR](d, "vkDestroyDescriptorUpdateTemplateKHR"))
	d.register("vkDestroyQueryPool", destroyFunc[vk.VkQueryPool](d, "vkDestroyQueryPool"))
	d.register("vkDestroyShaderModule", destroyFunc[vk.VkShaderModule](d, "vkDestroyShaderModule"))
	d.register("vkDestroySwapchainKHR", destroyFunc[vk.VkSwapchainKHR](d, "vkDestroySwapchainKHR"))
	d.register("vkDestroyFence", destroyFunc[vk.VkFence](d, "vkDestroyFence"))

	pipelines := func(name string) func(vk.VkDevice, uint32, *vk.VkPipeline) vk.Result {
		return func(device vk.VkDevice, count uint32, out *vk.VkPipeline) vk.Result {
			if result, failed := d.failure(name); failed {
				return result
			}
			slots := unsafe.Slice(out, count)
			for i := range slots {
				handle := d.newHandle(name)
				slots[i] = vk.VkPipeline(handle)
				d.record(Call{Name: name, Owner: uint64(device), Handle: handle})
			}
			return vk.VKSuccess
		}
	}
	graphics := pipelines("vkCreateGraphicsPipelines")
	compute := pipelines("vkCreateComputePipelines")
	d.register("vkCreateGraphicsPipelines", func(device vk.VkDevice, _ vk.VkPipelineCache, count uint32, _ *vk.GraphicsPipelineCreateInfo, _ unsafe.Pointer, out *vk.VkPipeline) vk.Result {
		return graphics(device, count, out)
	})
	d.register("vkCreateComputePipelines", func(device vk.VkDevice, _ vk.VkPipelineCache, count uint32, _ *vk.ComputePipelineCreateInfo, _ unsafe.Pointer, out *vk.VkPipeline) vk.Result {
		return compute(device, count, out)
	})

	d.register("vkBindBufferMemory", func(device vk.VkDevice, buffer vk.VkBuffer, _ vk.VkDeviceMemory, _ uint64) vk.Result {
		d.record(Call{Name: "vkBindBufferMemory", Owner: uint64(device), Handle: uint64(buffer)})
		return vk.VKSuccess
	})
	d.register("vkBindImageMemory", func(device vk.VkDevice, image vk.VkImage, _ vk.VkDeviceMemory, _ uint64) vk.Result {
		d.record(Call{Name: "vkBindImageMemory", Owner: uint64(device), Handle: uint64(image)})
		return vk.VKSuccess
	})
	d.register("vkGetBufferMemoryRequirements", func(_ vk.VkDevice, _ vk.VkBuffer, out *vk.MemoryRequirements) {
		*out = d.MemoryRequirements
	})
	d.register("vkGetImageMemoryRequirements", func(_ vk.VkDevice, _ vk.VkImage, out *vk.MemoryRequirements) {
		*out = d.MemoryRequirements
	})
	d.register("vkGetSwapchainImagesKHR", func(_ vk.VkDevice, swapchain vk.VkSwapchainKHR, count *uint32, out *vk.VkImage) vk.Result {
		images := make([]vk.VkImage, d.SwapchainImageCount)
		for i := range images {
			images[i] = vk.VkImage(uint64(swapchain)<<8 | uint64(i+1))
		}
		return fillEnumeration(images, count, out)
	})
	d.register("vkUpdateDescriptorSetWithTemplateKHR", func(device vk.VkDevice, set vk.VkDescriptorSet, _ vk.VkDescriptorUpdateTemplateKHR, data unsafe.Pointer) {
		d.LastDescriptorUpdate = data
		d.record(Call{Name: "vkUpdateDescriptorSetWithTemplateKHR", Owner: uint64(device), Handle: uint64(set)})
	})
	d.register("vkGetQueryPoolResults", func(_ vk.VkDevice, _ vk.VkQueryPool, _ uint32, _ uint32, dataSize uintptr, data unsafe.Pointer, _ uint64, _ vk.QueryResultFlags) vk.Result {
		if dataSize >= unsafe.Sizeof(d.QueryValue) {
			*(*uint64)(data) = d.QueryValue
		}
		return vk.VKSuccess
	})
	d.register("vkGetDeviceQueue", func(device vk.VkDevice, family uint32, index uint32, out *vk.VkQueue) {
		*out = vk.VkQueue(uint64(device)<<8 | uint64(family)<<4 | uint64(index) | 1)
	})
	d.register("vkGetQueueCheckpointDataNV", func(_ vk.VkQueue, count *uint32, out *vk.CheckpointDataNV) {
		fillEnumeration(d.Checkpoints, count, out)
	})
	d.register("vkQueuePresentKHR", func(queue vk.VkQueue, _ *vk.PresentInfoKHR) vk.Result {
		d.record(Call{Name: "vkQueuePresentKHR", Owner: uint64(queue)})
		return d.PresentResult
	})
}

func (d *FakeDriver) registerMemory() {
	d.register("vkAllocateMemory", func(device vk.VkDevice, info *vk.MemoryAllocateInfo, _ unsafe.Pointer, out *vk.VkDeviceMemory) vk.Result {
		if result, failed := d.failure("vkAllocateMemory"); failed {
			return result
		}
		handle := d.newHandle("vkAllocateMemory")
		*out = vk.VkDeviceMemory(handle)
		d.memories.Put(*out, &memory{size: info.AllocationSize, backing: make([]byte, info.AllocationSize)})
		d.record(Call{Name: "vkAllocateMemory", Owner: uint64(device), Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkFreeMemory", func(device vk.VkDevice, handle vk.VkDeviceMemory, _ unsafe.Pointer) {
		d.memories.Delete(handle)
		d.record(Call{Name: "vkFreeMemory", Owner: uint64(device), Handle: uint64(handle)})
		d.markDestroyed(uint64(handle))
	})
	d.register("vkMapMemory", func(device vk.VkDevice, handle vk.VkDeviceMemory, offset uint64, _ uint64, _ uint32, data *unsafe.Pointer) vk.Result {
		mem, ok := d.memories.Get(handle)
		if !ok || offset > mem.size {
			return vk.VKErrorMemoryMapFailed
		}
		d.record(Call{Name: "vkMapMemory", Owner: uint64(device), Handle: uint64(handle)})
		if offset == mem.size {
			*data = nil
			return vk.VKSuccess
		}
		*data = unsafe.Pointer(&mem.backing[offset])
		return vk.VKSuccess
	})
	d.register("vkUnmapMemory", func(device vk.VkDevice, handle vk.VkDeviceMemory) {
		d.record(Call{Name: "vkUnmapMemory", Owner: uint64(device), Handle: uint64(handle)})
	})
	d.register("vkFlushMappedMemoryRanges", func(_ vk.VkDevice, count uint32, ranges *vk.MappedMemoryRange) vk.Result {
		d.FlushedRanges = append(d.FlushedRanges, unsafe.Slice(ranges, count)...)
		return vk.VKSuccess
	})
	d.register("vkInvalidateMappedMemoryRanges", func(_ vk.VkDevice, count uint32, ranges *vk.MappedMemoryRange) vk.Result {
		d.InvalidatedRanges = append(d.InvalidatedRanges, unsafe.Slice(ranges, count)...)
		return vk.VKSuccess
	})
}

// Pools track how many objects they have handed out. Allocations beyond capacity fail with
// VKErrorOutOfPoolMemory and frees return capacity.
func (d *FakeDriver) registerPools() {
	allocate := func(name string, device vk.VkDevice, poolHandle uint64, count uint32) ([]uint64, vk.Result) {
		if result, failed := d.failure(name); failed {
			return nil, result
		}
		p, ok := d.pools.Get(poolHandle)
		if !ok {
			return nil, vk.VKErrorUnknown
		}
		if p.capacity > 0 && p.allocated+int(count) > p.capacity {
			return nil, vk.VKErrorOutOfPoolMemory
		}
		p.allocated += int(count)
		handles := make([]uint64, count)
		for i := range handles {
			d.nextHandle++
			handles[i] = d.nextHandle
		}
		d.record(Call{Name: name, Owner: uint64(device), Handle: poolHandle, Count: int(count)})
		return handles, vk.VKSuccess
	}
	free := func(name string, device vk.VkDevice, poolHandle uint64, count uint32) vk.Result {
		d.record(Call{Name: name, Owner: uint64(device), Handle: poolHandle, Count: int(count)})
		if result, failed := d.failure(name); failed {
			return result
		}
		if p, ok := d.pools.Get(poolHandle); ok {
			p.allocated -= int(count)
		}
		return vk.VKSuccess
	}

	d.register("vkCreateDescriptorPool", func(device vk.VkDevice, info *vk.DescriptorPoolCreateInfo, _ unsafe.Pointer, out *vk.VkDescriptorPool) vk.Result {
		if result, failed := d.failure("vkCreateDescriptorPool"); failed {
			return result
		}
		handle := d.newHandle("vkCreateDescriptorPool")
		*out = vk.VkDescriptorPool(handle)
		d.pools.Put(handle, &pool{capacity: int(info.MaxSets)})
		d.record(Call{Name: "vkCreateDescriptorPool", Owner: uint64(device), Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkDestroyDescriptorPool", destroyFunc[vk.VkDescriptorPool](d, "vkDestroyDescriptorPool"))
	d.register("vkAllocateDescriptorSets", func(device vk.VkDevice, info *vk.DescriptorSetAllocateInfo, out *vk.VkDescriptorSet) vk.Result {
		handles, result := allocate("vkAllocateDescriptorSets", device, uint64(info.DescriptorPool), info.DescriptorSetCount)
		for i, handle := range handles {
			unsafe.Slice(out, len(handles))[i] = vk.VkDescriptorSet(handle)
		}
		return result
	})
	d.register("vkFreeDescriptorSets", func(device vk.VkDevice, pool vk.VkDescriptorPool, count uint32, _ *vk.VkDescriptorSet) vk.Result {
		return free("vkFreeDescriptorSets", device, uint64(pool), count)
	})

	d.register("vkCreateCommandPool", func(device vk.VkDevice, _ *vk.CommandPoolCreateInfo, _ unsafe.Pointer, out *vk.VkCommandPool) vk.Result {
		if result, failed := d.failure("vkCreateCommandPool"); failed {
			return result
		}
		handle := d.newHandle("vkCreateCommandPool")
		*out = vk.VkCommandPool(handle)
		d.pools.Put(handle, &pool{capacity: d.CommandPoolCapacity})
		d.record(Call{Name: "vkCreateCommandPool", Owner: uint64(device), Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkDestroyCommandPool", destroyFunc[vk.VkCommandPool](d, "vkDestroyCommandPool"))
	d.register("vkAllocateCommandBuffers", func(device vk.VkDevice, info *vk.CommandBufferAllocateInfo, out *vk.VkCommandBuffer) vk.Result {
		handles, result := allocate("vkAllocateCommandBuffers", device, uint64(info.CommandPool), info.CommandBufferCount)
		for i, handle := range handles {
			unsafe.Slice(out, len(handles))[i] = vk.VkCommandBuffer(handle)
		}
		return result
	})
	d.register("vkFreeCommandBuffers", func(device vk.VkDevice, pool vk.VkCommandPool, count uint32, _ *vk.VkCommandBuffer) {
		free("vkFreeCommandBuffers", device, uint64(pool), count)
	})
}

func (d *FakeDriver) registerSync() {
	d.register("vkCreateFence", func(device vk.VkDevice, info *vk.FenceCreateInfo, _ unsafe.Pointer, out *vk.VkFence) vk.Result {
		if result, failed := d.failure("vkCreateFence"); failed {
			return result
		}
		handle := d.newHandle("vkCreateFence")
		*out = vk.VkFence(handle)
		d.fences.Put(*out, info.Flags&vk.FenceCreateSignaled != 0)
		d.record(Call{Name: "vkCreateFence", Owner: uint64(device), Handle: handle})
		return vk.VKSuccess
	})
	d.register("vkWaitForFences", func(_ vk.VkDevice, count uint32, fences *vk.VkFence, _ vk.Bool32, _ uint64) vk.Result {
		for _, fence := range unsafe.Slice(fences, count) {
			if signaled, _ := d.fences.Get(fence); !signaled {
				return vk.VKTimeout
			}
		}
		return vk.VKSuccess
	})
	d.register("vkGetFenceStatus", func(_ vk.VkDevice, fence vk.VkFence) vk.Result {
		if signaled, _ := d.fences.Get(fence); signaled {
			return vk.VKSuccess
		}
		return vk.VKNotReady
	})
	d.register("vkResetFences", func(_ vk.VkDevice, count uint32, fences *vk.VkFence) vk.Result {
		for _, fence := range unsafe.Slice(fences, count) {
			d.fences.Put(fence, false)
		}
		return vk.VKSuccess
	})
	d.register("vkQueueSubmit", func(queue vk.VkQueue, count uint32, _ *vk.SubmitInfo, fence vk.VkFence) vk.Result {
		if result, failed := d.failure("vkQueueSubmit"); failed {
			return result
		}
		d.record(Call{Name: "vkQueueSubmit", Owner: uint64(queue), Handle: uint64(fence), Count: int(count)})
		if fence != 0 {
			d.fences.Put(fence, true)
		}
		return vk.VKSuccess
	})
}
