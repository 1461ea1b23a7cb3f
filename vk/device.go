package vk

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/vkngwrapper/vkw/vk/internal/utils"
)

// Device owns a VkDevice together with the dispatch table loaded for it. Every resource it
// creates borrows the device handle and table, so the Device must be reset last.
type Device struct {
	Ownerless[VkDevice, DeviceDispatch]
}

func (d *Device) Take() Device {
	return Device{Ownerless: d.Ownerless.Take()}
}

func (d *Device) MoveFrom(src *Device) {
	d.Ownerless.MoveFrom(&src.Ownerless)
}

// CreateDevice creates a logical device on physical and loads its device tier into dld.
// enabledFeatures is chained through the create info, so its own chain may carry extension
// feature structures. Failure is not an error: the returned Device is empty and the reason is
// logged.
func CreateDevice(physical VkPhysicalDevice, queues Span[DeviceQueueCreateInfo], extensions []string, enabledFeatures *PhysicalDeviceFeatures2, dld *DeviceDispatch) Device {
	logger := dld.logger()
	if dld.CreateDevice == nil {
		logger.Error("Device::Create instance entry points were not loaded")
		return Device{}
	}

	names := utils.NewCStringArray(extensions)
	defer names.Unpin()

	info := DeviceCreateInfo{
		SType:                 StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:  queues.Size(),
		QueueCreateInfos:      queues.Data(),
		EnabledExtensionCount: names.Len(),
		EnabledExtensionNames: names.Data(),
	}
	if enabledFeatures != nil {
		enabledFeatures.SType = StructureTypePhysicalDeviceFeatures2
		info.Next = unsafe.Pointer(enabledFeatures)
	}

	// Every block the create info reaches stays pinned until the driver returns
	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(&info)
	for _, queue := range queues.All() {
		if queue.QueuePriorities != nil {
			pinner.Pin(queue.QueuePriorities)
		}
	}
	if data := queues.Data(); data != nil {
		pinner.Pin(data)
	}
	if enabledFeatures != nil {
		pinner.Pin(enabledFeatures)
	}

	logger.Debug("Device::Create",
		slog.Int("QueueFamilies", int(queues.Size())),
		slog.Int("Extensions", len(extensions)),
	)

	var device VkDevice
	if result := dld.CreateDevice(physical, &info, nil, &device); result != VKSuccess {
		logger.Error("Device::Create failed", slog.String("Result", result.String()))
		return Device{}
	}
	if !LoadDevice(device, dld) {
		logger.Error("Device::Create failed to load device entry points")
		dld.DestroyDevice(device, nil)
		return Device{}
	}
	return Device{Ownerless: NewOwnerless(device, dld)}
}

// GetQueue returns queue 0 of familyIndex
func (d *Device) GetQueue(familyIndex uint32) Queue {
	var queue VkQueue
	d.dld.GetDeviceQueue(d.handle, familyIndex, 0, &queue)
	return NewQueue(queue, d.dld)
}

func (d *Device) CreateBuffer(info *BufferCreateInfo) (Buffer, error) {
	var buffer VkBuffer
	if err := Check(d.dld.CreateBuffer(d.handle, info, nil, &buffer)); err != nil {
		return Buffer{}, err
	}
	return Buffer{Handle: NewHandle(buffer, d.handle, d.dld)}, nil
}

func (d *Device) CreateBufferView(info *BufferViewCreateInfo) (BufferView, error) {
	var view VkBufferView
	if err := Check(d.dld.CreateBufferView(d.handle, info, nil, &view)); err != nil {
		return BufferView{}, err
	}
	return NewHandle(view, d.handle, d.dld), nil
}

func (d *Device) CreateImage(info *ImageCreateInfo) (Image, error) {
	var image VkImage
	if err := Check(d.dld.CreateImage(d.handle, info, nil, &image)); err != nil {
		return Image{}, err
	}
	return Image{Handle: NewHandle(image, d.handle, d.dld)}, nil
}

func (d *Device) CreateImageView(info *ImageViewCreateInfo) (ImageView, error) {
	var view VkImageView
	if err := Check(d.dld.CreateImageView(d.handle, info, nil, &view)); err != nil {
		return ImageView{}, err
	}
	return NewHandle(view, d.handle, d.dld), nil
}

// CreateSemaphore creates a binary semaphore with default parameters
func (d *Device) CreateSemaphore() (Semaphore, error) {
	info := SemaphoreCreateInfo{SType: StructureTypeSemaphoreCreateInfo}
	var semaphore VkSemaphore
	if err := Check(d.dld.CreateSemaphore(d.handle, &info, nil, &semaphore)); err != nil {
		return Semaphore{}, err
	}
	return NewHandle(semaphore, d.handle, d.dld), nil
}

func (d *Device) CreateFence(info *FenceCreateInfo) (Fence, error) {
	var fence VkFence
	if err := Check(d.dld.CreateFence(d.handle, info, nil, &fence)); err != nil {
		return Fence{}, err
	}
	return Fence{Handle: NewHandle(fence, d.handle, d.dld)}, nil
}

func (d *Device) CreateDescriptorPool(info *DescriptorPoolCreateInfo) (DescriptorPool, error) {
	var pool VkDescriptorPool
	if err := Check(d.dld.CreateDescriptorPool(d.handle, info, nil, &pool)); err != nil {
		return DescriptorPool{}, err
	}
	return DescriptorPool{Handle: NewHandle(pool, d.handle, d.dld)}, nil
}

func (d *Device) CreateRenderPass(info *RenderPassCreateInfo) (RenderPass, error) {
	var renderPass VkRenderPass
	if err := Check(d.dld.CreateRenderPass(d.handle, info, nil, &renderPass)); err != nil {
		return RenderPass{}, err
	}
	return NewHandle(renderPass, d.handle, d.dld), nil
}

func (d *Device) CreateDescriptorSetLayout(info *DescriptorSetLayoutCreateInfo) (DescriptorSetLayout, error) {
	var layout VkDescriptorSetLayout
	if err := Check(d.dld.CreateDescriptorSetLayout(d.handle, info, nil, &layout)); err != nil {
		return DescriptorSetLayout{}, err
	}
	return NewHandle(layout, d.handle, d.dld), nil
}

func (d *Device) CreatePipelineLayout(info *PipelineLayoutCreateInfo) (PipelineLayout, error) {
	var layout VkPipelineLayout
	if err := Check(d.dld.CreatePipelineLayout(d.handle, info, nil, &layout)); err != nil {
		return PipelineLayout{}, err
	}
	return NewHandle(layout, d.handle, d.dld), nil
}

// CreateGraphicsPipeline creates a single graphics pipeline without a pipeline cache
func (d *Device) CreateGraphicsPipeline(info *GraphicsPipelineCreateInfo) (Pipeline, error) {
	var pipeline VkPipeline
	if err := Check(d.dld.CreateGraphicsPipelines(d.handle, 0, 1, info, nil, &pipeline)); err != nil {
		return Pipeline{}, err
	}
	return NewHandle(pipeline, d.handle, d.dld), nil
}

// CreateComputePipeline creates a single compute pipeline without a pipeline cache
func (d *Device) CreateComputePipeline(info *ComputePipelineCreateInfo) (Pipeline, error) {
	var pipeline VkPipeline
	if err := Check(d.dld.CreateComputePipelines(d.handle, 0, 1, info, nil, &pipeline)); err != nil {
		return Pipeline{}, err
	}
	return NewHandle(pipeline, d.handle, d.dld), nil
}

func (d *Device) CreateSampler(info *SamplerCreateInfo) (Sampler, error) {
	var sampler VkSampler
	if err := Check(d.dld.CreateSampler(d.handle, info, nil, &sampler)); err != nil {
		return Sampler{}, err
	}
	return NewHandle(sampler, d.handle, d.dld), nil
}

func (d *Device) CreateFramebuffer(info *FramebufferCreateInfo) (Framebuffer, error) {
	var framebuffer VkFramebuffer
	if err := Check(d.dld.CreateFramebuffer(d.handle, info, nil, &framebuffer)); err != nil {
		return Framebuffer{}, err
	}
	return NewHandle(framebuffer, d.handle, d.dld), nil
}

func (d *Device) CreateCommandPool(info *CommandPoolCreateInfo) (CommandPool, error) {
	var pool VkCommandPool
	if err := Check(d.dld.CreateCommandPool(d.handle, info, nil, &pool)); err != nil {
		return CommandPool{}, err
	}
	return CommandPool{Handle: NewHandle(pool, d.handle, d.dld)}, nil
}

func (d *Device) CreateDescriptorUpdateTemplateKHR(info *DescriptorUpdateTemplateCreateInfo) (DescriptorUpdateTemplateKHR, error) {
	if d.dld.CreateDescriptorUpdateTemplateKHR == nil {
		return DescriptorUpdateTemplateKHR{}, missingEntryPoint("vkCreateDescriptorUpdateTemplateKHR")
	}
	var template VkDescriptorUpdateTemplateKHR
	if err := Check(d.dld.CreateDescriptorUpdateTemplateKHR(d.handle, info, nil, &template)); err != nil {
		return DescriptorUpdateTemplateKHR{}, err
	}
	return NewHandle(template, d.handle, d.dld), nil
}

func (d *Device) CreateQueryPool(info *QueryPoolCreateInfo) (QueryPool, error) {
	var pool VkQueryPool
	if err := Check(d.dld.CreateQueryPool(d.handle, info, nil, &pool)); err != nil {
		return QueryPool{}, err
	}
	return NewHandle(pool, d.handle, d.dld), nil
}

func (d *Device) CreateShaderModule(info *ShaderModuleCreateInfo) (ShaderModule, error) {
	var module VkShaderModule
	if err := Check(d.dld.CreateShaderModule(d.handle, info, nil, &module)); err != nil {
		return ShaderModule{}, err
	}
	return NewHandle(module, d.handle, d.dld), nil
}

func (d *Device) CreateSwapchainKHR(info *SwapchainCreateInfoKHR) (SwapchainKHR, error) {
	if d.dld.CreateSwapchainKHR == nil {
		return SwapchainKHR{}, missingEntryPoint("vkCreateSwapchainKHR")
	}
	var swapchain VkSwapchainKHR
	if err := Check(d.dld.CreateSwapchainKHR(d.handle, info, nil, &swapchain)); err != nil {
		return SwapchainKHR{}, err
	}
	return SwapchainKHR{Handle: NewHandle(swapchain, d.handle, d.dld)}, nil
}

// TryAllocateMemory allocates device memory and returns an empty DeviceMemory on failure.
// Callers probing several memory types use it to fall back without unwinding.
func (d *Device) TryAllocateMemory(info *MemoryAllocateInfo) DeviceMemory {
	var memory VkDeviceMemory
	if result := d.dld.AllocateMemory(d.handle, info, nil, &memory); result != VKSuccess {
		d.dld.logger().Debug("Device::TryAllocateMemory failed",
			slog.Uint64("Size", info.AllocationSize),
			slog.Int("MemoryType", int(info.MemoryTypeIndex)),
			slog.String("Result", result.String()),
		)
		return DeviceMemory{}
	}
	return NewDeviceMemory(memory, info.AllocationSize, d.handle, d.dld)
}

func (d *Device) AllocateMemory(info *MemoryAllocateInfo) (DeviceMemory, error) {
	var memory VkDeviceMemory
	if err := Check(d.dld.AllocateMemory(d.handle, info, nil, &memory)); err != nil {
		return DeviceMemory{}, errors.Wrapf(err, "allocating %d bytes from memory type %d", info.AllocationSize, info.MemoryTypeIndex)
	}
	return NewDeviceMemory(memory, info.AllocationSize, d.handle, d.dld), nil
}

func (d *Device) GetBufferMemoryRequirements(buffer VkBuffer) MemoryRequirements {
	var requirements MemoryRequirements
	d.dld.GetBufferMemoryRequirements(d.handle, buffer, &requirements)
	return requirements
}

func (d *Device) GetImageMemoryRequirements(image VkImage) MemoryRequirements {
	var requirements MemoryRequirements
	d.dld.GetImageMemoryRequirements(d.handle, image, &requirements)
	return requirements
}

func (d *Device) UpdateDescriptorSets(writes Span[WriteDescriptorSet], copies Span[CopyDescriptorSet]) {
	d.dld.UpdateDescriptorSets(d.handle, writes.Size(), writes.Data(), copies.Size(), copies.Data())
}

// UpdateDescriptorSet writes set from data laid out as described by template
func (d *Device) UpdateDescriptorSet(set VkDescriptorSet, template VkDescriptorUpdateTemplateKHR, data unsafe.Pointer) error {
	if d.dld.UpdateDescriptorSetWithTemplateKHR == nil {
		return missingEntryPoint("vkUpdateDescriptorSetWithTemplateKHR")
	}
	d.dld.UpdateDescriptorSetWithTemplateKHR(d.handle, set, template, data)
	return nil
}

// AcquireNextImageKHR returns the native status unchanged, since VKTimeout, VKNotReady and
// VKSuboptimalKHR are ordinary outcomes. Without the swapchain extension it reports
// VKErrorExtensionNotPresent.
func (d *Device) AcquireNextImageKHR(swapchain VkSwapchainKHR, timeout uint64, semaphore VkSemaphore, fence VkFence, imageIndex *uint32) Result {
	if d.dld.AcquireNextImageKHR == nil {
		return VKErrorExtensionNotPresent
	}
	return d.dld.AcquireNextImageKHR(d.handle, swapchain, timeout, semaphore, fence, imageIndex)
}

func (d *Device) WaitIdle() Result {
	return d.dld.DeviceWaitIdle(d.handle)
}

func (d *Device) ResetQueryPoolEXT(pool VkQueryPool, first, count uint32) error {
	if d.dld.ResetQueryPoolEXT == nil {
		return missingEntryPoint("vkResetQueryPoolEXT")
	}
	d.dld.ResetQueryPoolEXT(d.handle, pool, first, count)
	return nil
}

// GetQueryResults copies count query results into data, stride bytes apart
func (d *Device) GetQueryResults(pool VkQueryPool, first, count uint32, dataSize uintptr, data unsafe.Pointer, stride uint64, flags QueryResultFlags) error {
	return Check(d.dld.GetQueryPoolResults(d.handle, pool, first, count, dataSize, data, stride, flags))
}

// GetQueryResult reads a single query result into a T. The binary layout of T must match the
// layout the query produces for flags, for example uint64 with QueryResult64.
func GetQueryResult[T any](d *Device, pool VkQueryPool, first uint32, flags QueryResultFlags) (T, error) {
	var value T
	size := unsafe.Sizeof(value)
	err := d.GetQueryResults(pool, first, 1, size, unsafe.Pointer(&value), uint64(size), flags)
	return value, err
}
