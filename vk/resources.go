package vk

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/vkngwrapper/vkw/vk/internal/utils"
)

type (
	BufferView                  = Handle[VkBufferView, VkDevice, DeviceDispatch]
	DebugCallback               = Handle[VkDebugUtilsMessengerEXT, VkInstance, InstanceDispatch]
	DescriptorSetLayout         = Handle[VkDescriptorSetLayout, VkDevice, DeviceDispatch]
	DescriptorUpdateTemplateKHR = Handle[VkDescriptorUpdateTemplateKHR, VkDevice, DeviceDispatch]
	Framebuffer                 = Handle[VkFramebuffer, VkDevice, DeviceDispatch]
	ImageView                   = Handle[VkImageView, VkDevice, DeviceDispatch]
	Pipeline                    = Handle[VkPipeline, VkDevice, DeviceDispatch]
	PipelineLayout              = Handle[VkPipelineLayout, VkDevice, DeviceDispatch]
	QueryPool                   = Handle[VkQueryPool, VkDevice, DeviceDispatch]
	RenderPass                  = Handle[VkRenderPass, VkDevice, DeviceDispatch]
	Sampler                     = Handle[VkSampler, VkDevice, DeviceDispatch]
	Semaphore                   = Handle[VkSemaphore, VkDevice, DeviceDispatch]
	ShaderModule                = Handle[VkShaderModule, VkDevice, DeviceDispatch]
	SurfaceKHR                  = Handle[VkSurfaceKHR, VkInstance, InstanceDispatch]
)

// Buffer owns a VkBuffer
type Buffer struct {
	Handle[VkBuffer, VkDevice, DeviceDispatch]
}

func (b *Buffer) Take() Buffer {
	return Buffer{Handle: b.Handle.Take()}
}

func (b *Buffer) MoveFrom(src *Buffer) {
	b.Handle.MoveFrom(&src.Handle)
}

// BindMemory attaches memory to the buffer at offset
func (b *Buffer) BindMemory(memory VkDeviceMemory, offset uint64) error {
	return Check(b.dld.BindBufferMemory(b.owner, b.handle, memory, offset))
}

// Image owns a VkImage
type Image struct {
	Handle[VkImage, VkDevice, DeviceDispatch]
}

func (i *Image) Take() Image {
	return Image{Handle: i.Handle.Take()}
}

func (i *Image) MoveFrom(src *Image) {
	i.Handle.MoveFrom(&src.Handle)
}

// BindMemory attaches memory to the image at offset
func (i *Image) BindMemory(memory VkDeviceMemory, offset uint64) error {
	return Check(i.dld.BindImageMemory(i.owner, i.handle, memory, offset))
}

// DeviceMemory owns a VkDeviceMemory allocation and remembers its size, so mapped ranges can be
// exposed as bounded byte slices
type DeviceMemory struct {
	Handle[VkDeviceMemory, VkDevice, DeviceDispatch]

	size uint64
}

// NewDeviceMemory takes ownership of memory, which was allocated with size bytes
func NewDeviceMemory(memory VkDeviceMemory, size uint64, device VkDevice, dld *DeviceDispatch) DeviceMemory {
	return DeviceMemory{Handle: NewHandle(memory, device, dld), size: size}
}

func (m *DeviceMemory) Take() DeviceMemory {
	return DeviceMemory{Handle: m.Handle.Take(), size: m.size}
}

func (m *DeviceMemory) MoveFrom(src *DeviceMemory) {
	m.Handle.MoveFrom(&src.Handle)
	m.size = src.size
}

// Size returns the allocation size in bytes
func (m *DeviceMemory) Size() uint64 {
	return m.size
}

// Map maps size bytes starting at offset into host memory. WholeSize maps the rest of the
// allocation. The returned slice aliases driver memory and is only valid until Unmap. An
// empty range is rejected before the driver is called.
func (m *DeviceMemory) Map(offset, size uint64) ([]byte, error) {
	length := size
	if size == WholeSize {
		if offset > m.size {
			return nil, errors.Newf("offset %d is past the end of the allocation, which is size %d", offset, m.size)
		}
		length = m.size - offset
	} else if size == 0 {
		return nil, errors.New("cannot map an empty range")
	} else if m.size > 0 && offset+size > m.size {
		return nil, errors.Newf("offset %d places the end of the range %d past the end of the allocation, which is size %d", offset, offset+size, m.size)
	}
	if length == 0 {
		return nil, errors.Newf("offset %d leaves nothing to map in the allocation, which is size %d", offset, m.size)
	}

	var data unsafe.Pointer
	if err := Check(m.dld.MapMemory(m.owner, m.handle, offset, size, 0, &data)); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return unsafe.Slice((*byte)(data), length), nil
}

// Unmap releases the host mapping
func (m *DeviceMemory) Unmap() {
	m.dld.UnmapMemory(m.owner, m.handle)
}

// FlushRange makes host writes in [offset, offset+size) visible to the device. The range is
// widened to nonCoherentAtomSize, which must be a power of two.
func (m *DeviceMemory) FlushRange(offset, size, nonCoherentAtomSize uint64) error {
	r, err := m.mappedRange(offset, size, nonCoherentAtomSize)
	if err != nil {
		return err
	}
	return Check(m.dld.FlushMappedMemoryRanges(m.owner, 1, &r))
}

// InvalidateRange makes device writes in [offset, offset+size) visible to the host. The range
// is widened to nonCoherentAtomSize, which must be a power of two.
func (m *DeviceMemory) InvalidateRange(offset, size, nonCoherentAtomSize uint64) error {
	r, err := m.mappedRange(offset, size, nonCoherentAtomSize)
	if err != nil {
		return err
	}
	return Check(m.dld.InvalidateMappedMemoryRanges(m.owner, 1, &r))
}

func (m *DeviceMemory) mappedRange(offset, size, nonCoherentAtomSize uint64) (MappedMemoryRange, error) {
	if err := utils.CheckPow2(nonCoherentAtomSize, "nonCoherentAtomSize"); err != nil {
		return MappedMemoryRange{}, err
	}
	if offset > m.size {
		return MappedMemoryRange{}, errors.Newf("offset %d is past the end of the allocation, which is size %d", offset, m.size)
	}
	if size != WholeSize && offset+size > m.size {
		return MappedMemoryRange{}, errors.Newf("offset %d places the end of the range %d past the end of the allocation, which is size %d", offset, offset+size, m.size)
	}

	r := MappedMemoryRange{
		SType:  StructureTypeMappedMemoryRange,
		Memory: m.handle,
		Offset: utils.AlignDown(offset, nonCoherentAtomSize),
	}
	r.Size = m.size - r.Offset
	if size != WholeSize {
		alignedSize := utils.AlignUp(size+(offset-r.Offset), nonCoherentAtomSize)
		if alignedSize < r.Size {
			r.Size = alignedSize
		}
	}
	return r, nil
}

// Fence owns a VkFence
type Fence struct {
	Handle[VkFence, VkDevice, DeviceDispatch]
}

func (f *Fence) Take() Fence {
	return Fence{Handle: f.Handle.Take()}
}

func (f *Fence) MoveFrom(src *Fence) {
	f.Handle.MoveFrom(&src.Handle)
}

// Wait blocks until the fence is signaled or timeout nanoseconds pass. VKTimeout is an
// ordinary outcome and is returned as is.
func (f *Fence) Wait(timeout uint64) Result {
	return f.dld.WaitForFences(f.owner, 1, &f.handle, True, timeout)
}

// GetStatus returns VKSuccess when signaled and VKNotReady otherwise
func (f *Fence) GetStatus() Result {
	return f.dld.GetFenceStatus(f.owner, f.handle)
}

// ResetStatus returns the fence to the unsignaled state. Unlike Reset, the fence stays owned.
func (f *Fence) ResetStatus() error {
	return Check(f.dld.ResetFences(f.owner, 1, &f.handle))
}

// DescriptorPool owns a VkDescriptorPool
type DescriptorPool struct {
	Handle[VkDescriptorPool, VkDevice, DeviceDispatch]
}

func (p *DescriptorPool) Take() DescriptorPool {
	return DescriptorPool{Handle: p.Handle.Take()}
}

func (p *DescriptorPool) MoveFrom(src *DescriptorPool) {
	p.Handle.MoveFrom(&src.Handle)
}

// Allocate allocates info.DescriptorSetCount sets from the pool. An exhausted pool is not an
// error: the returned batch reports IsOutOfPoolMemory and the caller may retry on another pool.
func (p *DescriptorPool) Allocate(info *DescriptorSetAllocateInfo) (DescriptorSets, error) {
	sets := make([]VkDescriptorSet, info.DescriptorSetCount)
	switch result := p.dld.AllocateDescriptorSets(p.owner, info, unsafe.SliceData(sets)); result {
	case VKSuccess:
		return NewPoolAllocations(sets, p.owner, p.handle, p.dld, freeDescriptorSets), nil
	case VKErrorOutOfPoolMemory:
		p.dld.logger().Debug("DescriptorPool::Allocate out of pool memory",
			slog.Int("Count", int(info.DescriptorSetCount)),
		)
		return DescriptorSets{}, nil
	default:
		return DescriptorSets{}, Check(result)
	}
}

// CommandPool owns a VkCommandPool
type CommandPool struct {
	Handle[VkCommandPool, VkDevice, DeviceDispatch]
}

func (p *CommandPool) Take() CommandPool {
	return CommandPool{Handle: p.Handle.Take()}
}

func (p *CommandPool) MoveFrom(src *CommandPool) {
	p.Handle.MoveFrom(&src.Handle)
}

// Allocate allocates numBuffers command buffers at level. An exhausted pool yields a batch
// that reports IsOutOfPoolMemory.
func (p *CommandPool) Allocate(numBuffers uint32, level CommandBufferLevel) (CommandBuffers, error) {
	if numBuffers == 0 {
		return CommandBuffers{}, errors.New("at least one command buffer must be allocated")
	}
	info := CommandBufferAllocateInfo{
		SType:              StructureTypeCommandBufferAllocateInfo,
		CommandPool:        p.handle,
		Level:              level,
		CommandBufferCount: numBuffers,
	}
	buffers := make([]VkCommandBuffer, numBuffers)
	switch result := p.dld.AllocateCommandBuffers(p.owner, &info, unsafe.SliceData(buffers)); result {
	case VKSuccess:
		return NewPoolAllocations(buffers, p.owner, p.handle, p.dld, freeCommandBuffers), nil
	case VKErrorOutOfPoolMemory:
		p.dld.logger().Debug("CommandPool::Allocate out of pool memory",
			slog.Int("Count", int(numBuffers)),
		)
		return CommandBuffers{}, nil
	default:
		return CommandBuffers{}, Check(result)
	}
}

// SwapchainKHR owns a VkSwapchainKHR
type SwapchainKHR struct {
	Handle[VkSwapchainKHR, VkDevice, DeviceDispatch]
}

func (s *SwapchainKHR) Take() SwapchainKHR {
	return SwapchainKHR{Handle: s.Handle.Take()}
}

func (s *SwapchainKHR) MoveFrom(src *SwapchainKHR) {
	s.Handle.MoveFrom(&src.Handle)
}

// GetImages returns the presentable images. They belong to the swapchain and must not be
// destroyed individually.
func (s *SwapchainKHR) GetImages() ([]VkImage, error) {
	if s.dld.GetSwapchainImagesKHR == nil {
		return nil, missingEntryPoint("vkGetSwapchainImagesKHR")
	}
	return enumerate(func(count *uint32, images *VkImage) Result {
		return s.dld.GetSwapchainImagesKHR(s.owner, s.handle, count, images)
	})
}

// enumerate runs the native two-call idiom: query the count, then fill. It retries while the
// driver reports VKIncomplete because the set grew between calls.
func enumerate[T any](call func(count *uint32, data *T) Result) ([]T, error) {
	for {
		var count uint32
		if err := Check(call(&count, nil)); err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, nil
		}
		values := make([]T, count)
		result := call(&count, unsafe.SliceData(values))
		if result == VKIncomplete {
			continue
		}
		if err := Check(result); err != nil {
			return nil, err
		}
		return values[:count], nil
	}
}

func enumerateNoResult[T any](call func(count *uint32, data *T)) []T {
	var count uint32
	call(&count, nil)
	if count == 0 {
		return nil
	}
	values := make([]T, count)
	call(&count, unsafe.SliceData(values))
	return values[:count]
}
