package vk

import (
	"math"

	"github.com/vkngwrapper/core/v2/common"
)

// Bool32 is the native 32-bit boolean
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// NewBool32 converts a Go bool
func NewBool32(b bool) Bool32 {
	if b {
		return True
	}
	return False
}

const (
	// WholeSize requests the remainder of a memory object or buffer from an offset
	WholeSize uint64 = math.MaxUint64
	// Forever is a fence or acquire timeout that never expires
	Forever uint64 = math.MaxUint64
	// QueueFamilyIgnored marks a barrier that does not transfer queue ownership
	QueueFamilyIgnored uint32 = math.MaxUint32

	maxExtensionNameSize = 256
	maxDescriptionSize   = 256
	maxMemoryTypes       = 32
	maxMemoryHeaps       = 16
	uuidSize             = 16
)

type StructureType int32

const (
	StructureTypeApplicationInfo                    StructureType = 0
	StructureTypeInstanceCreateInfo                 StructureType = 1
	StructureTypeDeviceQueueCreateInfo              StructureType = 2
	StructureTypeDeviceCreateInfo                   StructureType = 3
	StructureTypeSubmitInfo                         StructureType = 4
	StructureTypeMemoryAllocateInfo                 StructureType = 5
	StructureTypeMappedMemoryRange                  StructureType = 6
	StructureTypeFenceCreateInfo                    StructureType = 8
	StructureTypeSemaphoreCreateInfo                StructureType = 9
	StructureTypeQueryPoolCreateInfo                StructureType = 11
	StructureTypeBufferCreateInfo                   StructureType = 12
	StructureTypeBufferViewCreateInfo               StructureType = 13
	StructureTypeImageCreateInfo                    StructureType = 14
	StructureTypeImageViewCreateInfo                StructureType = 15
	StructureTypeShaderModuleCreateInfo             StructureType = 16
	StructureTypePipelineShaderStageCreateInfo      StructureType = 18
	StructureTypeGraphicsPipelineCreateInfo         StructureType = 28
	StructureTypeComputePipelineCreateInfo          StructureType = 29
	StructureTypePipelineLayoutCreateInfo           StructureType = 30
	StructureTypeSamplerCreateInfo                  StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo      StructureType = 32
	StructureTypeDescriptorPoolCreateInfo           StructureType = 33
	StructureTypeDescriptorSetAllocateInfo          StructureType = 34
	StructureTypeWriteDescriptorSet                 StructureType = 35
	StructureTypeCopyDescriptorSet                  StructureType = 36
	StructureTypeFramebufferCreateInfo              StructureType = 37
	StructureTypeRenderPassCreateInfo               StructureType = 38
	StructureTypeCommandPoolCreateInfo              StructureType = 39
	StructureTypeCommandBufferAllocateInfo          StructureType = 40
	StructureTypeCommandBufferBeginInfo             StructureType = 42
	StructureTypeRenderPassBeginInfo                StructureType = 43
	StructureTypeBufferMemoryBarrier                StructureType = 44
	StructureTypeImageMemoryBarrier                 StructureType = 45
	StructureTypeMemoryBarrier                      StructureType = 46
	StructureTypeSwapchainCreateInfoKHR             StructureType = 1000001000
	StructureTypePresentInfoKHR                     StructureType = 1000001001
	StructureTypePhysicalDeviceFeatures2            StructureType = 1000059000
	StructureTypePhysicalDeviceProperties2          StructureType = 1000059001
	StructureTypeDescriptorUpdateTemplateCreateInfo StructureType = 1000085000
	StructureTypeDebugUtilsMessengerCreateInfoEXT   StructureType = 1000128004
	StructureTypeCheckpointDataNV                   StructureType = 1000206000
)

type Format int32

type ImageLayout int32

const (
	ImageLayoutUndefined              ImageLayout = 0
	ImageLayoutGeneral                ImageLayout = 1
	ImageLayoutColorAttachmentOptimal ImageLayout = 2
	ImageLayoutTransferSrcOptimal     ImageLayout = 6
	ImageLayoutTransferDstOptimal     ImageLayout = 7
	ImageLayoutPresentSrcKHR          ImageLayout = 1000001002
)

type SamplerFilter int32

const (
	FilterNearest SamplerFilter = 0
	FilterLinear  SamplerFilter = 1
)

type IndexType int32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

type SubpassContents int32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
)

type PresentModeKHR int32

const (
	PresentModeImmediateKHR   PresentModeKHR = 0
	PresentModeMailboxKHR     PresentModeKHR = 1
	PresentModeFIFOKHR        PresentModeKHR = 2
	PresentModeFIFORelaxedKHR PresentModeKHR = 3
)

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGPU    PhysicalDeviceType = 3
	PhysicalDeviceTypeCPU           PhysicalDeviceType = 4
)

// QueryResultFlags control how query results are written by GetQueryResults
type QueryResultFlags int32

var queryResultFlagsMapping = common.NewFlagStringMapping[QueryResultFlags]()

func (f QueryResultFlags) Register(str string) {
	queryResultFlagsMapping.Register(f, str)
}
func (f QueryResultFlags) String() string {
	return queryResultFlagsMapping.FlagsToString(f)
}

const (
	QueryResult64 QueryResultFlags = 1 << iota
	QueryResultWait
	QueryResultWithAvailability
	QueryResultPartial
)

// FenceCreateFlags control the initial state of a fence
type FenceCreateFlags int32

var fenceCreateFlagsMapping = common.NewFlagStringMapping[FenceCreateFlags]()

func (f FenceCreateFlags) Register(str string) {
	fenceCreateFlagsMapping.Register(f, str)
}
func (f FenceCreateFlags) String() string {
	return fenceCreateFlagsMapping.FlagsToString(f)
}

const (
	FenceCreateSignaled FenceCreateFlags = 1 << iota
)

// QueueFlags describe the capabilities of a queue family
type QueueFlags int32

var queueFlagsMapping = common.NewFlagStringMapping[QueueFlags]()

func (f QueueFlags) Register(str string) {
	queueFlagsMapping.Register(f, str)
}
func (f QueueFlags) String() string {
	return queueFlagsMapping.FlagsToString(f)
}

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// MemoryPropertyFlags describe a memory type
type MemoryPropertyFlags int32

var memoryPropertyFlagsMapping = common.NewFlagStringMapping[MemoryPropertyFlags]()

func (f MemoryPropertyFlags) Register(str string) {
	memoryPropertyFlagsMapping.Register(f, str)
}
func (f MemoryPropertyFlags) String() string {
	return memoryPropertyFlagsMapping.FlagsToString(f)
}

const (
	MemoryPropertyDeviceLocal MemoryPropertyFlags = 1 << iota
	MemoryPropertyHostVisible
	MemoryPropertyHostCoherent
	MemoryPropertyHostCached
	MemoryPropertyLazilyAllocated
)

// CommandPoolCreateFlags control allocation behavior of command buffers in a pool
type CommandPoolCreateFlags int32

var commandPoolCreateFlagsMapping = common.NewFlagStringMapping[CommandPoolCreateFlags]()

func (f CommandPoolCreateFlags) Register(str string) {
	commandPoolCreateFlagsMapping.Register(f, str)
}
func (f CommandPoolCreateFlags) String() string {
	return commandPoolCreateFlagsMapping.FlagsToString(f)
}

const (
	CommandPoolCreateTransient CommandPoolCreateFlags = 1 << iota
	CommandPoolCreateResetBuffer
)

// DescriptorPoolCreateFlags control whether sets may be freed individually
type DescriptorPoolCreateFlags int32

var descriptorPoolCreateFlagsMapping = common.NewFlagStringMapping[DescriptorPoolCreateFlags]()

func (f DescriptorPoolCreateFlags) Register(str string) {
	descriptorPoolCreateFlagsMapping.Register(f, str)
}
func (f DescriptorPoolCreateFlags) String() string {
	return descriptorPoolCreateFlagsMapping.FlagsToString(f)
}

const (
	DescriptorPoolCreateFreeDescriptorSet DescriptorPoolCreateFlags = 1 << iota
)

// DebugUtilsMessageSeverityFlags select which messenger callbacks are delivered by severity
type DebugUtilsMessageSeverityFlags int32

var debugUtilsMessageSeverityFlagsMapping = common.NewFlagStringMapping[DebugUtilsMessageSeverityFlags]()

func (f DebugUtilsMessageSeverityFlags) Register(str string) {
	debugUtilsMessageSeverityFlagsMapping.Register(f, str)
}
func (f DebugUtilsMessageSeverityFlags) String() string {
	return debugUtilsMessageSeverityFlagsMapping.FlagsToString(f)
}

const (
	DebugUtilsMessageSeverityVerbose DebugUtilsMessageSeverityFlags = 0x00000001
	DebugUtilsMessageSeverityInfo    DebugUtilsMessageSeverityFlags = 0x00000010
	DebugUtilsMessageSeverityWarning DebugUtilsMessageSeverityFlags = 0x00000100
	DebugUtilsMessageSeverityError   DebugUtilsMessageSeverityFlags = 0x00001000
)

// DebugUtilsMessageTypeFlags select which messenger callbacks are delivered by origin
type DebugUtilsMessageTypeFlags int32

var debugUtilsMessageTypeFlagsMapping = common.NewFlagStringMapping[DebugUtilsMessageTypeFlags]()

func (f DebugUtilsMessageTypeFlags) Register(str string) {
	debugUtilsMessageTypeFlagsMapping.Register(f, str)
}
func (f DebugUtilsMessageTypeFlags) String() string {
	return debugUtilsMessageTypeFlagsMapping.FlagsToString(f)
}

const (
	DebugUtilsMessageTypeGeneral DebugUtilsMessageTypeFlags = 1 << iota
	DebugUtilsMessageTypeValidation
	DebugUtilsMessageTypePerformance
)

func init() {
	QueryResult64.Register("64-Bit")
	QueryResultWait.Register("Wait")
	QueryResultWithAvailability.Register("With Availability")
	QueryResultPartial.Register("Partial")

	FenceCreateSignaled.Register("Signaled")

	QueueGraphics.Register("Graphics")
	QueueCompute.Register("Compute")
	QueueTransfer.Register("Transfer")
	QueueSparseBinding.Register("Sparse Binding")

	MemoryPropertyDeviceLocal.Register("Device Local")
	MemoryPropertyHostVisible.Register("Host Visible")
	MemoryPropertyHostCoherent.Register("Host Coherent")
	MemoryPropertyHostCached.Register("Host Cached")
	MemoryPropertyLazilyAllocated.Register("Lazily Allocated")

	CommandPoolCreateTransient.Register("Transient")
	CommandPoolCreateResetBuffer.Register("Reset Command Buffer")

	DescriptorPoolCreateFreeDescriptorSet.Register("Free Descriptor Set")

	DebugUtilsMessageSeverityVerbose.Register("Verbose")
	DebugUtilsMessageSeverityInfo.Register("Info")
	DebugUtilsMessageSeverityWarning.Register("Warning")
	DebugUtilsMessageSeverityError.Register("Error")

	DebugUtilsMessageTypeGeneral.Register("General")
	DebugUtilsMessageTypeValidation.Register("Validation")
	DebugUtilsMessageTypePerformance.Register("Performance")
}
