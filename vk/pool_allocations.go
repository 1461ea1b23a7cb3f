package vk

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// FreeFunc returns a batch of pool allocations to their pool in one native call
type FreeFunc[A any, P any] func(device VkDevice, pool P, allocations []A, dld *DeviceDispatch) Result

// PoolAllocations owns a batch of objects allocated together from a pool. The batch is
// released with a single bulk free. A batch that reports IsOutOfPoolMemory holds nothing
// and its pool could not satisfy the request.
type PoolAllocations[A any, P any] struct {
	noCopy noCopy

	allocations []A
	device      VkDevice
	pool        P
	dld         *DeviceDispatch
	free        FreeFunc[A, P]
}

// NewPoolAllocations takes ownership of allocations. The slice must not be retained
// by the caller.
func NewPoolAllocations[A any, P any](allocations []A, device VkDevice, pool P, dld *DeviceDispatch, free FreeFunc[A, P]) PoolAllocations[A, P] {
	return PoolAllocations[A, P]{
		allocations: allocations,
		device:      device,
		pool:        pool,
		dld:         dld,
		free:        free,
	}
}

// IsOutOfPoolMemory reports whether this batch stands for a failed allocation
func (p *PoolAllocations[A, P]) IsOutOfPoolMemory() bool {
	return p.device == 0
}

// Size returns the number of objects in the batch
func (p *PoolAllocations[A, P]) Size() int {
	return len(p.allocations)
}

// Data returns a pointer to the first object, or nil when the batch is empty
func (p *PoolAllocations[A, P]) Data() *A {
	if len(p.allocations) == 0 {
		return nil
	}
	return unsafe.SliceData(p.allocations)
}

// At returns the object at index
func (p *PoolAllocations[A, P]) At(index int) A {
	return p.allocations[index]
}

// Slice exposes the batch storage. It must not be modified.
func (p *PoolAllocations[A, P]) Slice() []A {
	return p.allocations
}

// Release frees every object in the batch with one bulk call and leaves the batch empty.
// A driver that rejects the bulk free breaks pool accounting, so Release panics in that case.
func (p *PoolAllocations[A, P]) Release() {
	if len(p.allocations) == 0 || p.free == nil {
		p.allocations = nil
		return
	}
	result := p.free(p.device, p.pool, p.allocations, p.dld)
	p.allocations = nil
	if result != VKSuccess {
		p.dld.logger().Error("PoolAllocations::Release bulk free rejected",
			slog.String("Result", result.String()),
		)
		panic(errors.AssertionFailedf("bulk free of pool allocations failed: %s", ToString(result)))
	}
}

// Take moves the batch into the returned value. The receiver is left empty.
func (p *PoolAllocations[A, P]) Take() PoolAllocations[A, P] {
	allocations := p.allocations
	p.allocations = nil
	return PoolAllocations[A, P]{
		allocations: allocations,
		device:      p.device,
		pool:        p.pool,
		dld:         p.dld,
		free:        p.free,
	}
}

// MoveFrom releases the current batch, then takes over src
func (p *PoolAllocations[A, P]) MoveFrom(src *PoolAllocations[A, P]) {
	if p == src {
		return
	}
	p.Release()
	p.allocations = src.allocations
	p.device = src.device
	p.pool = src.pool
	p.dld = src.dld
	p.free = src.free
	src.allocations = nil
}

func freeDescriptorSets(device VkDevice, pool VkDescriptorPool, sets []VkDescriptorSet, dld *DeviceDispatch) Result {
	return dld.FreeDescriptorSets(device, pool, uint32(len(sets)), unsafe.SliceData(sets))
}

func freeCommandBuffers(device VkDevice, pool VkCommandPool, buffers []VkCommandBuffer, dld *DeviceDispatch) Result {
	dld.FreeCommandBuffers(device, pool, uint32(len(buffers)), unsafe.SliceData(buffers))
	return VKSuccess
}

// DescriptorSets is a batch of descriptor sets allocated from one DescriptorPool
type DescriptorSets = PoolAllocations[VkDescriptorSet, VkDescriptorPool]

// CommandBuffers is a batch of command buffers allocated from one CommandPool
type CommandBuffers = PoolAllocations[VkCommandBuffer, VkCommandPool]
