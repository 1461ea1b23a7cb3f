package vk

// Queue is a non-owning view of a VkQueue. Queues are retrieved from their device and go away
// with it.
type Queue struct {
	queue VkQueue
	dld   *DeviceDispatch
}

func NewQueue(queue VkQueue, dld *DeviceDispatch) Queue {
	return Queue{queue: queue, dld: dld}
}

func (q Queue) Raw() VkQueue {
	return q.queue
}

// Submit queues the batches in submits. fence, if not zero, is signaled once all of them
// complete.
func (q Queue) Submit(submits Span[SubmitInfo], fence VkFence) error {
	return Check(q.dld.QueueSubmit(q.queue, submits.Size(), submits.Data(), fence))
}

// Present returns the native status unchanged so VKSuboptimalKHR and VKErrorOutOfDateKHR can
// drive swapchain recreation
func (q Queue) Present(info *PresentInfoKHR) Result {
	if q.dld.QueuePresentKHR == nil {
		return VKErrorExtensionNotPresent
	}
	return q.dld.QueuePresentKHR(q.queue, info)
}

// GetCheckpointDataNV returns the checkpoints recorded before a device loss. The result is
// empty when diagnostic checkpoints are unavailable.
func (q Queue) GetCheckpointDataNV() []CheckpointDataNV {
	if q.dld.GetQueueCheckpointDataNV == nil {
		return nil
	}
	var count uint32
	q.dld.GetQueueCheckpointDataNV(q.queue, &count, nil)
	if count == 0 {
		return nil
	}
	checkpoints := make([]CheckpointDataNV, count)
	for i := range checkpoints {
		checkpoints[i].SType = StructureTypeCheckpointDataNV
	}
	q.dld.GetQueueCheckpointDataNV(q.queue, &count, &checkpoints[0])
	return checkpoints[:count]
}
