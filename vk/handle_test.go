package vk

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type destroyRecord struct {
	Owner  VkDevice
	Handle uint64
}

func recordingDispatch(records *[]destroyRecord) *DeviceDispatch {
	return &DeviceDispatch{
		DestroySampler: func(device VkDevice, sampler VkSampler, _ unsafe.Pointer) {
			*records = append(*records, destroyRecord{Owner: device, Handle: uint64(sampler)})
		},
		InstanceDispatch: InstanceDispatch{
			DestroyDevice: func(device VkDevice, _ unsafe.Pointer) {
				*records = append(*records, destroyRecord{Handle: uint64(device)})
			},
		},
	}
}

func TestHandleReset(t *testing.T) {
	var records []destroyRecord
	dld := recordingDispatch(&records)

	handle := NewHandle(VkSampler(7), VkDevice(3), dld)
	require.True(t, handle.IsValid())
	require.Equal(t, VkSampler(7), handle.Raw())
	require.Equal(t, VkDevice(3), handle.Owner())
	require.Same(t, dld, handle.Dispatch())

	handle.Reset()
	require.False(t, handle.IsValid())
	require.Equal(t, []destroyRecord{{Owner: 3, Handle: 7}}, records)

	handle.Reset()
	require.Len(t, records, 1)
}

func TestHandleZeroValue(t *testing.T) {
	var handle Handle[VkSampler, VkDevice, DeviceDispatch]
	require.False(t, handle.IsValid())

	// No dispatch table is touched for an empty handle
	handle.Reset()
}

func TestHandleTake(t *testing.T) {
	var records []destroyRecord
	handle := NewHandle(VkSampler(7), VkDevice(3), recordingDispatch(&records))

	moved := handle.Take()
	require.False(t, handle.IsValid())
	require.True(t, moved.IsValid())
	require.Equal(t, VkDevice(3), moved.Owner())

	handle.Reset()
	require.Empty(t, records)

	moved.Reset()
	require.Equal(t, []destroyRecord{{Owner: 3, Handle: 7}}, records)
}

func TestHandleMoveFrom(t *testing.T) {
	testCases := map[string]struct {
		Dst      VkSampler
		Src      VkSampler
		Released []destroyRecord
	}{
		"Into empty": {
			Src: 9,
		},
		"Over live handle": {
			Dst:      7,
			Src:      9,
			Released: []destroyRecord{{Owner: 3, Handle: 7}},
		},
		"From empty": {
			Dst:      7,
			Released: []destroyRecord{{Owner: 3, Handle: 7}},
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			var records []destroyRecord
			dld := recordingDispatch(&records)

			dst := NewHandle(testCase.Dst, VkDevice(3), dld)
			src := NewHandle(testCase.Src, VkDevice(3), dld)
			dst.MoveFrom(&src)

			require.Equal(t, testCase.Released, records)
			require.Equal(t, testCase.Src, dst.Raw())
			require.False(t, src.IsValid())
		})
	}
}

func TestHandleMoveFromSelf(t *testing.T) {
	var records []destroyRecord
	handle := NewHandle(VkSampler(7), VkDevice(3), recordingDispatch(&records))

	handle.MoveFrom(&handle)
	require.True(t, handle.IsValid())
	require.Empty(t, records)
}

func TestHandleAddress(t *testing.T) {
	var records []destroyRecord
	handle := NewHandle(VkSampler(7), VkDevice(3), recordingDispatch(&records))
	defer handle.Reset()

	require.Equal(t, VkSampler(7), *handle.Address())
}

func TestOwnerless(t *testing.T) {
	var records []destroyRecord
	dld := recordingDispatch(&records)

	device := NewOwnerless(VkDevice(11), dld)
	require.True(t, device.IsValid())

	moved := device.Take()
	device.Reset()
	require.Empty(t, records)

	other := NewOwnerless(VkDevice(12), dld)
	other.MoveFrom(&moved)
	require.Equal(t, []destroyRecord{{Handle: 12}}, records)
	require.Equal(t, VkDevice(11), other.Raw())
	require.False(t, moved.IsValid())

	other.Reset()
	other.Reset()
	require.Equal(t, []destroyRecord{{Handle: 12}, {Handle: 11}}, records)
}
