package vk

import (
	"iter"
	"unsafe"
)

// Span is a non-owning, read-only view over contiguous elements, shaped for native array
// parameters. It never copies: the storage it points into must outlive every call it is
// passed to.
type Span[T any] struct {
	ptr *T
	num int
}

// SpanOf builds a span over a single value
func SpanOf[T any](value *T) Span[T] {
	return Span[T]{ptr: value, num: 1}
}

// SpanFrom builds a span over the backing array of a slice
func SpanFrom[T any](values []T) Span[T] {
	if len(values) == 0 {
		return Span[T]{}
	}
	return Span[T]{ptr: unsafe.SliceData(values), num: len(values)}
}

// SpanFromPointer builds a span over num elements starting at ptr. This is intended for
// subranges of storage the caller already owns.
func SpanFromPointer[T any](ptr *T, num int) Span[T] {
	return Span[T]{ptr: ptr, num: num}
}

// Data returns a pointer to the first element, or nil for an empty span
func (s Span[T]) Data() *T {
	return s.ptr
}

// Size returns the element count as the 32-bit count native functions expect
func (s Span[T]) Size() uint32 {
	return uint32(s.num)
}

// Empty reports whether the span contains no elements
func (s Span[T]) Empty() bool {
	return s.num == 0
}

// At returns the element at index. No bounds check is made: index < Size() is a precondition.
func (s Span[T]) At(index int) T {
	return *(*T)(unsafe.Add(unsafe.Pointer(s.ptr), uintptr(index)*unsafe.Sizeof(*s.ptr)))
}

// Slice exposes the span as a slice aliasing the same storage. It must not be written to.
func (s Span[T]) Slice() []T {
	if s.num == 0 {
		return nil
	}
	return unsafe.Slice(s.ptr, s.num)
}

// All iterates the span front to back
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.num; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
