package vk

// noCopy lets go vet's copylocks check flag accidental copies of an owning handle.
// Ownership moves only through Take and MoveFrom.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type owned[O any, D any] interface {
	comparable
	destroy(owner O, dld *D)
}

type ownerless[D any] interface {
	comparable
	destroy(dld *D)
}

// Handle exclusively owns one native object that was created from an owner (a device or an
// instance). The object is destroyed exactly once: on Reset, on MoveFrom, or never if it was
// moved out with Take. The zero value is an empty handle.
type Handle[T owned[O, D], O any, D any] struct {
	noCopy noCopy

	handle T
	owner  O
	dld    *D
}

// NewHandle takes ownership of handle. owner and dld must outlive the returned value.
func NewHandle[T owned[O, D], O any, D any](handle T, owner O, dld *D) Handle[T, O, D] {
	return Handle[T, O, D]{handle: handle, owner: owner, dld: dld}
}

// Raw returns the native handle without giving up ownership
func (h *Handle[T, O, D]) Raw() T {
	return h.handle
}

// Address returns a pointer to the native handle, for parameter blocks that take arrays of
// handles
func (h *Handle[T, O, D]) Address() *T {
	return &h.handle
}

// IsValid reports whether the handle currently owns an object
func (h *Handle[T, O, D]) IsValid() bool {
	var zero T
	return h.handle != zero
}

// Owner returns the object this handle was created from
func (h *Handle[T, O, D]) Owner() O {
	return h.owner
}

// Dispatch returns the table the handle uses for its own calls
func (h *Handle[T, O, D]) Dispatch() *D {
	return h.dld
}

// Reset destroys the owned object, if any, and leaves the handle empty
func (h *Handle[T, O, D]) Reset() {
	h.release()
	var zero T
	h.handle = zero
}

// Take moves ownership into the returned handle. The receiver is left empty and releasing
// it afterward does nothing.
func (h *Handle[T, O, D]) Take() Handle[T, O, D] {
	handle := h.handle
	var zero T
	h.handle = zero
	return Handle[T, O, D]{handle: handle, owner: h.owner, dld: h.dld}
}

// MoveFrom destroys the object currently owned, then takes over src. src is left empty.
func (h *Handle[T, O, D]) MoveFrom(src *Handle[T, O, D]) {
	if h == src {
		return
	}
	h.release()
	h.handle = src.handle
	h.owner = src.owner
	h.dld = src.dld
	var zero T
	src.handle = zero
}

func (h *Handle[T, O, D]) release() {
	var zero T
	if h.handle != zero {
		h.handle.destroy(h.owner, h.dld)
	}
}

// Ownerless owns a root object whose destroy call needs no owner: an instance or a device.
type Ownerless[T ownerless[D], D any] struct {
	noCopy noCopy

	handle T
	dld    *D
}

// NewOwnerless takes ownership of handle. dld must outlive the returned value.
func NewOwnerless[T ownerless[D], D any](handle T, dld *D) Ownerless[T, D] {
	return Ownerless[T, D]{handle: handle, dld: dld}
}

func (h *Ownerless[T, D]) Raw() T {
	return h.handle
}

func (h *Ownerless[T, D]) Address() *T {
	return &h.handle
}

func (h *Ownerless[T, D]) IsValid() bool {
	var zero T
	return h.handle != zero
}

func (h *Ownerless[T, D]) Dispatch() *D {
	return h.dld
}

func (h *Ownerless[T, D]) Reset() {
	h.release()
	var zero T
	h.handle = zero
}

func (h *Ownerless[T, D]) Take() Ownerless[T, D] {
	handle := h.handle
	var zero T
	h.handle = zero
	return Ownerless[T, D]{handle: handle, dld: h.dld}
}

func (h *Ownerless[T, D]) MoveFrom(src *Ownerless[T, D]) {
	if h == src {
		return
	}
	h.release()
	h.handle = src.handle
	h.dld = src.dld
	var zero T
	src.handle = zero
}

func (h *Ownerless[T, D]) release() {
	var zero T
	if h.handle != zero {
		h.handle.destroy(h.dld)
	}
}
