package linknode

// Node is one element of a doubly-linked chain. It holds three optional relations: a link to the
// previous Node, a link to the next Node, and a reference to a caller-owned payload.
//
// Node never owns what it points to. It records and clears references; allocating and freeing
// neighbours and payloads is left to whatever structure is built around it. In particular links are
// one-directional: a.SetNext(b) does not touch b's previous link, so keeping a chain consistent in
// both directions means calling both setters.
//
// The zero value is an empty Node ready to use.
//
// Node's methods may not be called concurrently on the same Node.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]
	data *T
}

// New returns an empty Node.
func New[T any]() *Node[T] {
	return new(Node[T]).Init()
}

// Init clears all three relations of n and returns n.
func (n *Node[T]) Init() *Node[T] {
	n.prev = nil
	n.next = nil
	n.data = nil
	return n
}

func (n *Node[T]) Prev() *Node[T] { return n.prev }
func (n *Node[T]) Next() *Node[T] { return n.next }

// Data returns the payload reference recorded by SetData, or nil if there is none.
func (n *Node[T]) Data() *T { return n.data }

// SetPrev records prev as the Node before n, replacing any previous value. Passing nil is the same
// as ResetPrev.
func (n *Node[T]) SetPrev(prev *Node[T]) { n.prev = prev }

// SetNext records next as the Node after n, replacing any previous value. Passing nil is the same as
// ResetNext.
func (n *Node[T]) SetNext(next *Node[T]) { n.next = next }

// SetData records data as n's payload. The payload is not copied: the caller must keep it alive
// for as long as n refers to it.
func (n *Node[T]) SetData(data *T) { n.data = data }

func (n *Node[T]) ResetPrev() { n.prev = nil }
func (n *Node[T]) ResetNext() { n.next = nil }

// ResetData drops n's payload reference. The payload itself is left untouched.
func (n *Node[T]) ResetData() { n.data = nil }
