package internal

import (
	"bytes"
	"sync"
)

// BufferPool hands out scratch buffers for event encoding so the recorder does
// not allocate per event.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
