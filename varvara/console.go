package varvara

import "io"

// Console is the Varvara console device. It has exactly one port
// implemented here: a write that emits a byte to the host's stdout
// stream (§4.D).
type Console struct {
	Out io.Writer
}

// Write emits b to Out. A nil Out makes the port a silent sink,
// matching §7's "default is no-op" policy for unwired device output.
func (c *Console) Write(b byte) {
	if c.Out == nil {
		return
	}
	c.Out.Write([]byte{b})
}
