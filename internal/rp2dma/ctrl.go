// Package rp2dma drives the RP2040 DMA controller for plain memory to memory
// copies. It is only the boot time DMA demonstration; the display never
// uses it.
package rp2dma

import "errors"

var (
	ErrNoChannel = errors.New("rp2dma: no free channel")
	ErrLength    = errors.New("rp2dma: destination shorter than source")
	ErrTimeout   = errors.New("rp2dma: transfer timeout")
)

// Channels on the RP2040.
const numChannels = 12

// CTRL_TRIG layout, RP2040 datasheet 2.5.7.
const (
	ctrlEnPos           = 0
	ctrlHighPriorityPos = 1
	ctrlDataSizePos     = 2
	ctrlIncrReadPos     = 4
	ctrlIncrWritePos    = 5
	ctrlRingSizePos     = 6
	ctrlRingSelPos      = 10
	ctrlChainToPos      = 11
	ctrlTreqSelPos      = 15
	ctrlIRQQuietPos     = 21
	ctrlBSwapPos        = 22
	ctrlSniffEnPos      = 23
	ctrlBusyPos         = 24

	ctrlDataSizeMsk = 0x3 << ctrlDataSizePos
	ctrlRingSizeMsk = 0xf << ctrlRingSizePos
	ctrlChainToMsk  = 0xf << ctrlChainToPos
	ctrlTreqSelMsk  = 0x3f << ctrlTreqSelPos
)

// treqPermanent paces the channel as fast as the bus allows.
const treqPermanent = 0x3f

type txSize uint32

const (
	txSize8 txSize = iota
	txSize16
	txSize32
)

// ctrl is a CTRL_TRIG register value under construction.
type ctrl uint32

func (c *ctrl) setBit(pos uint32, bit bool) {
	if bit {
		*c |= 1 << pos
	} else {
		*c &^= 1 << pos
	}
}

func (c *ctrl) setField(msk, pos, v uint32) {
	*c = ctrl((uint32(*c) &^ msk) | (v<<pos)&msk)
}

func (c *ctrl) setDataSize(size txSize) { c.setField(ctrlDataSizeMsk, ctrlDataSizePos, uint32(size)) }
func (c *ctrl) setChainTo(ch uint8)     { c.setField(ctrlChainToMsk, ctrlChainToPos, uint32(ch)) }
func (c *ctrl) setTREQ(dreq uint32)     { c.setField(ctrlTreqSelMsk, ctrlTreqSelPos, dreq) }
func (c *ctrl) setRing(write bool, sizeBits uint32) {
	c.setField(ctrlRingSizeMsk, ctrlRingSizePos, sizeBits)
	c.setBit(ctrlRingSelPos, write)
}

// copyCtrl is the channel configuration for a byte-wise memory copy: both
// addresses increment, no pacing, and chaining to itself, which disables
// chaining.
func copyCtrl(channel uint8) ctrl {
	var c ctrl
	c.setRing(false, 0)
	c.setBit(ctrlBSwapPos, false)
	c.setBit(ctrlIRQQuietPos, false)
	c.setBit(ctrlSniffEnPos, false)
	c.setBit(ctrlHighPriorityPos, false)
	c.setChainTo(channel)
	c.setTREQ(treqPermanent)
	c.setDataSize(txSize8)
	c.setBit(ctrlIncrReadPos, true)
	c.setBit(ctrlIncrWritePos, true)
	c.setBit(ctrlEnPos, true)
	return c
}
