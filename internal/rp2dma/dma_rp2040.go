//go:build rp2040

package rp2dma

import (
	"device/rp"
	"math"
	"runtime"
	"runtime/volatile"
	"unsafe"
)

const timeoutRetries = math.MaxUint16

// Single DMA channel. See rp.DMA_Type.
type channelHW struct {
	READ_ADDR   volatile.Register32
	WRITE_ADDR  volatile.Register32
	TRANS_COUNT volatile.Register32
	CTRL_TRIG   volatile.Register32
	_           [12]volatile.Register32 // aliases
}

var channels = (*[numChannels]channelHW)(unsafe.Pointer(rp.DMA))

var claimed uint16

// Channel is a claimed DMA channel.
type Channel struct {
	hw    *channelHW
	index uint8
}

// Claim reserves the lowest numbered free channel.
func Claim() (Channel, error) {
	for i := uint8(0); i < numChannels; i++ {
		if claimed&(1<<i) == 0 {
			claimed |= 1 << i
			return Channel{hw: &channels[i], index: i}, nil
		}
	}
	return Channel{}, ErrNoChannel
}

// Unclaim releases the channel.
func (ch Channel) Unclaim() {
	claimed &^= 1 << ch.index
}

// Copy transfers src into dst one byte at a time and blocks until the
// channel is idle again.
func (ch Channel) Copy(dst, src []byte) error {
	if len(dst) < len(src) {
		return ErrLength
	}
	if len(src) == 0 {
		return nil
	}
	hw := ch.hw
	hw.READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&src[0]))))
	hw.WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(&dst[0]))))
	hw.TRANS_COUNT.Set(uint32(len(src)))
	hw.CTRL_TRIG.Set(uint32(copyCtrl(ch.index)))

	for retries := timeoutRetries; ch.busy(); retries-- {
		if retries == 0 {
			ch.abort()
			return ErrTimeout
		}
		runtime.Gosched()
	}
	return nil
}

func (ch Channel) busy() bool {
	return ch.hw.CTRL_TRIG.Get()&(1<<ctrlBusyPos) != 0
}

// abort stops the channel and waits for in-flight transfers to drain.
func (ch Channel) abort() {
	mask := uint32(1) << ch.index
	rp.DMA.CHAN_ABORT.Set(mask)
	for retries := timeoutRetries; rp.DMA.CHAN_ABORT.Get()&mask != 0 && retries > 0; retries-- {
		runtime.Gosched()
	}
}
