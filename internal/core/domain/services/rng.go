package services

import "encoding/binary"

// Draw channels separate the independent random streams a tick consumes per
// courier. Each channel perturbs the courier's sub-seed differently, so the
// movement angle, the transition gate, the transition draw, and the speed
// factor are mutually independent while remaining fully determined by
// (seed, courier id).
const (
	channelMovement uint64 = 1
	channelStatus   uint64 = 7
	channelSpeed    uint64 = 13
	channelGate     uint64 = 17
)

const (
	fnv64Offset uint64 = 14695981039346656037
	fnv64Prime  uint64 = 1099511628211
)

// subSeed derives a per-courier seed by folding the tick seed and the courier
// id through 64-bit FNV-1a. Keying on the id rather than the array index keeps
// a courier's random stream stable when the snapshot is reordered or records
// are inserted.
func subSeed(seed int64, id string) uint64 {
	h := fnv64Offset

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	for _, b := range buf {
		h ^= uint64(b)
		h *= fnv64Prime
	}

	for i := 0; i < len(id); i++ {
		h ^= uint64(id[i])
		h *= fnv64Prime
	}

	return h
}

// mix64 is the SplitMix64 finalizer. It turns structured seed material into
// uniformly distributed bits.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// unitDraw maps a sub-seed and channel to a uniform draw in [0, 1).
// The top 53 bits of the mixed value are used so the result is an exactly
// representable double, identical on every platform.
func unitDraw(sub uint64, channel uint64) float64 {
	return float64(mix64(sub^(channel*0x9e3779b97f4a7c15))>>11) / (1 << 53)
}
