package services

import "fleetsim/internal/core/domain/model/courier"

// Fingerprint constants. These are the wire contract with the renderer: the
// frontend computes the same FNV-1a fingerprints for change detection, so the
// offset basis, the prime, and the field quantization must never change.
const (
	fnv32Offset uint32 = 2166136261
	fnv32Prime  uint32 = 16777619

	coordinateHashScale = 1_000_000.0
	speedHashScale      = 100.0
)

// HashPositions computes a 32-bit FNV-1a fingerprint over courier positions.
//
// Coordinates are quantized to six decimal places (multiplied by 1e6 and
// truncated to int32) and folded in record order, longitude before latitude.
// The hash is order-sensitive on purpose: a reorder of the fleet is a change
// the renderer must notice. An empty fleet hashes to the offset basis.
func HashPositions(couriers []courier.Courier) uint32 {
	h := fnv32Offset

	for _, c := range couriers {
		h = fold(h, uint32(int32(c.Longitude*coordinateHashScale)))
		h = fold(h, uint32(int32(c.Latitude*coordinateHashScale)))
	}

	return h
}

// HashState computes a 32-bit FNV-1a fingerprint over the full courier state.
//
// Folds the same quantized coordinates as HashPositions plus each record's
// status wire code and its speed quantized to centi-km/h. Any position, status,
// or speed change alters the fingerprint.
func HashState(couriers []courier.Courier) uint32 {
	h := fnv32Offset

	for _, c := range couriers {
		h = fold(h, uint32(int32(c.Longitude*coordinateHashScale)))
		h = fold(h, uint32(int32(c.Latitude*coordinateHashScale)))
		h = fold(h, uint32(c.Status))
		h = fold(h, uint32(c.SpeedKmh*speedHashScale))
	}

	return h
}

func fold(h, v uint32) uint32 {
	h ^= v
	h *= fnv32Prime
	return h
}
