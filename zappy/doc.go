// SPDX-License-Identifier: MIT

// Package zappy turns a polyline into a jagged, lightning-like line.
//
// Every segment is split into Hops sub-hops. Each sub-hop point is pushed off
// the straight line by Perlin noise: the radius is at most
// hopLength·Variance (tapered near both ends of the segment), the direction
// comes from a second noise octave perturbed by FlowIrregular. The noise
// phase is seed + tick·Speed, so a caller animating the line only advances
// tick; nothing here keeps time.
//
// The last segment is drawn only for round(LastSegmentLenProportion·Hops)
// sub-hops and reaches its endpoint only when that equals Hops.
// Points listed as revisits are first pulled back along their incoming
// segment by ReadabilityOffset so retraced strokes stay distinguishable.
//
// Output is fully determined by the inputs and the Zapper's noise seed.
package zappy
