package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rounds is the number of rounds of Keccak-f[1600].
const rounds = 24

// rc holds the iota round constants.
var rc = [rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotc and piln drive the combined rho and pi steps: walking the lanes in
// piln order starting from lane 1, each lane is rotated by the next rotc
// offset and moved into the slot of its successor.
var rotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the Keccak-f[1600] permutation to a in place.
// Lane (x, y) lives at a[x+5*y].
func keccakF1600(a *[25]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho and pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotc[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			bc[0], bc[1], bc[2], bc[3], bc[4] = a[j], a[j+1], a[j+2], a[j+3], a[j+4]
			for i := 0; i < 5; i++ {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= rc[r]
	}
}

// xorLanes XORs data into lanes, eight little-endian bytes per lane.
// Trailing bytes that do not fill a lane are ignored.
func xorLanes(lanes []uint64, data []byte) {
	for i := 0; len(data) >= 8; i++ {
		lanes[i] ^= binary.LittleEndian.Uint64(data)
		data = data[8:]
	}
}

// xorIn XORs data into the byte view of the state starting at byte off.
func xorIn(a *[25]uint64, off int, data []byte) {
	for len(data) > 0 {
		if off&7 == 0 && len(data) >= 8 {
			n := len(data) &^ 7
			xorLanes(a[off>>3:], data[:n])
			off += n
			data = data[n:]
			continue
		}
		a[off>>3] ^= uint64(data[0]) << (8 * uint(off&7))
		off++
		data = data[1:]
	}
}

// copyOut copies len(out) bytes of the state's byte view starting at off.
func copyOut(out []byte, a *[25]uint64, off int) {
	for len(out) > 0 {
		if off&7 == 0 && len(out) >= 8 {
			binary.LittleEndian.PutUint64(out, a[off>>3])
			off += 8
			out = out[8:]
			continue
		}
		out[0] = byte(a[off>>3] >> (8 * uint(off&7)))
		off++
		out = out[1:]
	}
}
