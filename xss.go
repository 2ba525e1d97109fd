package xss

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// The three-output dispatch (PSS, PSS+NSS, PSS+Lyndon, each sequential,
// parallel or tree-shaped) has no runtime type switch: PSSArray, NSSArray,
// LyndonArray, PSSAndNSSArray, PSSAndLyndonArray, their *Parallel
// counterparts, and PSSTree are nine distinct compile-time instantiations
// of the generic construction, chosen by the caller rather than resolved
// at runtime. This file carries the serialization format shared by all of
// their outputs.

const arrayFormatVersion uint32 = 1

// ErrBadVersion is returned by ReadArray when the stream's format version
// or index width does not match what the caller's type parameter expects.
// Tree dumps carry no version word or width tag, so ReadTree never returns
// it.
var ErrBadVersion = errors.New("xss: unsupported array format version or index width")

func indexWidth[I Index]() uint8 {
	var zero I
	if uint64(^zero) == uint64(^uint32(0)) {
		return 4
	}
	return 8
}

// WriteArray serializes array to w: an 8-byte header holding a 4-byte
// version word and a one-byte index-width tag (4 for uint32, 8 for uint64)
// followed by three zero bytes, an 8-byte length, then the values
// themselves as fixed-width little-endian integers. The width tag lets
// ReadArray reject a dump produced by the other index width rather than
// silently reinterpreting it.
func WriteArray[I Index](w io.Writer, array []I) (int64, error) {
	width := indexWidth[I]()

	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], arrayFormatVersion)
	hdr[4] = width

	var n int64
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(array)))
	nn, err = w.Write(lenBuf[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	buf := make([]byte, width)
	for _, v := range array {
		if width == 4 {
			binary.LittleEndian.PutUint32(buf, uint32(v))
		} else {
			binary.LittleEndian.PutUint64(buf, uint64(v))
		}
		nn, err = w.Write(buf)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadArray deserializes an array written by WriteArray. The type parameter
// I must match the width the array was written with, or ErrBadVersion is
// returned before any values are read.
func ReadArray[I Index](r io.Reader) ([]I, int64, error) {
	width := indexWidth[I]()

	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, err
	}
	var n int64 = 8
	if binary.LittleEndian.Uint32(hdr[0:4]) != arrayFormatVersion || hdr[4] != width {
		return nil, n, ErrBadVersion
	}

	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, n, err
	}
	n += 8
	length := binary.LittleEndian.Uint64(lenBuf[:])

	array := make([]I, length)
	buf := make([]byte, width)
	for i := range array {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, n, err
		}
		n += int64(width)
		if width == 4 {
			array[i] = I(binary.LittleEndian.Uint32(buf))
		} else {
			array[i] = I(binary.LittleEndian.Uint64(buf))
		}
	}
	return array, n, nil
}

// WriteTree serializes a PSS tree bit vector (see PSSTree, PSSTreeNaive) to
// w: an 8-byte text length the tree was built over, followed by the bit
// vector's own WriteTo encoding. The length is not recoverable from the bit
// vector alone since its size (2n+2) does not uniquely determine n for the
// smallest inputs.
func WriteTree[I Index](w io.Writer, tree *bitset.BitSet, n I) (int64, error) {
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(n))
	nn, err := w.Write(hdr[:])
	total := int64(nn)
	if err != nil {
		return total, err
	}
	nn2, err := tree.WriteTo(w)
	total += nn2
	return total, err
}

// ReadTree deserializes a bit vector written by WriteTree.
func ReadTree[I Index](r io.Reader) (*bitset.BitSet, I, int64, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, 0, err
	}
	n := I(binary.LittleEndian.Uint64(hdr[:]))
	var total int64 = 8

	tree := &bitset.BitSet{}
	nn, err := tree.ReadFrom(r)
	total += nn
	if err != nil {
		return nil, n, total, err
	}
	return tree, n, total, nil
}
