package export

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// The export artifact is the engine's internal render manifest: a
// fixed header followed by one BLAKE2b-256 digest per exported frame.
// It is a verification record, not a media container; all multi-byte
// fields are big-endian.

// ArtifactVersion is the format version this build reads and writes.
const ArtifactVersion uint16 = 1

// DigestSize is the byte length of one frame digest.
const DigestSize = blake2b.Size256

var artifactMagic = [4]byte{'V', 'E', 'X', 'P'}

// ArtifactHeader describes an export artifact: the output geometry,
// frame rate, and how many frame digests follow the header.
type ArtifactHeader struct {
	Width      int
	Height     int
	FPS        float64
	FrameCount int
}

// artifactWire is the fixed-size header body following the magic.
type artifactWire struct {
	Version    uint16
	Width      uint32
	Height     uint32
	FPS        float64
	FrameCount uint32
}

// WriteArtifact writes the artifact header and digest list to w. The
// frame count written is the length of the digest list.
func WriteArtifact(w io.Writer, header ArtifactHeader, digests [][DigestSize]byte) error {
	if _, err := w.Write(artifactMagic[:]); err != nil {
		return fmt.Errorf("writing artifact magic: %w", err)
	}

	wire := artifactWire{
		Version:    ArtifactVersion,
		Width:      uint32(header.Width),
		Height:     uint32(header.Height),
		FPS:        header.FPS,
		FrameCount: uint32(len(digests)),
	}
	if err := binary.Write(w, binary.BigEndian, wire); err != nil {
		return fmt.Errorf("writing artifact header: %w", err)
	}

	for i := range digests {
		if _, err := w.Write(digests[i][:]); err != nil {
			return fmt.Errorf("writing frame digest %d: %w", i, err)
		}
	}
	return nil
}

// ReadArtifactHeader reads and validates the artifact header from r,
// leaving r positioned at the first frame digest.
func ReadArtifactHeader(r io.Reader) (ArtifactHeader, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return ArtifactHeader{}, ErrNotArtifact
	}
	if magic != artifactMagic {
		return ArtifactHeader{}, ErrNotArtifact
	}

	var wire artifactWire
	if err := binary.Read(r, binary.BigEndian, &wire); err != nil {
		return ArtifactHeader{}, fmt.Errorf("%w: header", ErrArtifactTruncated)
	}
	if wire.Version != ArtifactVersion {
		return ArtifactHeader{}, fmt.Errorf("%w: %d", ErrArtifactVersion, wire.Version)
	}

	return ArtifactHeader{
		Width:      int(wire.Width),
		Height:     int(wire.Height),
		FPS:        wire.FPS,
		FrameCount: int(wire.FrameCount),
	}, nil
}

// ReadArtifact reads the full artifact from r: the header and every
// declared frame digest. The digest list grows as it reads, so a
// corrupt count fails on truncation instead of overallocating.
func ReadArtifact(r io.Reader) (ArtifactHeader, [][DigestSize]byte, error) {
	header, err := ReadArtifactHeader(r)
	if err != nil {
		return ArtifactHeader{}, nil, err
	}

	digests := make([][DigestSize]byte, 0, min(header.FrameCount, 1024))
	var d [DigestSize]byte
	for i := 0; i < header.FrameCount; i++ {
		if _, err := io.ReadFull(r, d[:]); err != nil {
			return header, nil, fmt.Errorf("%w: digest %d of %d", ErrArtifactTruncated, i, header.FrameCount)
		}
		digests = append(digests, d)
	}
	return header, digests, nil
}
