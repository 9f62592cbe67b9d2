package scene

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Baked scene files are a gzip stream holding a small header followed by
// the six grids in a fixed order. The offline analysis pipeline writes
// this format; the engine only reads and re-emits it.
const (
	fileMagic   = "RSCN"
	fileVersion = 1
)

// Save writes the scene to path in the baked scene format.
func Save(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := writeTo(zw, s); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("scene: finish %s: %w", path, err)
	}
	return nil
}

// Load reads a baked scene file and validates it through New.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("scene: %s is not a scene file: %w", path, err)
	}
	defer zr.Close()

	return readFrom(zr)
}

func writeTo(w io.Writer, s *Scene) error {
	if _, err := w.Write([]byte(fileMagic)); err != nil {
		return fmt.Errorf("scene: write header: %w", err)
	}
	hdr := []any{uint8(fileVersion), uint32(s.W), uint32(s.H)}
	for _, v := range hdr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("scene: write header: %w", err)
		}
	}
	grids := [][]byte{
		s.Depth,
		s.Ground,
		signedBytes(s.NormalX),
		signedBytes(s.NormalY),
		signedBytes(s.FlowX),
		signedBytes(s.FlowY),
	}
	for _, g := range grids {
		if _, err := w.Write(g); err != nil {
			return fmt.Errorf("scene: write grid: %w", err)
		}
	}
	return nil
}

func readFrom(r io.Reader) (*Scene, error) {
	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("scene: read header: %w", err)
	}
	if string(magic) != fileMagic {
		return nil, fmt.Errorf("scene: bad magic %q", magic)
	}
	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("scene: read header: %w", err)
	}
	if version != fileVersion {
		return nil, fmt.Errorf("scene: unsupported version %d", version)
	}
	var w32, h32 uint32
	if err := binary.Read(r, binary.LittleEndian, &w32); err != nil {
		return nil, fmt.Errorf("scene: read header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h32); err != nil {
		return nil, fmt.Errorf("scene: read header: %w", err)
	}
	w, h := int(w32), int(h32)
	if w <= 0 || h <= 0 || w > 1<<14 || h > 1<<14 {
		return nil, fmt.Errorf("scene: implausible dimensions %dx%d", w, h)
	}

	total := w * h
	raw := make([][]byte, 6)
	for i := range raw {
		raw[i] = make([]byte, total)
		if _, err := io.ReadFull(r, raw[i]); err != nil {
			return nil, fmt.Errorf("scene: read grid %d: %w", i, err)
		}
	}

	return New(w, h,
		raw[0],
		raw[1],
		unsignedToSigned(raw[2]),
		unsignedToSigned(raw[3]),
		unsignedToSigned(raw[4]),
		unsignedToSigned(raw[5]),
	)
}

func signedBytes(v []int8) []byte {
	out := make([]byte, len(v))
	for i, b := range v {
		out[i] = byte(b)
	}
	return out
}

func unsignedToSigned(v []byte) []int8 {
	out := make([]int8, len(v))
	for i, b := range v {
		out[i] = int8(b)
	}
	return out
}
