// internal/wire/frame.go
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tamzrod/drivecfg/internal/record"
)

const (
	// Tag identifies the frame format and version.
	Tag = "cfg1"

	// HeaderLen is the tag plus the length field.
	HeaderLen = 8

	slotLen = 2
)

var (
	ErrShortBuffer    = errors.New("wire: buffer smaller than frame")
	ErrBadTag         = errors.New("wire: bad frame tag")
	ErrTruncated      = errors.New("wire: truncated frame")
	ErrLengthMismatch = errors.New("wire: frame length does not match schema")
)

// Header is the fixed frame prefix.
type Header struct {
	Tag    [4]byte
	Length uint32
}

// Size is the frame length for a schema with count slots.
func Size(count int) int {
	return HeaderLen + count*slotLen
}

// SerializedSize is the frame length for rec. It does not depend on any buffer.
func SerializedSize(rec *record.Record) int {
	return Size(rec.Len())
}

// Serialize writes the frame for rec into buf and returns its length.
// The capacity is len(buf); when it is too small nothing is written.
func Serialize(rec *record.Record, buf []byte) (int, error) {
	n := SerializedSize(rec)
	if len(buf) < n {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(buf), n)
	}

	h := Header{Length: uint32(n)}
	copy(h.Tag[:], Tag)
	copy(buf[:HeaderLen], EncodeHeader(h))
	for i := 0; i < rec.Len(); i++ {
		off := HeaderLen + i*slotLen
		binary.LittleEndian.PutUint16(buf[off:off+slotLen], uint16(rec.At(i)))
	}
	return n, nil
}

// Append appends the frame for rec to dst.
func Append(dst []byte, rec *record.Record) []byte {
	n := SerializedSize(rec)
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	_, _ = Serialize(rec, dst[start:])
	return dst
}

// WriteFrame writes one frame for rec to w.
func WriteFrame(w io.Writer, rec *record.Record) error {
	_, err := w.Write(Append(nil, rec))
	return err
}

// EncodeHeader returns the 8 header bytes.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderLen)
	copy(buf[0:4], h.Tag[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.Length)
	return buf
}

// DecodeHeader parses and checks the frame prefix.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, ErrTruncated
	}
	var h Header
	copy(h.Tag[:], b[0:4])
	h.Length = binary.LittleEndian.Uint32(b[4:8])

	if string(h.Tag[:]) != Tag {
		return h, fmt.Errorf("%w: %q", ErrBadTag, h.Tag[:])
	}
	if h.Length < HeaderLen || (h.Length-HeaderLen)%slotLen != 0 {
		return h, fmt.Errorf("%w: length %d", ErrLengthMismatch, h.Length)
	}
	return h, nil
}

// Decode maps one frame onto rec by slot position and returns the frame length.
// On any error rec is left unchanged.
func Decode(frame []byte, rec *record.Record) (int, error) {
	h, err := DecodeHeader(frame)
	if err != nil {
		return 0, err
	}
	if int(h.Length) != SerializedSize(rec) {
		return 0, fmt.Errorf("%w: frame has %d bytes, record needs %d", ErrLengthMismatch, h.Length, SerializedSize(rec))
	}
	if len(frame) < int(h.Length) {
		return 0, fmt.Errorf("%w: have %d of %d bytes", ErrTruncated, len(frame), h.Length)
	}

	applySlots(frame[HeaderLen:h.Length], rec)
	return int(h.Length), nil
}

// ReadFrame reads exactly one frame from r and maps it onto rec by position.
// On any error rec is left unchanged.
func ReadFrame(r io.Reader, rec *record.Record) error {
	var fixed [HeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrTruncated
		}
		return err
	}

	h, err := DecodeHeader(fixed[:])
	if err != nil {
		return err
	}
	if int(h.Length) != SerializedSize(rec) {
		return fmt.Errorf("%w: frame has %d bytes, record needs %d", ErrLengthMismatch, h.Length, SerializedSize(rec))
	}

	payload := make([]byte, h.Length-HeaderLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrTruncated
		}
		return err
	}

	applySlots(payload, rec)
	return nil
}

// Slots returns the raw slot values of a frame body without a record.
func Slots(payload []byte) []int16 {
	out := make([]int16, len(payload)/slotLen)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(payload[i*slotLen:]))
	}
	return out
}

func applySlots(payload []byte, rec *record.Record) {
	for i, v := range Slots(payload) {
		rec.SetAt(i, v)
	}
}
