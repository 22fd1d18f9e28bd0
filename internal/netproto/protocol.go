// Package netproto is a small binary wire protocol for exposing a
// bplustree.Tree over a net.Conn: insert, find, delete, and destroy, each a
// fixed-width key plus (for insert) an 8-byte integer value. It generalizes
// the teacher project's internal/network package, which framed arbitrary
// []byte keys and values for a generic key-value store, to this tree's
// fixed-width-key/int-record model.
package netproto

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Operation codes, one per Tree method the protocol exposes.
const (
	OpInsert byte = iota + 1
	OpFind
	OpDelete
	OpDestroy
)

// Status codes a Response carries.
const (
	StatusOK byte = iota
	StatusError
	StatusNotFound
)

// maxKeyLength bounds a malicious or corrupt peer's declared key length so a
// bad length prefix cannot trigger an enormous allocation.
const maxKeyLength = 4096

// Message is one request frame: an operation plus the key it applies to,
// and (for OpInsert) the integer value to store.
type Message struct {
	Op    byte
	Key   []byte
	Value int64
}

// Response is one reply frame.
type Response struct {
	Status byte
	Value  int64
	Error  string
}

// WriteMessage frames and writes msg to w: [op(1)][keyLen(4)][key][value(8)].
// Value is only meaningful (and only read back) for OpInsert, but is always
// written so the frame shape never varies by operation.
func WriteMessage(w io.Writer, msg *Message) error {
	if len(msg.Key) > maxKeyLength {
		return errors.Errorf("netproto: key too long: %d bytes", len(msg.Key))
	}

	header := make([]byte, 1+4)
	header[0] = msg.Op
	binary.BigEndian.PutUint32(header[1:], uint32(len(msg.Key)))
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "netproto: write header")
	}
	if _, err := w.Write(msg.Key); err != nil {
		return errors.Wrap(err, "netproto: write key")
	}

	var valueBuf [8]byte
	binary.BigEndian.PutUint64(valueBuf[:], uint64(msg.Value))
	if _, err := w.Write(valueBuf[:]); err != nil {
		return errors.Wrap(err, "netproto: write value")
	}
	return nil
}

// ReadMessage reads one frame written by WriteMessage from r.
func ReadMessage(r io.Reader) (*Message, error) {
	header := make([]byte, 1+4)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	op := header[0]
	keyLen := binary.BigEndian.Uint32(header[1:])
	if keyLen > maxKeyLength {
		return nil, errors.Errorf("netproto: declared key length %d exceeds limit", keyLen)
	}

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Wrap(err, "netproto: read key")
	}

	var valueBuf [8]byte
	if _, err := io.ReadFull(r, valueBuf[:]); err != nil {
		return nil, errors.Wrap(err, "netproto: read value")
	}

	return &Message{
		Op:    op,
		Key:   key,
		Value: int64(binary.BigEndian.Uint64(valueBuf[:])),
	}, nil
}

// maxErrorLength bounds a response's error text, mirroring the key-length
// guard above.
const maxErrorLength = 4096

// WriteResponse frames and writes resp to w:
// [status(1)][value(8)][errLen(4)][err].
func WriteResponse(w io.Writer, resp *Response) error {
	if len(resp.Error) > maxErrorLength {
		resp = &Response{Status: resp.Status, Value: resp.Value, Error: resp.Error[:maxErrorLength]}
	}

	header := make([]byte, 1+8)
	header[0] = resp.Status
	binary.BigEndian.PutUint64(header[1:], uint64(resp.Value))
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "netproto: write response header")
	}

	errBytes := []byte(resp.Error)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(errBytes)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "netproto: write error length")
	}
	if _, err := w.Write(errBytes); err != nil {
		return errors.Wrap(err, "netproto: write error text")
	}
	return nil
}

// ReadResponse reads one frame written by WriteResponse from r.
func ReadResponse(r io.Reader) (*Response, error) {
	header := make([]byte, 1+8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	status := header[0]
	value := int64(binary.BigEndian.Uint64(header[1:]))

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, errors.Wrap(err, "netproto: read error length")
	}
	errLen := binary.BigEndian.Uint32(lenBuf[:])
	if errLen > maxErrorLength {
		return nil, errors.Errorf("netproto: declared error length %d exceeds limit", errLen)
	}

	errBytes := make([]byte, errLen)
	if _, err := io.ReadFull(r, errBytes); err != nil {
		return nil, errors.Wrap(err, "netproto: read error text")
	}

	return &Response{
		Status: status,
		Value:  value,
		Error:  string(errBytes),
	}, nil
}
