package keymatch

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Row documents stored under formatted keys are msgpack-encoded. The encoder
// pool and sorted map keys keep the encoding deterministic across runs.

// EncodeValue appends the msgpack encoding of doc to buf. Panics if doc is
// not encodable; that is a programming error, not input.
func EncodeValue(buf []byte, doc any) []byte {
	var w bytes.Buffer
	enc := msgpack.GetEncoder()
	enc.ResetDict(&w, nil)
	enc.SetSortMapKeys(true)
	err := enc.Encode(doc)
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("keymatch: failed to encode %T: %w", doc, err))
	}
	return appendRaw(buf, w.Bytes())
}

// DecodeValue decodes a msgpack row document into docPtr.
func DecodeValue(buf []byte, docPtr any) error {
	var r bytes.Reader
	r.Reset(buf)
	dec := msgpack.GetDecoder()
	dec.ResetDict(&r, nil)
	err := dec.Decode(docPtr)
	msgpack.PutDecoder(dec)
	if err != nil {
		return fmt.Errorf("keymatch: failed to decode msgpack into %T: %w", docPtr, err)
	}
	return nil
}
