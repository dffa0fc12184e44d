package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized cell record")

// CellBinarySerializer stores a cell as a length-prefixed address, a
// length-prefixed source text (formula with marker, or literal) and
// the raw computed value. Persisting the value lets a load restore the
// cell exactly without re-evaluating its formula.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(address string, source string, value string) []byte {
	addressBytes := []byte(address)
	sourceBytes := []byte(source)

	record := make([]byte, 0, 4+len(addressBytes)+len(sourceBytes)+len(value))
	record = binary.LittleEndian.AppendUint16(record, uint16(len(addressBytes)))
	record = append(record, addressBytes...)
	record = binary.LittleEndian.AppendUint16(record, uint16(len(sourceBytes)))
	record = append(record, sourceBytes...)
	record = append(record, []byte(value)...)
	return record
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (address string, source string, value string, err error) {
	if len(data) < 2 {
		return "", "", "", fmt.Errorf("%w: record shorter than its header (data: %v)", SerializerError, data)
	}

	addressLength := int(binary.LittleEndian.Uint16(data))
	if len(data) < addressLength+4 {
		return "", "", "", fmt.Errorf("%w: address length %d exceeds record size %d", SerializerError, addressLength, len(data))
	}
	address = string(data[2 : addressLength+2])

	rest := data[addressLength+2:]
	sourceLength := int(binary.LittleEndian.Uint16(rest))
	if len(rest) < sourceLength+2 {
		return "", "", "", fmt.Errorf("%w: source length %d exceeds record size %d", SerializerError, sourceLength, len(rest))
	}
	source = string(rest[2 : sourceLength+2])
	value = string(rest[sourceLength+2:])
	return
}

// MarshalDimensions packs grid dimensions for the repository meta
// record.
func (s *CellBinarySerializer) MarshalDimensions(rows int, cols int) []byte {
	record := make([]byte, 0, 4)
	record = binary.LittleEndian.AppendUint16(record, uint16(rows))
	record = binary.LittleEndian.AppendUint16(record, uint16(cols))
	return record
}

func (s *CellBinarySerializer) UnmarshalDimensions(data []byte) (rows int, cols int, err error) {
	if len(data) != 4 {
		return 0, 0, fmt.Errorf("%w: dimensions record must be 4 bytes, got %d", SerializerError, len(data))
	}

	rows = int(binary.LittleEndian.Uint16(data))
	cols = int(binary.LittleEndian.Uint16(data[2:]))
	return
}
