package contracts

type CellSerializer interface {
	Marshal(address string, source string, value string) []byte
	Unmarshal(data []byte) (address string, source string, value string, err error)
	MarshalDimensions(rows int, cols int) []byte
	UnmarshalDimensions(data []byte) (rows int, cols int, err error)
}
