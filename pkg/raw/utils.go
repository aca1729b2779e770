package raw

import (
	"fmt"
)

// PutBytes copies the whole of data into the front of buffer and returns the
// number of bytes written. Empty data writes nothing.
func PutBytes(buffer []byte, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	err := CopyN(buffer, data, len(data))
	if err != nil {
		return 0, fmt.Errorf("unable to put %d bytes into buffer of %d: %w", len(data), len(buffer), err)
	}

	return len(data), nil
}
