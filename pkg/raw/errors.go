package raw

import (
	"errors"
	"strconv"
)

// Code is the outcome of a single copy request. Values are stable and
// negative for every rejection.
type Code int

const (
	Success                         Code = 0
	DestinationNull                 Code = -1
	SourceNull                      Code = -2
	InsufficientDestinationCapacity Code = -3
	ZeroLengthCopy                  Code = -4
	RegionsOverlap                  Code = -5
	// ShortSource is reported when the source holds fewer than n bytes.
	ShortSource Code = -6
	// Unknown is returned by CodeOf for errors not produced by this package.
	Unknown Code = -100
)

var (
	ErrDestinationNull      = errors.New("destination region is nil")
	ErrSourceNull           = errors.New("source region is nil")
	ErrInsufficientCapacity = errors.New("insufficient destination capacity")
	ErrZeroLength           = errors.New("nothing to copy")
	ErrRegionsOverlap       = errors.New("source and destination regions overlap")
	ErrShortSource          = errors.New("source region is shorter than requested length")
)

var codeErrors = map[Code]error{
	DestinationNull:                 ErrDestinationNull,
	SourceNull:                      ErrSourceNull,
	InsufficientDestinationCapacity: ErrInsufficientCapacity,
	ZeroLengthCopy:                  ErrZeroLength,
	RegionsOverlap:                  ErrRegionsOverlap,
	ShortSource:                     ErrShortSource,
}

var codeNames = map[Code]string{
	Success:                         "success",
	DestinationNull:                 "destination_null",
	SourceNull:                      "source_null",
	InsufficientDestinationCapacity: "insufficient_destination_capacity",
	ZeroLengthCopy:                  "zero_length_copy",
	RegionsOverlap:                  "regions_overlap",
	ShortSource:                     "short_source",
	Unknown:                         "unknown",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}

// Err returns the sentinel error for the code, nil for Success.
// Codes without a sentinel are reported as a generic error.
func (c Code) Err() error {
	if c == Success {
		return nil
	}
	if err, ok := codeErrors[c]; ok {
		return err
	}
	return errors.New("copy failed: " + c.String())
}

// CodeOf maps an error returned by CopyN back to its Code.
// Wrapped errors are unwrapped with errors.Is.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}

	for code, sentinel := range codeErrors {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return Unknown
}
