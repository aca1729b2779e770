// Package selftest holds the fixed sequence of checks run against the copy
// engine by the selftest command.
package selftest

import (
	"bytes"
	"fmt"

	"github.com/mtrqq/safecopy/pkg/raw"
	"github.com/mtrqq/safecopy/pkg/utils"
)

const (
	shortText   = "hello string to be copied"
	longText    = "hello string to be copied 12 3 4 5 3 3 23 2 3 3 4 4 5 65 6 5 5 4 4 4 34 34 4 5 6 6 5 5 4 4 5 5 56 6"
	overlapText = "Hello this is string for overlapped src and dest"
)

type Case struct {
	Name string
	Run  func(engine *raw.Engine) error
}

type Result struct {
	Name string
	Err  error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

type Report struct {
	Results []Result
}

func (r Report) Passed() bool {
	return len(r.Failed()) == 0
}

func (r Report) Failed() []Result {
	var failed []Result
	for _, result := range r.Results {
		if !result.Passed() {
			failed = append(failed, result)
		}
	}
	return failed
}

// Run executes every case in order. A failing case doesn't stop the run.
func Run(engine *raw.Engine, cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		report.Results = append(report.Results, Result{Name: c.Name, Err: c.Run(engine)})
	}
	return report
}

func Cases() []Case {
	return []Case{
		{Name: "source_null", Run: sourceNull},
		{Name: "destination_null", Run: destinationNull},
		{Name: "full_copy", Run: fullCopy},
		{Name: "partial_copy", Run: partialCopy},
		{Name: "overlap", Run: overlap},
		{Name: "zero_bytes", Run: zeroBytes},
		{Name: "smaller_destination", Run: smallerDestination},
	}
}

func expectCode(got, want raw.Code) error {
	if got == want {
		return nil
	}
	if got == raw.Success {
		return fmt.Errorf("unexpected result %s, want %s", got, want)
	}
	return fmt.Errorf("unexpected result %s, want %s: %w", got, want, got.Err())
}

func sourceNull(engine *raw.Engine) error {
	dst := make([]byte, 10)
	return expectCode(engine.Copy(dst, nil, 10), raw.SourceNull)
}

func destinationNull(engine *raw.Engine) error {
	src := utils.ByteArrayFromString(longText)
	return expectCode(engine.Copy(nil, src, 10), raw.DestinationNull)
}

func fullCopy(engine *raw.Engine) error {
	src := utils.CString(longText, 128)
	dst := make([]byte, 128)
	n := utils.CStringLen(src) + 1

	if err := expectCode(engine.Copy(dst, src, n), raw.Success); err != nil {
		return err
	}

	if utils.CStringLen(dst) != utils.CStringLen(src) || !bytes.Equal(dst[:n], src[:n]) {
		return fmt.Errorf("destination %q doesn't match source %q", cString(dst), cString(src))
	}
	return nil
}

// cString views a zero-terminated buffer as a string without copying it.
func cString(b []byte) string {
	return utils.StringTakeOverByteArray(b[:utils.CStringLen(b)])
}

func partialCopy(engine *raw.Engine) error {
	src := utils.ByteArrayFromString(shortText)
	dst := make([]byte, 100)

	if err := expectCode(engine.Copy(dst, src, 10), raw.Success); err != nil {
		return err
	}

	if !bytes.Equal(dst[:10], src[:10]) {
		return fmt.Errorf("destination %q doesn't match source prefix %q", dst[:10], src[:10])
	}
	if utils.CStringLen(dst) != 10 {
		return fmt.Errorf("bytes past the requested length were written")
	}
	return nil
}

func overlap(engine *raw.Engine) error {
	buffer := utils.CString(overlapText, 128)
	dst := buffer[20:120]
	before := bytes.Clone(buffer)

	if err := expectCode(engine.Copy(dst, buffer, 32), raw.RegionsOverlap); err != nil {
		return err
	}

	if !bytes.Equal(before, buffer) {
		return fmt.Errorf("rejected copy modified the buffer")
	}
	return nil
}

func zeroBytes(engine *raw.Engine) error {
	src := utils.ByteArrayFromString(shortText)
	dst := make([]byte, 100)
	return expectCode(engine.Copy(dst, src, 0), raw.ZeroLengthCopy)
}

func smallerDestination(engine *raw.Engine) error {
	src := utils.ByteArrayFromString(shortText)
	dst := make([]byte, 10)
	return expectCode(engine.Copy(dst, src, 20), raw.InsufficientDestinationCapacity)
}
