package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/keyper-labs/linera.dev/app"
	"github.com/keyper-labs/linera.dev/errors"
)

// maxLineSize limits a single input line, hex encoded transaction included.
const maxLineSize = 1 << 20

// replay delivers every transaction read from in and writes one result
// line per transaction to out. Input lines are
//
//	<unix time in microseconds> <hex encoded transaction>
//
// Empty lines and lines starting with # are ignored. Result lines are
//
//	<code> <hex encoded data> <log>
//
// A failed transaction is reported in its result line. Malformed input
// stops the replay.
func replay(a *app.Application, in io.Reader, out io.Writer) (int, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var delivered, lineNo int
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		now, raw, err := parseLine(line)
		if err != nil {
			return delivered, errors.Wrapf(err, "line %d", lineNo)
		}
		code, data, logMsg := a.DeliverABCI(now, raw)
		if _, err := fmt.Fprintf(out, "%d\t%x\t%s\n", code, data, logMsg); err != nil {
			return delivered, err
		}
		delivered++
	}
	if err := scanner.Err(); err != nil {
		return delivered, errors.Wrap(errors.ErrInput, err.Error())
	}
	return delivered, nil
}

func parseLine(line string) (time.Time, []byte, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return time.Time{}, nil, errors.Wrapf(errors.ErrInput, "want 2 fields, got %d", len(fields))
	}
	micro, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return time.Time{}, nil, errors.Wrapf(errors.ErrInput, "time: %s", err)
	}
	raw, err := hex.DecodeString(fields[1])
	if err != nil {
		return time.Time{}, nil, errors.Wrapf(errors.ErrInput, "transaction: %s", err)
	}
	return time.UnixMicro(micro).UTC(), raw, nil
}
