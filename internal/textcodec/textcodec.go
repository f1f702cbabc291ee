// internal/textcodec/textcodec.go
package textcodec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
)

// DefaultPath is the tuning file the vehicle reads and writes.
const DefaultPath = "driverconf.txt"

// Result describes what one Load/Decode did to the record.
type Result struct {
	// Applied lists fields overwritten, in file order.
	Applied []string
	// Unknown lists names that matched no field. Their values were dropped.
	Unknown []string
	// StoppedAt is the 1-based line number of the first malformed line.
	// Zero means the whole input was consumed.
	StoppedAt int
}

// Save writes rec to path, one "<name> <value>" line per field in schema order.
// If path cannot be opened nothing is written and the error is returned.
func Save(rec *record.Record, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textcodec: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("textcodec: close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, rec); err != nil {
		return fmt.Errorf("textcodec: write %s: %w", path, err)
	}
	return nil
}

// Encode writes the text form of rec to w.
func Encode(w io.Writer, rec *record.Record) error {
	bw := bufio.NewWriter(w)
	var werr error
	rec.Each(func(_ int, it schema.Item, v int16) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "%-20s %d\n", it.Field, v)
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}

// Load patches rec from the file at path.
// Fields not named in the file keep their current values.
// If path cannot be opened rec is left untouched and the error is returned.
func Load(rec *record.Record, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("textcodec: open %s: %w", path, err)
	}
	defer f.Close()

	res, err := decode(f, rec, path)
	if err != nil {
		return res, fmt.Errorf("textcodec: read %s: %w", path, err)
	}
	return res, nil
}

// Decode patches rec from r. See Load.
func Decode(r io.Reader, rec *record.Record) (Result, error) {
	return decode(r, rec, "")
}

func decode(r io.Reader, rec *record.Record, source string) (Result, error) {
	var res Result

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		name, value, ok := parsePair(text)
		if !ok {
			return stopAt(res, line, source), nil
		}

		if !rec.Set(name, value) {
			log.Warn().
				Str("source", source).
				Int("line", line).
				Str("name", name).
				Msg("ignoring unknown variable")
			res.Unknown = append(res.Unknown, name)
			continue
		}
		res.Applied = append(res.Applied, name)
	}

	if err := sc.Err(); err != nil {
		// An over-long line is malformed input, not a read failure.
		if errors.Is(err, bufio.ErrTooLong) {
			return stopAt(res, line+1, source), nil
		}
		return res, err
	}
	return res, nil
}

func stopAt(res Result, line int, source string) Result {
	res.StoppedAt = line
	log.Debug().
		Str("source", source).
		Int("line", line).
		Msg("malformed line, remaining input ignored")
	return res
}

// parsePair accepts exactly one name token followed by one base-10 integer
// that fits in 16 bits.
func parsePair(text string) (string, int16, bool) {
	tokens := strings.Fields(text)
	if len(tokens) != 2 {
		return "", 0, false
	}
	v, err := strconv.ParseInt(tokens[1], 10, 16)
	if err != nil {
		return "", 0, false
	}
	return tokens[0], int16(v), true
}
