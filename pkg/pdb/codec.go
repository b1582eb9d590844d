package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// On-disk layout, little-endian, header followed by payload:
//
//	offset 0      3 bytes   ASCII "MAX" or "ADD"
//	offset 3      1 byte    N, the goal length
//	offset 4      N bytes   goal symbols, each in 1..N
//	offset 4+N    N bytes   p-pattern, '-' (0x2d) or '*' (0x2a)
//	offset 4+2N   N bytes   c-pattern, same alphabet
//	offset 4+3N   A bytes   payload, one true cost per abstract state
//
// A is the address space of the p-pattern; the total file size must equal
// 4 + 3N + A. Payload bytes carry true costs: the in-memory offset-by-one
// is removed on write and restored on read. A stored 0 is the abstract
// goal's zero cost or an entry never reached in the abstract space; Read
// adds one to every byte, so both load as true cost 0.

// Write serializes the database to path. The bytes are first written to a
// unique temporary file next to the target and renamed into place, so a
// failed write leaves no partial output behind.
func Write(p *PDB, path string) error {
	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	if err := writeTo(p, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return nil
}

func writeTo(p *PDB, w io.Writer) error {
	bw := bufio.NewWriter(w)

	goal := p.Goal()
	header := make([]byte, 0, 4+3*len(goal))
	header = append(header, p.Mode().String()...)
	header = append(header, byte(len(goal)))
	for _, s := range goal {
		header = append(header, byte(s))
	}
	header = append(header, p.PPattern()...)
	header = append(header, p.CPattern()...)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}

	// Remove the offset-by-one: non-zero cells store g+1, the file stores
	// true costs.
	for index := Offset(0); index < p.Capacity(); index++ {
		v := p.Cell(index)
		if v != zero {
			v--
		}
		if err := bw.WriteByte(v); err != nil {
			return fmt.Errorf("%w: %v", ErrPayload, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}
	return nil
}

// Read loads a database from path, validating the header against the file
// size and restoring the in-memory offset-by-one encoding.
func Read(path string) (*PDB, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSizeUnknown, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	defer f.Close()

	return readFrom(bufio.NewReader(f), info.Size())
}

func readFrom(r io.Reader, total int64) (*PDB, error) {
	var tag [3]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderMode, err)
	}
	mode, err := ParseMode(string(tag[:]))
	if err != nil {
		return nil, err
	}

	var nb [1]byte
	if _, err := io.ReadFull(r, nb[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderLength, err)
	}
	n := int(nb[0])

	rawGoal := make([]byte, n)
	if _, err := io.ReadFull(r, rawGoal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderGoal, err)
	}
	goal := make([]int, n)
	for i, b := range rawGoal {
		goal[i] = int(b)
	}

	rawP := make([]byte, n)
	if _, err := io.ReadFull(r, rawP); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderPPattern, err)
	}
	ppattern := string(rawP)

	rawC := make([]byte, n)
	if _, err := io.ReadFull(r, rawC); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderCPattern, err)
	}
	cpattern := string(rawC)

	space := AddressSpace(ppattern)
	if want := int64(space) + int64(4+3*n); want != total {
		return nil, fmt.Errorf("%w: file holds %d bytes, header implies %d",
			ErrSizeMismatch, total, want)
	}

	table, err := NewTable(goal, ppattern)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, space)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}

	// Restore the offset-by-one used by Find.
	for index, v := range payload {
		table.Set(Offset(index), v+1)
	}

	return &PDB{mode: mode, cpattern: cpattern, table: table}, nil
}
