// Package nds reads Nintendo DS ROM headers.
//
// Cartridge dumps, homebrew and DSiWare executables all share the same header
// layout, so a single parser covers every file the classifier cares about.
package nds

import (
	"fmt"
	"io"
	"strings"

	"github.com/dstweak-cli/dstweak/filesystem"
)

// HeaderLen is the portion of the header every valid executable carries.
const HeaderLen = 0x160

// Unit codes at header offset 0x12 describe the hardware a game targets.
const (
	UnitNTR    byte = 0x00 // DS only
	UnitHybrid byte = 0x02 // DS and DSi
	UnitTWL    byte = 0x03 // DSi only
)

// Header holds the fields of an NDS ROM header the application reads.
type Header struct {
	Title      string // internal short title, up to 12 ASCII characters
	GameCode   string // four character game code, blank or #### for most homebrew
	MakerCode  string
	UnitCode   byte
	RomVersion byte
}

// TWLOnly reports whether the game refuses to run on DS-mode hardware.
func (h Header) TWLOnly() bool {
	return h.UnitCode == UnitTWL
}

// TWLCapable reports whether the game can use DSi hardware features.
func (h Header) TWLCapable() bool {
	return h.UnitCode&UnitHybrid != 0
}

// SDKGeneration estimates the SDK generation the game was built with.
// TWL-capable games are necessarily generation 5; for the rest the header
// alone is not enough and zero is returned.
func (h Header) SDKGeneration() int {
	if h.TWLCapable() {
		return 5
	}
	return 0
}

// ParseHeader decodes a header from the start of the reader.
func ParseHeader(r io.Reader) (Header, error) {
	raw := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}

	return Header{
		Title:      trimField(raw[0x00:0x0C]),
		GameCode:   trimField(raw[0x0C:0x10]),
		MakerCode:  trimField(raw[0x10:0x12]),
		UnitCode:   raw[0x12],
		RomVersion: raw[0x1E],
	}, nil
}

// ReadHeader opens the file at path and decodes its header.
func ReadHeader(path string) (Header, error) {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("open rom: %w", err)
	}
	defer file.Close()

	return ParseHeader(file)
}

// trimField strips the zero and space padding header fields carry.
func trimField(raw []byte) string {
	return strings.TrimRight(string(raw), "\x00 ")
}
