// Package backup emulates the cartridge backup chips: a command-sequenced
// flash memory controller addressed through a 64KiB banked window.
package backup

import "log"

// flashState names the controller's command-sequencer state.
type flashState int

const (
	stateWaitForCommand flashState = iota
	stateWriteSingleByte
	stateBankChange
)

// commandContext distinguishes a bare command sequence from one already
// inside the two-step erase prefix (5555=80), since 5555=10 (chip erase)
// and the sector-erase byte only mean anything in that context.
type commandContext int

const (
	ctxNone commandContext = iota
	ctxErase
)

type readMode int

const (
	readData readMode = iota
	readChipID
)

// Flash is a 64KiB- or 128KiB-addressable flash backup chip, command
// sequenced the way real GBA cartridges expose SST/Macronix/Panasonic
// (64KiB) or Sanyo/Macronix (128KiB) parts: writes at 0x5555/0x2AAA
// advance a 3-byte unlock sequence, and the trailing command byte selects
// chip-ID mode, sector/chip erase, single-byte programming, or bank
// switching.
type Flash struct {
	state    flashState
	step     int
	ctx      commandContext
	readMode readMode
	bank     uint32
	data     []uint8
}

// New allocates a Flash of size bytes (64*1024 or 128*1024), filled with
// the erased-cell value 0xFF.
func New(size int) *Flash {
	data := make([]uint8, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &Flash{data: data}
}

// BackupType names the backup chip by its capacity: "FLASH (512K)" for a
// 64KiB array and "FLASH (1M)" for a 128KiB array.
func (f *Flash) BackupType() string {
	switch len(f.data) {
	case 64 * 1024:
		return "FLASH (512K)"
	case 128 * 1024:
		return "FLASH (1M)"
	default:
		panic("backup: flash size must be 64KiB or 128KiB")
	}
}

// Read returns the byte at the given 16-bit-windowed address, from either
// the banked data store or, in chip-ID mode, a fixed two-byte identity.
func (f *Flash) Read(addr uint32) uint8 {
	addr &= 0xFFFF

	if f.readMode == readChipID {
		if len(f.data) == 64*1024 {
			// SST: ID 0xD4BF
			switch addr {
			case 0x0000:
				return 0xBF
			case 0x0001:
				return 0xD4
			default:
				return 0
			}
		}
		// Sanyo: ID 0x1362
		switch addr {
		case 0x0000:
			return 0x62
		case 0x0001:
			return 0x13
		default:
			return 0
		}
	}

	return f.data[f.bank*0x10000+(addr&0xFFFF)]
}

// Write advances the command sequencer or, in a data-writing state, mutates
// the backing store.
func (f *Flash) Write(addr uint32, data uint8) {
	addr &= 0xFFFF

	log.Printf("backup: flash write 0x%04X = 0x%02X", addr, data)

	switch f.state {
	case stateWaitForCommand:
		f.stepCommand(addr, data)
	case stateWriteSingleByte:
		// Only a 1->0 transition is physically possible; AND masks in the
		// new bits without ever setting an erased (1) bit back to 1.
		f.data[f.bank*0x10000+(addr&0xFFFF)] &= data
		f.resetToWaitForCommand()
	case stateBankChange:
		if addr != 0 {
			log.Printf("backup: flash bank change at non-zero address 0x%04X dropped", addr)
			f.resetToWaitForCommand()
			return
		}
		if int(data) >= len(f.data)/(64*1024) {
			panic("backup: bank change selects out-of-range bank")
		}
		f.bank = uint32(data)
		f.resetToWaitForCommand()
	}
}

func (f *Flash) stepCommand(addr uint32, data uint8) {
	switch {
	case f.step == 0 && addr == 0x5555 && data == 0xAA:
		f.step = 1

	case f.step == 1 && addr == 0x2AAA && data == 0x55:
		f.step = 2

	case f.step == 2 && addr == 0x5555 && data == 0x90 && f.ctx == ctxNone:
		log.Print("backup: flash enter ID mode")
		f.readMode = readChipID
		f.resetToWaitForCommand()

	case f.step == 2 && addr == 0x5555 && data == 0xF0 && f.ctx == ctxNone:
		log.Print("backup: flash terminate ID mode")
		if f.readMode != readChipID {
			panic("backup: flash left ID mode without entering")
		}
		f.readMode = readData
		f.resetToWaitForCommand()

	case f.step == 2 && addr == 0x5555 && data == 0x80:
		log.Print("backup: flash enter erase mode")
		f.step = 0
		f.ctx = ctxErase

	case f.step == 2 && addr == 0x5555 && data == 0x10 && f.ctx == ctxErase:
		log.Print("backup: flash erase entire chip")
		for i := range f.data {
			f.data[i] = 0xFF
		}
		f.resetToWaitForCommand()

	case f.step == 2 && data == 0x30 && f.ctx == ctxErase:
		sector := addr >> 12
		log.Printf("backup: flash erase sector %d", sector)
		base := f.bank * 0x10000
		lo, hi := base+sector*0x1000, base+(sector+1)*0x1000
		for i := lo; i < hi; i++ {
			f.data[i] = 0xFF
		}
		f.resetToWaitForCommand()

	case f.step == 2 && addr == 0x5555 && data == 0xA0:
		log.Print("backup: flash write single byte")
		f.state = stateWriteSingleByte
		f.step = 0
		f.ctx = ctxNone

	case f.step == 2 && addr == 0x5555 && data == 0xB0:
		log.Print("backup: flash enter bank change")
		f.state = stateBankChange
		f.step = 0
		f.ctx = ctxNone

	default:
		log.Printf("backup: flash invalid command data=0x%02X step=%d ctx=%d", data, f.step, f.ctx)
	}
}

func (f *Flash) resetToWaitForCommand() {
	f.state = stateWaitForCommand
	f.step = 0
	f.ctx = ctxNone
}

// Snapshot returns the flash's persisted contents: a verbatim copy of the
// data store, with no header and no bank selector, as a host would write
// to a save file.
func (f *Flash) Snapshot() []uint8 {
	out := make([]uint8, len(f.data))
	copy(out, f.data)
	return out
}

// Restore replaces the data store from a previously captured Snapshot. The
// command sequencer and read mode reset, matching a cartridge power-cycle.
func (f *Flash) Restore(data []uint8) {
	if len(data) != len(f.data) {
		panic("backup: snapshot size does not match flash chip size")
	}
	copy(f.data, data)
	f.bank = 0
	f.resetToWaitForCommand()
	f.readMode = readData
}
