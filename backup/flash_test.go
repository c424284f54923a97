package backup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unlock(f *Flash) {
	f.Write(0x5555, 0xAA)
	f.Write(0x2AAA, 0x55)
}

func TestProgramThenRead(t *testing.T) {
	f := New(64 * 1024)
	f.Write(0x1234, 0xFF) // no-op outside a command sequence: dropped, logged

	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x1234, 0x0F)

	require.EqualValues(t, 0xFF&0x0F, f.Read(0x1234))
}

func TestProgramIsAndOnly(t *testing.T) {
	f := New(64 * 1024)

	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x1234, 0x3C)
	require.EqualValues(t, 0x3C, f.Read(0x1234))

	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x1234, 0xFF) // attempting to set bits back to 1 has no effect
	require.EqualValues(t, 0x3C, f.Read(0x1234))
}

func TestSectorErase(t *testing.T) {
	f := New(64 * 1024)

	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x0500, 0x00)
	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x1500, 0x00)

	unlock(f)
	f.Write(0x5555, 0x80)
	unlock(f)
	f.Write(0x0500, 0x30) // erase sector containing 0x0500

	require.EqualValues(t, 0xFF, f.Read(0x0500))
	require.EqualValues(t, 0x00, f.Read(0x1500))
	for addr := uint32(0); addr < 0x1000; addr++ {
		require.EqualValues(t, 0xFF, f.Read(addr))
	}
}

func TestChipErase(t *testing.T) {
	f := New(64 * 1024)

	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x2000, 0x00)

	unlock(f)
	f.Write(0x5555, 0x80)
	unlock(f)
	f.Write(0x5555, 0x10)

	for addr := uint32(0); addr < 64*1024; addr += 4096 {
		require.EqualValues(t, 0xFF, f.Read(addr))
	}
}

func TestBankChange(t *testing.T) {
	f := New(128 * 1024)

	unlock(f)
	f.Write(0x5555, 0xB0)
	f.Write(0x0000, 1)

	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x0010, 0x77)

	require.EqualValues(t, 0x77, f.Read(0x0010))

	unlock(f)
	f.Write(0x5555, 0xB0)
	f.Write(0x0000, 0)
	require.EqualValues(t, 0xFF, f.Read(0x0010))
}

func TestChipID(t *testing.T) {
	f := New(64 * 1024)

	unlock(f)
	f.Write(0x5555, 0x90)
	require.EqualValues(t, 0xBF, f.Read(0))
	require.EqualValues(t, 0xD4, f.Read(1))

	unlock(f)
	f.Write(0x5555, 0xF0)
	require.EqualValues(t, 0xFF, f.Read(0))
}

func TestChipIDLeaveWithoutEnterPanics(t *testing.T) {
	f := New(64 * 1024)
	unlock(f)
	require.Panics(t, func() { f.Write(0x5555, 0xF0) })
}

func TestBackupType(t *testing.T) {
	require.Equal(t, "FLASH (512K)", New(64*1024).BackupType())
	require.Equal(t, "FLASH (1M)", New(128*1024).BackupType())
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	f := New(64 * 1024)
	unlock(f)
	f.Write(0x5555, 0xA0)
	f.Write(0x0010, 0x42)

	snap := f.Snapshot()

	g := New(64 * 1024)
	g.Restore(snap)
	require.EqualValues(t, 0x42, g.Read(0x0010))
}
