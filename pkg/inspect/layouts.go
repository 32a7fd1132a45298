package inspect

import (
	"encoding/binary"

	"sctrace/pkg/arch"
)

// structLayout describes how to materialize one kernel struct from tracee
// memory. Layouts are architecture-parameterized because field offsets
// differ across ABIs (struct stat most notably).
type structLayout struct {
	size  func(a arch.Arch) int
	parse func(data []byte, a arch.Arch) ([]StructField, error)
}

var layouts = map[string]*structLayout{
	"stat": {
		size: func(a arch.Arch) int {
			if a == arch.ARM64 {
				return 128
			}
			return 144
		},
		parse: parseStat,
	},
	"timespec": {
		size: func(arch.Arch) int { return 16 },
		parse: func(d []byte, _ arch.Arch) ([]StructField, error) {
			return []StructField{
				{"tv_sec", i64(d, 0)},
				{"tv_nsec", i64(d, 8)},
			}, nil
		},
	},
	"timeval": {
		size: func(arch.Arch) int { return 16 },
		parse: func(d []byte, _ arch.Arch) ([]StructField, error) {
			return []StructField{
				{"tv_sec", i64(d, 0)},
				{"tv_usec", i64(d, 8)},
			}, nil
		},
	},
	"rlimit": {
		size: func(arch.Arch) int { return 16 },
		parse: func(d []byte, _ arch.Arch) ([]StructField, error) {
			return []StructField{
				{"rlim_cur", i64(d, 0)},
				{"rlim_max", i64(d, 8)},
			}, nil
		},
	},
}

func u32(d []byte, off int) int64 { return int64(binary.LittleEndian.Uint32(d[off:])) }
func i64(d []byte, off int) int64 { return int64(binary.LittleEndian.Uint64(d[off:])) }

// parseStat decodes the kernel's struct stat. The amd64 and arm64 layouts
// diverge after st_ino: amd64 keeps a 64-bit nlink before a 32-bit mode,
// arm64 packs 32-bit mode and nlink directly after the inode.
func parseStat(d []byte, a arch.Arch) ([]StructField, error) {
	switch a {
	case arch.ARM64:
		return []StructField{
			{"st_dev", i64(d, 0)},
			{"st_ino", i64(d, 8)},
			{"st_mode", u32(d, 16)},
			{"st_nlink", u32(d, 20)},
			{"st_uid", u32(d, 24)},
			{"st_gid", u32(d, 28)},
			{"st_rdev", i64(d, 32)},
			{"st_size", i64(d, 48)},
			{"st_blksize", u32(d, 56)},
			{"st_blocks", i64(d, 64)},
			{"st_atime", i64(d, 72)},
			{"st_atime_nsec", i64(d, 80)},
			{"st_mtime", i64(d, 88)},
			{"st_mtime_nsec", i64(d, 96)},
			{"st_ctime", i64(d, 104)},
			{"st_ctime_nsec", i64(d, 112)},
		}, nil
	default: // amd64
		return []StructField{
			{"st_dev", i64(d, 0)},
			{"st_ino", i64(d, 8)},
			{"st_nlink", i64(d, 16)},
			{"st_mode", u32(d, 24)},
			{"st_uid", u32(d, 28)},
			{"st_gid", u32(d, 32)},
			{"st_rdev", i64(d, 40)},
			{"st_size", i64(d, 48)},
			{"st_blksize", i64(d, 56)},
			{"st_blocks", i64(d, 64)},
			{"st_atime", i64(d, 72)},
			{"st_atime_nsec", i64(d, 80)},
			{"st_mtime", i64(d, 88)},
			{"st_mtime_nsec", i64(d, 96)},
			{"st_ctime", i64(d, 104)},
			{"st_ctime_nsec", i64(d, 112)},
		}, nil
	}
}

// parseSockaddr pulls the address family out of a raw sockaddr blob; the
// remaining bytes stay attached to the value for the caller to interpret.
func parseSockaddr(d []byte) *StructVal {
	sv := &StructVal{Name: "sockaddr"}
	if len(d) >= 2 {
		sv.Fields = append(sv.Fields, StructField{"sa_family", int64(binary.LittleEndian.Uint16(d))})
	}
	return sv
}
