package gobrk

import s "github.com/bnclabs/gosettings"

// Alignment block headers are padded to this boundary. Payload
// addresses track the sizes callers request, headers do not re-align
// them.
const Alignment = int64(16)

// Maxregionsize maximum reservable capacity for a single allocator.
// Can be used as default for the `capacity` setting.
const Maxregionsize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Defaultsettings for gobrk allocators:
//
// "capacity" (int64, default: 64MB)
//		Bytes of address space reserved for the managed region. The
//		break can never move past it.
//
// "region" (string, default: "system")
//		Backing for the managed region. "system" reserves anonymous
//		memory from the OS, "slice" carves the region out of a Go
//		byte-slice and is fully portable.
func Defaultsettings() s.Settings {
	return s.Settings{
		"capacity": int64(64 * 1024 * 1024),
		"region":   "system",
	}
}

func validatesettings(setts s.Settings) {
	capacity := setts.Int64("capacity")
	if capacity <= 0 {
		panicerr("capacity %v should be positive", capacity)
	} else if capacity > Maxregionsize {
		panicerr("capacity %v exceeds %v", capacity, Maxregionsize)
	}
	switch region := setts.String("region"); region {
	case "system", "slice":
	default:
		panicerr("unknown region %q", region)
	}
}
