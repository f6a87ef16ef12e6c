package input

import "cpboy/hal"

// Keyspace names one of the two legacy key enumerations. Both map onto
// hal.KeyCode; the split survives as the two dispatch priority tiers.
type Keyspace uint8

const (
	Keyspace1 Keyspace = 1
	Keyspace2 Keyspace = 2
)

// LegacyKey ties a device keycode to its bit in the legacy key words.
type LegacyKey struct {
	Code hal.KeyCode
	Mask uint32
}

// Keys1 lists the first keyspace in enumeration order. Masks test key word 1.
var Keys1 = [...]LegacyKey{
	{hal.KeyShift, 0x80000000},
	{hal.KeyClear, 0x00020000},
	{hal.KeyBackspace, 0x00000080},
	{hal.KeyLeft, 0x00004000},
	{hal.KeyRight, 0x00008000},
	{hal.KeyZ, 0x00002000},
	{hal.KeyPower, 0x00000040},
	{hal.KeyDivide, 0x40000000},
	{hal.KeyMultiply, 0x20000000},
	{hal.KeySubtract, 0x10000000},
	{hal.KeyAdd, 0x08000000},
	{hal.KeyExe, 0x04000000},
	{hal.KeyExp, 0x00000004},
	{hal.Key3, 0x00000008},
	{hal.Key6, 0x00000010},
	{hal.Key9, 0x00000020},
}

// Keys2 lists the second keyspace. Masks test key word 2.
var Keys2 = [...]LegacyKey{
	{hal.KeyKeyboard, 0x80000000},
	{hal.KeyUp, 0x00800000},
	{hal.KeyDown, 0x00400000},
	{hal.KeyEquals, 0x00000080},
	{hal.KeyX, 0x00000040},
	{hal.KeyY, 0x40000000},
	{hal.KeyLeftBracket, 0x00000020},
	{hal.KeyRightBracket, 0x00000010},
	{hal.KeyComma, 0x00000008},
	{hal.KeyNegative, 0x00000004},
	{hal.Key0, 0x04000000},
	{hal.KeyDot, 0x00040000},
	{hal.Key1, 0x08000000},
	{hal.Key2, 0x00080000},
	{hal.Key4, 0x10000000},
	{hal.Key5, 0x00100000},
	{hal.Key7, 0x20000000},
	{hal.Key8, 0x00200000},
}

// Registry capacities match the keyspace sizes.
const (
	Capacity1 = len(Keys1)
	Capacity2 = len(Keys2)
)

// KeyspaceOf reports which legacy keyspace code belongs to, or 0.
func KeyspaceOf(code hal.KeyCode) Keyspace {
	for _, k := range Keys1 {
		if k.Code == code {
			return Keyspace1
		}
	}
	for _, k := range Keys2 {
		if k.Code == code {
			return Keyspace2
		}
	}
	return 0
}

// LegacyWords packs the pressed keys of a snapshot into the two legacy key
// words, the inverse of what LegacySource consumes.
func LegacyWords(pressed func(hal.KeyCode) bool) (key1, key2 uint32) {
	for _, k := range Keys1 {
		if pressed(k.Code) {
			key1 |= k.Mask
		}
	}
	for _, k := range Keys2 {
		if pressed(k.Code) {
			key2 |= k.Mask
		}
	}
	return key1, key2
}
