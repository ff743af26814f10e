package domain

import (
	"fmt"
	"math/bits"
)

// Level is the display intensity bucket of a day's contributions.
type Level int

const (
	Level0 Level = iota // no activity
	Level1
	Level2
	Level3
	Level4 // highest bucket
)

// LevelCount is the number of distinct levels.
const LevelCount = 5

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{Level0, Level1, Level2, Level3, Level4}
}

func (l Level) Valid() bool {
	return l >= Level0 && l <= Level4
}

// Clamp maps l to the nearest valid level.
func (l Level) Clamp() Level {
	if l < Level0 {
		return Level0
	}
	if l > Level4 {
		return Level4
	}
	return l
}

func (l Level) String() string {
	return fmt.Sprintf("%d", int(l))
}

// LevelForCount derives a level for count relative to the busiest day max.
// Zero maps to Level0; any positive count lands in Level1..Level4.
func LevelForCount(count, max int64) Level {
	if count <= 0 {
		return Level0
	}
	if max < count {
		max = count
	}
	// Smallest k with 4*count <= k*max, compared in 128 bits.
	for k := Level1; k < Level4; k++ {
		if !mulGreater(4, uint64(count), uint64(k), uint64(max)) {
			return k
		}
	}
	return Level4
}

// mulGreater reports whether a*b > c*d without overflow.
func mulGreater(a, b, c, d uint64) bool {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	return hi1 > hi2 || (hi1 == hi2 && lo1 > lo2)
}
