package source

import (
	"path/filepath"
)

// hasBOM reports whether content starts with a UTF-8 byte order mark.
// The BOM is never stripped; callers only record the flag.
func hasBOM(content []byte) bool {
	return len(content) >= 3 &&
		content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) //nolint:gosec // len(content) checked at Add
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Если LineIdx пустой, то весь файл — одна строка
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: находим наибольший lineIdx[i] < off. Строго меньше:
	// сам \n принадлежит строке, которую он завершает.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	// off стоит после \n с индексом hi, то есть на строке hi+1 (0-based)
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	startOff := lineIdx[hi] + 1

	return LineCol{Line: uint32(hi + 2), Col: off - startOff + 1} //nolint:gosec // hi >= 0
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
