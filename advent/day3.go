package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

func init() {
	registerDay(3, parseDay3, total(day3a), total(day3b))
}

type tile uint8

const (
	tileSnow tile = iota
	tileTree
)

// A treeMap is a grid of tiles which repeats forever to the right.
type treeMap struct {
	tiles  []tile
	width  int
	height int
}

func parseDay3(input string) (*treeMap, error) {
	var m treeMap
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}
		if m.height == 0 {
			m.width = len(row)
		} else if len(row) != m.width {
			return nil, fmt.Errorf("line %d: got width %d; want %d", line, len(row), m.width)
		}
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case '.':
				m.tiles = append(m.tiles, tileSnow)
			case '#':
				m.tiles = append(m.tiles, tileTree)
			default:
				return nil, fmt.Errorf("line %d: invalid tile %q", line, row[i])
			}
		}
		m.height++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if m.height == 0 {
		return nil, errors.New("empty map")
	}
	return &m, nil
}

// at returns the tile at (x, y). It panics if y is outside the map.
func (m *treeMap) at(x, y int) tile {
	if y < 0 || y >= m.height {
		panic(fmt.Sprintf("y=%d outside map of height %d", y, m.height))
	}
	x %= m.width
	if x < 0 {
		x += m.width
	}
	return m.tiles[y*m.width+x]
}

func treesOnSlope(m *treeMap, dx, dy int) int64 {
	if dy <= 0 {
		panic("slope must move down")
	}
	var trees int64
	for x, y := 0, 0; y < m.height; x, y = x+dx, y+dy {
		if m.at(x, y) == tileTree {
			trees++
		}
	}
	log.Debug().Int("dx", dx).Int("dy", dy).Int64("trees", trees).Msg("slope")
	return trees
}

var day3Slopes = [][2]int{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

func day3a(m *treeMap) int64 {
	return treesOnSlope(m, 3, 1)
}

func day3b(m *treeMap) int64 {
	product := int64(1)
	for _, s := range day3Slopes {
		product *= treesOnSlope(m, s[0], s[1])
	}
	return product
}
