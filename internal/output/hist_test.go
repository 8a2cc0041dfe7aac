package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintLinearHistEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintLinearHist(&buf, make([]uint32, 32), "runqlen")

	// 全零直方图不产生任何输出
	assert.Empty(t, buf.String())
}

func TestPrintLinearHistHeader(t *testing.T) {
	var buf bytes.Buffer
	PrintLinearHist(&buf, []uint32{1}, "runqlen")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "     runqlen       : count     distribution", lines[0])
}

func TestPrintLinearHistRange(t *testing.T) {
	vals := make([]uint32, 32)
	vals[1] = 2
	vals[3] = 4

	var buf bytes.Buffer
	PrintLinearHist(&buf, vals, "runqlen")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 表头 + 槽位 1..3,槽位 0 与 4 之后的全零区间被跳过
	require.Len(t, lines, 4)

	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[2], "2")
	assert.Contains(t, lines[3], "3")

	// 最大计数的槽位占满整个条形区
	assert.Contains(t, lines[3], "|"+strings.Repeat("*", histStarsMax)+"|")
	// 计数为最大值一半的槽位占一半条形区
	assert.Contains(t, lines[1], "|"+strings.Repeat("*", histStarsMax/2)+strings.Repeat(" ", histStarsMax/2)+"|")
	// 全零槽位没有星号
	assert.Contains(t, lines[2], "|"+strings.Repeat(" ", histStarsMax)+"|")
}

func TestPrintLinearHistFormat(t *testing.T) {
	var buf bytes.Buffer
	PrintLinearHist(&buf, []uint32{3}, "runqlen")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "        0          : 3        |"+strings.Repeat("*", histStarsMax)+"|", lines[1])
}

func TestStarsProportional(t *testing.T) {
	assert.Equal(t, strings.Repeat("*", 40), stars(10, 10, 40))
	assert.Equal(t, strings.Repeat("*", 20)+strings.Repeat(" ", 20), stars(5, 10, 40))
	assert.Equal(t, strings.Repeat(" ", 40), stars(0, 10, 40))
}

func TestStarsZeroMax(t *testing.T) {
	assert.Equal(t, strings.Repeat(" ", 40), stars(0, 0, 40))
}
