package output

import (
	"fmt"
	"io"
	"strings"
)

const histStarsMax = 40

// PrintLinearHist 将槽位数组渲染为线性直方图文本,
// 只打印首个与最后一个非零槽位之间的区间,星号长度与计数成正比
func PrintLinearHist(w io.Writer, vals []uint32, label string) {
	idxMin, idxMax := -1, -1
	var valMax uint32

	for i, v := range vals {
		if v > 0 {
			if idxMin < 0 {
				idxMin = i
			}
			idxMax = i
		}
		if v > valMax {
			valMax = v
		}
	}

	if idxMax < 0 {
		return
	}

	fmt.Fprintf(w, "     %-13s : count     distribution\n", label)
	for i := idxMin; i <= idxMax; i++ {
		fmt.Fprintf(w, "        %-10d : %-8d |%s|\n", i, vals[i], stars(vals[i], valMax, histStarsMax))
	}
}

func stars(val, valMax uint32, width int) string {
	if valMax == 0 {
		return strings.Repeat(" ", width)
	}

	v := val
	if v > valMax {
		v = valMax
	}

	n := int(uint64(v) * uint64(width) / uint64(valMax))

	var sb strings.Builder
	sb.WriteString(strings.Repeat("*", n))
	sb.WriteString(strings.Repeat(" ", width-n))
	if val > valMax {
		sb.WriteString("+")
	}
	return sb.String()
}
