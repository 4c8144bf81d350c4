package nn

// layerBlock locates one layer transition's weight matrix inside the flat
// parameter vector: rows is the source layer size plus the bias row, cols is
// the destination layer size. The table is computed once from the topology
// and shared by weight initialization, forward views and gradient assembly,
// so all three slice the flat vector identically.
type layerBlock struct {
	start int
	rows  int
	cols  int
}

func layerOffsets(topology []int) []layerBlock {
	blocks := make([]layerBlock, len(topology)-1)
	start := 0
	for l := 0; l < len(topology)-1; l++ {
		rows := topology[l] + 1
		cols := topology[l+1]
		blocks[l] = layerBlock{start: start, rows: rows, cols: cols}
		start += rows * cols
	}
	return blocks
}

func totalWeights(blocks []layerBlock) int {
	total := 0
	for _, b := range blocks {
		total += b.rows * b.cols
	}
	return total
}

func (b layerBlock) size() int {
	return b.rows * b.cols
}
