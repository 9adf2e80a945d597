package mcmc

// block is one independently-proposed slice of the packed parameter
// vector, with its own isotropic proposal scale and accept/reject
// counters (spec.md §4.4's "per-block proposal sub-models").
type block struct {
	indices  []int
	scale    float64
	accepts  int
	attempts int
}

// partition builds the blocks for a packed vector of the given
// vector/matrix/weights part sizes, per mode.
func partition(mode ChunkMode, vecLen, matLen, wLen int) []*block {
	total := vecLen + matLen + wLen
	switch mode {
	case ChunkAllAtOnce:
		return []*block{newBlock(rangeIndices(0, total))}
	case ChunkByItem:
		blocks := make([]*block, total)
		for i := 0; i < total; i++ {
			blocks[i] = newBlock([]int{i})
		}
		return blocks
	default: // ChunkByPage
		var blocks []*block
		if vecLen > 0 {
			blocks = append(blocks, newBlock(rangeIndices(0, vecLen)))
		}
		if matLen > 0 {
			blocks = append(blocks, newBlock(rangeIndices(vecLen, vecLen+matLen)))
		}
		if wLen > 0 {
			blocks = append(blocks, newBlock(rangeIndices(vecLen+matLen, total)))
		}
		if len(blocks) == 0 {
			blocks = append(blocks, newBlock(nil))
		}
		return blocks
	}
}

func newBlock(indices []int) *block {
	return &block{indices: indices, scale: 1.0}
}

func rangeIndices(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// adapt scales the block's proposal isotropically toward the target
// accept rate, damped toward 1 by cfg's AdaptDamping (spec.md §4.4:
// "damped toward 1"). The damping is a fixed constant; it does not decay
// as the chain runs.
func (b *block) adapt(target, damping float64) {
	if b.attempts == 0 {
		return
	}
	observed := float64(b.accepts) / float64(b.attempts)
	ratio := 1.0
	if target > 0 {
		ratio = observed / target
	}
	b.scale *= 1 + damping*(ratio-1)
	if b.scale <= 0 {
		b.scale = 1e-6
	}
	b.accepts, b.attempts = 0, 0
}
