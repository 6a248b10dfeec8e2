package widget

// ItemKind selects how a container sizes one child along its stacking
// axis (rows for Pile, columns for Columns)
type ItemKind uint8

const (
	// ItemWeight shares remaining space proportionally to Amount
	ItemWeight ItemKind = iota
	// ItemGiven reserves exactly Amount cells
	ItemGiven
	// ItemPack asks the flow child for its natural extent
	ItemPack
)

// Item pairs a child widget with its sizing rule
type Item struct {
	W      Widget
	Kind   ItemKind
	Amount int
}

// Weighted returns an item sharing remaining space by weight
func Weighted(w Widget, weight int) Item {
	if weight < 1 {
		weight = 1
	}
	return Item{W: w, Kind: ItemWeight, Amount: weight}
}

// Given returns an item reserving an exact extent
func Given(w Widget, n int) Item {
	if n < 0 {
		n = 0
	}
	return Item{W: w, Kind: ItemGiven, Amount: n}
}

// Packed returns an item using the child's natural flow extent
func Packed(w Widget) Item {
	return Item{W: w, Kind: ItemPack}
}

// spread distributes total cells over weights, remainder to the front
func spread(total int, weights []int) []int {
	if total < 0 {
		total = 0
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	out := make([]int, len(weights))
	if sum == 0 {
		return out
	}
	given := 0
	for i, w := range weights {
		out[i] = total * w / sum
		given += out[i]
	}
	for i := 0; given < total && i < len(out); i++ {
		out[i]++
		given++
	}
	return out
}
