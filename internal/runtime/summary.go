package runtime

import (
	"fmt"

	"github.com/aretw0/branchtale/pkg/domain"
)

// BuildSummary renders the path as summary blocks, in visiting order.
// Every entry is kept, including the start node (no chosen label) and the terminal node.
func BuildSummary(path []domain.PathEntry) *domain.SummaryView {
	blocks := make([]domain.SummaryBlock, 0, len(path))
	for _, entry := range path {
		blocks = append(blocks, domain.SummaryBlock{
			NodeID:      entry.NodeID,
			ChosenLabel: entry.ChosenLabel,
			Text:        entry.Text,
		})
	}
	return &domain.SummaryView{
		Blocks: blocks,
		Status: summaryStatus(len(path)),
	}
}

func summaryStatus(steps int) string {
	if steps == 1 {
		return "The end. 1 step taken."
	}
	return fmt.Sprintf("The end. %d steps taken.", steps)
}
