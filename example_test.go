package branchtale_test

import (
	"context"
	"fmt"

	"github.com/aretw0/branchtale"
	"github.com/aretw0/branchtale/pkg/adapters/memory"
	"github.com/aretw0/branchtale/pkg/domain"
)

func ExampleEngine() {
	src := memory.New(map[domain.Table]string{
		domain.TableNodes: `[
			{"NODE_ID": "A01", "TEXT": "A fork in the road."},
			{"NODE_ID": "A02", "TEXT": "The left path ends at a lake."}
		]`,
		domain.TableChoices: `[
			{"CHOICE_ID": "AC01", "PARENT_NODE": "A01", "OPTION_LABEL": "Go left", "LEADS_TO": "A02"}
		]`,
	})

	ctx := context.Background()
	eng, err := branchtale.New(ctx, src)
	if err != nil {
		fmt.Println(err)
		return
	}

	view := eng.View()
	fmt.Println(view.Reader.Text)
	for _, c := range view.Reader.Choices {
		fmt.Printf("%d) %s\n", c.Index+1, c.Label)
	}

	_ = eng.Select(ctx, 0)
	for _, block := range eng.View().Summary.Blocks {
		if block.ChosenLabel != nil {
			fmt.Println("> " + *block.ChosenLabel)
		}
		fmt.Println(block.Text)
	}
	fmt.Println(eng.View().Summary.Status)

	// Output:
	// A fork in the road.
	// 1) GO LEFT
	// A fork in the road.
	// > Go left
	// The left path ends at a lake.
	// The end. 2 steps taken.
}
