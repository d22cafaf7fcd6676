package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/featprune/pkg/frame"
	"github.com/matzehuels/featprune/pkg/pipeline"
)

func ExampleSolve() {
	t := frame.NewTable()
	_ = t.AddColumn("A", []float64{1, 2, 3, 4})
	_ = t.AddColumn("B", []float64{1, 2, 1, 2})
	_ = t.AddColumn("C", []float64{4, 5, 6, 7})
	_ = t.AddColumn("D", []float64{1, 1, 1, 1})

	imp := frame.ImportanceFromMap(map[string]float64{"A": 0.5, "B": 0.3, "C": 0.7, "D": 0.2})

	remove, err := pipeline.Solve(t, pipeline.Options{
		By:         "importance",
		Importance: imp,
		Threshold:  0.8,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(remove)
	// Output: [A]
}

func ExampleRunner_Run() {
	t := frame.NewTable()
	_ = t.AddColumn("x", []float64{1, 2, 3, 4, 5})
	_ = t.AddColumn("y", []float64{2, 4, 6, 8, 11})
	_ = t.AddColumn("z", []float64{5, 1, 4, 2, 3})

	res, err := pipeline.NewRunner(nil).Run(context.Background(), t, pipeline.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range res.Selection.Decisions {
		fmt.Println("group:", d.Group.Members, "kept:", d.Kept, "removed:", d.Removed)
	}
	fmt.Println("remove:", res.Remove)
	// Output:
	// group: [x y] kept: [y] removed: [x]
	// remove: [x]
}
