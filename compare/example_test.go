package compare_test

import (
	"fmt"
	"time"

	"github.com/algolens/algolens/compare"
	"github.com/algolens/algolens/sorting"
)

// Example runs bubble sort against selection sort on the same input under
// one shared synthetic clock and prints the efficiency verdict.
func Example() {
	input := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	bubble, _ := sorting.Bubble(input)
	selection, _ := sorting.Selection(input)

	laneA := compare.NewLane(bubble)
	laneB := compare.NewLane(selection)

	s := compare.NewScheduler(laneA, laneB, compare.MinInterval)
	now := time.Unix(0, 0)
	s.Start(now)
	for {
		now = now.Add(compare.MinInterval)
		if !s.Tick(compare.MinInterval, now) {
			break
		}
	}

	w := compare.DefaultWeights()
	workA := compare.Work(laneA.Trace, laneA.Timeline, w)
	workB := compare.Work(laneB.Trace, laneB.Timeline, w)
	fmt.Println("work winner:", compare.WorkWinner(workA, workB))

	v := compare.ResolveSpeed(laneA.Duration(), laneB.Duration(), compare.DefaultTieEpsilon)
	fmt.Println("speed winner:", v.Winner)
	// Output:
	// work winner: B
	// speed winner: B
}
