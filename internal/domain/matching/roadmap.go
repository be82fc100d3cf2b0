package matching

import "fmt"

const roadmapTemplate = "Learn %s via platforms like Coursera, FreeCodeCamp, or YouTube"

type Step struct {
	Step        int
	Description string
}

func BuildRoadmap(missing []string) []Step {
	steps := make([]Step, 0, len(missing))
	for i, skill := range missing {
		steps = append(steps, Step{
			Step:        i + 1,
			Description: fmt.Sprintf(roadmapTemplate, skill),
		})
	}
	return steps
}
