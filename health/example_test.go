package health_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/inflect/health"
	"github.com/jonwraymond/inflect/inflect"
)

func ExampleNewCacheChecker() {
	in := inflect.New(inflect.WithCapacity(16))
	for i := 0; i < 10; i++ {
		in.Camelize("css-class-name")
	}

	checker, err := health.NewCacheChecker(in, health.CacheCheckerConfig{MinLookups: 5})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	r := checker.Check(context.Background())
	fmt.Println(r.Status)
	fmt.Println(r.Details["camelize"].(map[string]any)["hits"])
	// Output:
	// healthy
	// 9
}

func ExampleNewCheckerFunc() {
	checker := health.NewCheckerFunc("always", func(ctx context.Context) health.Result {
		return health.Degraded("warming up")
	})

	r := checker.Check(context.Background())
	fmt.Println(checker.Name(), r.Status, r.Message)
	// Output:
	// always degraded warming up
}

func ExampleAggregator_CheckAll() {
	agg := health.NewAggregator()
	agg.Register(health.NewCheckerFunc("first", func(context.Context) health.Result {
		return health.Healthy("ok")
	}))
	agg.Register(health.NewCheckerFunc("second", func(context.Context) health.Result {
		return health.Degraded("slow")
	}))

	reports := agg.CheckAll(context.Background())
	for _, r := range reports {
		fmt.Println(r.Name, r.Status)
	}
	fmt.Println("overall:", health.OverallStatus(reports))
	// Output:
	// first healthy
	// second degraded
	// overall: degraded
}

func ExampleStatus_String() {
	fmt.Println(health.StatusHealthy, health.StatusDegraded, health.StatusUnhealthy)
	// Output:
	// healthy degraded unhealthy
}
