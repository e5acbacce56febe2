package blockingqueue

import (
	"context"
	"fmt"
	"time"
)

func Example_basic() {
	bq := New[string]()
	go func() {
		// Producer
		bq.Put("a")
		bq.Put("b")
	}()

	// Consumer with timeout safety
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v1, _ := bq.Take(ctx)
	v2, _ := bq.Take(ctx)
	fmt.Println(v1, v2)
	// Output:
	// a b
}

func Example_cancelPending() {
	bq := New[string]()
	bq.PutMany("build", "lint", "build", "test")
	fmt.Println(bq.RemoveMatching(func(s string) bool { return s == "build" }))

	for {
		v, ok := bq.TryTake()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 2
	// lint
	// test
}

func Example_errorHandling() {
	bq := New[int]()

	// Context timeout leads to an error from Take.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := bq.Take(ctx)
	fmt.Println(IsContextError(err))
	fmt.Println(err == ErrDeadlineExceeded || err == ErrCanceled)

	// TryTake is non-blocking and reports via ok.
	bq.Put(1)
	if v, ok := bq.TryTake(); ok {
		fmt.Println(v, ok)
	}
	if _, ok := bq.TryTake(); !ok {
		fmt.Println("empty", ok)
	}
	// Output:
	// true
	// true
	// 1 true
	// empty false
}
