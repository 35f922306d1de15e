// Package batch validates slices of records concurrently.
//
// A Runner shares one validator.Rule between a bounded number of goroutines managed by
// an errgroup and returns results in input order, so output is stable regardless of
// scheduling:
//
//	runner := batch.New(set, batch.WithWorkers(8), batch.WithLogger(log))
//	results, err := runner.Run(ctx, records)
//	if err != nil {
//		return err
//	}
//	for _, res := range batch.Failed(results) {
//		fmt.Println(res.Index, res.Report)
//	}
package batch
