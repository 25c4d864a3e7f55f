package main

import (
	"fmt"
	"os"

	"go-minirt/config"
	"go-minirt/pkg/driver"
	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"
	"go-minirt/util/logger"
)

func main() {
	configs := config.New()
	if err := configs.ApplyEnv(os.LookupEnv); err != nil {
		fatal(err)
	}
	if err := logger.Configure(configs.LoggerConfig); err != nil {
		fatal(err)
	}

	src, err := heap.NewSource(configs.HeapConfig.Source)
	if err != nil {
		fatal(err)
	}

	h, err := heap.New(&heap.Options{
		ChunkSize: configs.HeapConfig.ChunkSize,
		MaxBytes:  configs.HeapConfig.MaxBytes,
		Source:    src,
		Logger:    logger.L,
	})
	if err != nil {
		fatal(err)
	}

	defer func() {
		if err := h.Close(); err != nil {
			fmt.Println("error on releasing heap:", err)
		}
	}()

	out, err := object.NewSink(configs.RuntimeConfig.Output, logger.L)
	if err != nil {
		fatal(err)
	}

	rt, err := object.New(&object.Options{
		Heap:            h,
		Out:             out,
		MethodCacheSize: configs.RuntimeConfig.MethodCacheSize,
		Logger:          logger.L,
	})
	if err != nil {
		fatal(err)
	}

	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fatal(err)
		}
		defer f.Close()

		if err := driver.NewRunner(rt).Run(f); err != nil {
			fatalf("%s: %v\n", os.Args[1], err)
		}
		return
	}

	ret, err := driver.Start(rt)
	if err != nil {
		fatal(err)
	}
	rt.Out().Println(ret)

	stats := h.Stats()
	logger.L.WithField("allocs", stats.Allocs).
		WithField("bytes", stats.Allocated).
		WithField("segments", stats.Segments).
		Info("program finished")
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}

func fatalf(format string, values ...interface{}) {
	fmt.Printf(format, values...)
	os.Exit(1)
}
