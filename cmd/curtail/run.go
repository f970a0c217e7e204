package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/curtail/internal/adapters/fs"
	"github.com/bft-labs/curtail/internal/cliconfig"
	"github.com/bft-labs/curtail/internal/input"
	"github.com/bft-labs/curtail/pkg/curtail"
	logAdapter "github.com/bft-labs/curtail/pkg/log"
	"github.com/bft-labs/curtail/pkg/size"
)

// shutdownGrace is how long a signal waits for a pump blocked in Read.
const shutdownGrace = 500 * time.Millisecond

func run(ctx context.Context, cfg cliconfig.Config, stdin io.Reader, log zerolog.Logger) error {
	w, err := curtail.Open(cfg.LogFile, cfg.SizeBytes,
		curtail.WithLogger(logAdapter.NewZerologAdapter(log)),
		curtail.WithStrategy(cfg.StrategyValue),
		curtail.WithTruncate(cfg.Truncate),
	)
	if err != nil {
		return err
	}
	// Once the pump is abandoned it still owns w and src; neither is closed.
	abandoned := false
	defer func() {
		if !abandoned {
			w.Close()
		}
	}()

	log.Info().
		Str("log_file", cfg.LogFile).
		Str("capacity", size.Format(w.Capacity())).
		Int64("block_size", w.BlockSize()).
		Str("strategy", string(cfg.StrategyValue)).
		Msg("writing")

	src, closeSrc, err := openSource(cfg, stdin)
	if err != nil {
		return err
	}
	defer func() {
		if !abandoned {
			closeSrc()
		}
	}()

	done := make(chan pumpResult, 1)
	go func() {
		n, err := input.Pump(ctx, src, w)
		done <- pumpResult{n, err}
	}()

	res, ok := waitPump(ctx, done, shutdownGrace)
	if !ok {
		abandoned = true
		log.Info().Msg("interrupted")
		return nil
	}
	if res.err != nil {
		return res.err
	}

	st := w.Stats()
	log.Info().
		Int64("bytes", res.n).
		Int64("collapses", st.Collapses).
		Int64("bytes_collapsed", st.BytesCollapsed).
		Int64("size", st.Size).
		Msg("input drained")

	if cfg.StatsFile != "" {
		sf := fs.NewStatsFile(cfg.StatsFile)
		report := fs.Report{
			LogFile:   cfg.LogFile,
			Capacity:  w.Capacity(),
			BlockSize: w.BlockSize(),
			Stats:     st,
			UpdatedAt: time.Now().UTC(),
		}
		if err := sf.Save(report); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}
		log.Debug().Str("stats_file", sf.Path()).Msg("stats saved")
	}
	return nil
}

type pumpResult struct {
	n   int64
	err error
}

// waitPump waits for the pump to finish. After ctx is cancelled it allows
// grace for the pump to notice; ok is false if it is still running then.
func waitPump(ctx context.Context, done <-chan pumpResult, grace time.Duration) (res pumpResult, ok bool) {
	select {
	case res = <-done:
		return res, true
	case <-ctx.Done():
	}
	select {
	case res = <-done:
		return res, true
	case <-time.After(grace):
		return pumpResult{}, false
	}
}

func openSource(cfg cliconfig.Config, stdin io.Reader) (input.Source, func(), error) {
	switch {
	case cfg.Input == "":
		return input.NewReaderSource(stdin, cfg.ChunkSize), func() {}, nil
	case cfg.Follow:
		src, err := input.NewFollowSource(cfg.Input, cfg.ChunkSize, cfg.PollInterval)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return input.NewReaderSource(f, cfg.ChunkSize), func() { f.Close() }, nil
}
