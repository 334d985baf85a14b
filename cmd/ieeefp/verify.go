// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/ieee754"
)

var verifyOptions struct {
	shards  int
	stride  uint32
	samples int
	seed    int64
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "compares nextafter with the standard library",
	Long: `
Sweeps binary32 bit patterns with the given stride in parallel shards and
compares Nextafter32 with math.Nextafter32 in both directions. Then compares
Nextafter with math.Nextafter on random binary64 pairs.
`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	flags := verifyCmd.Flags()
	flags.IntVar(&verifyOptions.shards, "shards", 8, "number of parallel shards")
	flags.Uint32Var(&verifyOptions.stride, "stride", 251, "distance between checked binary32 patterns")
	flags.IntVar(&verifyOptions.samples, "samples", 1000000, "number of random binary64 pairs")
	flags.Int64Var(&verifyOptions.seed, "seed", 1, "random seed for binary64 pairs")
}

type mismatch struct {
	x, y, got, want string
}

func (m mismatch) Error() string {
	return fmt.Sprintf("nextafter(%s, %s) = %s, want %s", m.x, m.y, m.got, m.want)
}

var directions32 = []float32{float32(math.Inf(-1)), 0, float32(math.Inf(1))}

// check32 compares both implementations for x against every direction.
func check32(x float32) error {
	for _, y := range directions32 {
		if x == y {
			continue
		}
		got, want := ieee754.Nextafter32(x, y), math.Nextafter32(x, y)
		if math.IsNaN(float64(want)) && math.IsNaN(float64(got)) {
			continue
		}
		if math.Float32bits(got) != math.Float32bits(want) {
			return mismatch{
				x:    f32(x).Bits(),
				y:    f32(y).Bits(),
				got:  f32(got).Bits(),
				want: f32(want).Bits(),
			}
		}
	}
	return nil
}

// sweep32 checks patterns shard, shard+stride*shards, ... below 2^32.
func sweep32(ctx context.Context, shard, shards int, stride uint32) (int, error) {
	var checked int
	step := uint64(stride) * uint64(shards)
	for u := uint64(shard) * uint64(stride); u <= math.MaxUint32; u += step {
		if checked%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return checked, err
			}
		}
		if err := check32(math.Float32frombits(uint32(u))); err != nil {
			return checked, err
		}
		checked++
	}
	return checked, nil
}

func check64(x, y float64) error {
	if x == y || math.IsNaN(x) || math.IsNaN(y) {
		return nil
	}
	got, want := ieee754.Nextafter(x, y), math.Nextafter(x, y)
	if math.Float64bits(got) != math.Float64bits(want) {
		return mismatch{
			x:    f64(x).Bits(),
			y:    f64(y).Bits(),
			got:  f64(got).Bits(),
			want: f64(want).Bits(),
		}
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyOptions.shards < 1 || verifyOptions.stride == 0 {
		return fmt.Errorf("shards and stride must be positive")
	}
	var total int64
	g, ctx := errgroup.WithContext(cmd.Context())
	for i := 0; i < verifyOptions.shards; i++ {
		shard := i
		g.Go(func() error {
			n, err := sweep32(ctx, shard, verifyOptions.shards, verifyOptions.stride)
			atomic.AddInt64(&total, int64(n))
			log.WithFields(log.Fields{"shard": shard, "checked": n}).Debug("binary32 shard done")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("binary32 sweep failed: %w", err)
	}
	log.WithField("checked", total).Info("binary32 sweep passed")

	r := rand.New(rand.NewSource(verifyOptions.seed))
	for i := 0; i < verifyOptions.samples; i++ {
		x, y := math.Float64frombits(r.Uint64()), math.Float64frombits(r.Uint64())
		if err := check64(x, y); err != nil {
			return fmt.Errorf("binary64 sample %d failed: %w", i, err)
		}
	}
	log.WithField("checked", verifyOptions.samples).Info("binary64 samples passed")
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
