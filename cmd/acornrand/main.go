package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/imsyphia/acorn"
	"github.com/imsyphia/acorn/internal/stream"
)

// configFile holds optional defaults for the generator parameters. Flags set
// on the command line win over values from the file.
type configFile struct {
	Acornrand struct {
		Order int    `yaml:"order"`
		Seed  string `yaml:"seed"`
		Count int    `yaml:"count"`
	} `yaml:"acornrand"`
}

// parseConfigFile returns a new configFile given the path to a YAML
// configuration file. It supports relative and absolute paths and environment
// variables.
func parseConfigFile(path string) (*configFile, error) {
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	contents, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var cfg configFile
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

type draw struct {
	stream int
	value  string
}

func main() {
	var (
		configPath     string
		cpuProfilePath string
		orderFlag      int
		seedFlag       string
		count          int
		length         int
		width          int
		minFlag        string
		maxFlag        string
		balanced       bool
		streams        int
	)

	rootCmd := &cobra.Command{
		Use:   "acornrand",
		Short: "Reproducible ACORN number streams",
		Long: "Generates reproducible pseudo-random numbers from an ACORN generator.\n" +
			"The same order and seed always replay the same stream.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfilePath != "" {
				f, err := os.Create(cpuProfilePath)
				if err != nil {
					return errors.Wrap(err, "create profile")
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					return errors.Wrap(err, "start profile")
				}
				defer f.Close()
				defer pprof.StopCPUProfile()
			}

			if configPath != "" {
				cfg, err := parseConfigFile(configPath)
				if err != nil {
					return err
				}
				if cfg.Acornrand.Order != 0 && !cmd.Flags().Changed("order") {
					orderFlag = cfg.Acornrand.Order
				}
				if cfg.Acornrand.Seed != "" && !cmd.Flags().Changed("seed") {
					seedFlag = cfg.Acornrand.Seed
				}
				if cfg.Acornrand.Count != 0 && !cmd.Flags().Changed("count") {
					count = cfg.Acornrand.Count
				}
			}

			seedVal, err := acorn.ParseUint128(seedFlag)
			if err != nil {
				return errors.Wrap(err, "seed")
			}
			order := acorn.NewOrder(orderFlag)

			var opts []acorn.Option
			if balanced {
				opts = append(opts, acorn.WithSpanStrategy(acorn.SpanBalanced))
			}

			drawFn, err := drawFunc(length, width, minFlag, maxFlag)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"order":   order.Int(),
				"seed":    acorn.NewSeed(seedVal).Uint128(),
				"count":   count,
				"streams": streams,
			}).Info("generating")

			if streams <= 1 {
				gen := acorn.New(order, acorn.NewSeed(seedVal), opts...)
				for i := 0; i < count; i++ {
					fmt.Println(drawFn(gen))
				}
				return nil
			}

			// One generator per stream, seeded seed, seed+1, ... Each stays
			// owned by its producing goroutine; interleaving across streams
			// is not deterministic, the per-stream sequences are.
			sources := make([]<-chan draw, streams)
			for i := 0; i < streams; i++ {
				i := i
				gen := acorn.New(order, acorn.NewSeed(seedVal.Add(acorn.U128(uint64(i)))), opts...)
				sources[i] = stream.Produce(count, func() draw {
					return draw{stream: i, value: drawFn(gen)}
				})
			}
			out := make(chan draw)
			stream.Merge(out, sources...)
			for d := range out {
				fmt.Printf("%d\t%s\n", d.stream, d.value)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file with generator defaults")
	rootCmd.Flags().StringVar(&cpuProfilePath, "cpuprofile", "", "location to save a CPU profile")
	rootCmd.Flags().IntVar(&orderFlag, "order", 45, "recurrence depth, clamped to [45, 65535]")
	rootCmd.Flags().StringVar(&seedFlag, "seed", "1000000", "decimal seed, clamped to [1000000, 2^128-1]")
	rootCmd.Flags().IntVar(&count, "count", 1, "numbers to generate per stream")
	rootCmd.Flags().IntVar(&length, "length", 0, "fixed decimal digit length; 0 draws raw 120-bit values")
	rootCmd.Flags().IntVar(&width, "width", 128, "output width for --length: 8, 16, 32, 64 or 128")
	rootCmd.Flags().StringVar(&minFlag, "min", "", "inclusive lower bound (decimal)")
	rootCmd.Flags().StringVar(&maxFlag, "max", "", "inclusive upper bound (decimal)")
	rootCmd.Flags().BoolVar(&balanced, "balanced", false, "weight every digit length equally in --min/--max mode")
	rootCmd.Flags().IntVar(&streams, "streams", 1, "independent generators seeded seed, seed+1, ...")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// drawFunc resolves the flag combination into a single draw operation.
func drawFunc(length, width int, minFlag, maxFlag string) (func(*acorn.Acorn) string, error) {
	switch {
	case minFlag != "" || maxFlag != "":
		if minFlag == "" || maxFlag == "" {
			return nil, errors.New("--min and --max must be given together")
		}
		lo, err := acorn.ParseUint128(minFlag)
		if err != nil {
			return nil, errors.Wrap(err, "min")
		}
		hi, err := acorn.ParseUint128(maxFlag)
		if err != nil {
			return nil, errors.Wrap(err, "max")
		}
		if hi.Cmp(lo) < 0 {
			return nil, errors.New("--min must not exceed --max")
		}
		return func(g *acorn.Acorn) string {
			return g.Between(lo, hi).String()
		}, nil
	case length > 0:
		switch width {
		case 8:
			return func(g *acorn.Acorn) string {
				return fmt.Sprintf("%d", g.FixedLenUint8(length))
			}, nil
		case 16:
			return func(g *acorn.Acorn) string {
				return fmt.Sprintf("%d", g.FixedLenUint16(length))
			}, nil
		case 32:
			return func(g *acorn.Acorn) string {
				return fmt.Sprintf("%d", g.FixedLenUint32(length))
			}, nil
		case 64:
			return func(g *acorn.Acorn) string {
				return fmt.Sprintf("%d", g.FixedLenUint64(length))
			}, nil
		case 128:
			return func(g *acorn.Acorn) string {
				return g.FixedLen(length).String()
			}, nil
		}
		return nil, errors.Errorf("unsupported width %d", width)
	}
	return func(g *acorn.Acorn) string {
		return g.Next().String()
	}, nil
}
